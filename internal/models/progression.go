package models

// EvolutionLevel is the discrete stage 0..4 derived from experience.
type EvolutionLevel int

const MaxEvolutionLevel EvolutionLevel = 4

const (
	// FeedsPerLevel is the gauge width of a single level.
	FeedsPerLevel = 5
	// AdGatedIndex is the gauge position whose next feed must be preceded
	// by an interstitial ad.
	AdGatedIndex = 2
)

var levelThresholds = [MaxEvolutionLevel + 1]int{0, 5, 10, 15, 20}

// LevelForExperience returns the highest level whose threshold is <= exp.
// Level 4 is a hard ceiling; feeding beyond it is inert.
func LevelForExperience(exp int) EvolutionLevel {
	for level := MaxEvolutionLevel; level > 0; level-- {
		if exp >= levelThresholds[level] {
			return level
		}
	}
	return 0
}

// ExperienceForLevel returns the experience threshold of a level.
func ExperienceForLevel(level EvolutionLevel) int {
	if level < 0 {
		return 0
	}
	if level > MaxEvolutionLevel {
		level = MaxEvolutionLevel
	}
	return levelThresholds[level]
}

// FeedingGauge returns the progress position within the current level,
// in [0, FeedsPerLevel). Not meaningful at the max level.
func FeedingGauge(exp int, level EvolutionLevel) int {
	return exp - ExperienceForLevel(level)
}

// IsAdGatedFeed reports whether the next feed at this experience value
// requires an ad first. Feeds past the max level are never gated.
func IsAdGatedFeed(exp int) bool {
	level := LevelForExperience(exp)
	if level >= MaxEvolutionLevel {
		return false
	}
	return FeedingGauge(exp, level) == AdGatedIndex
}
