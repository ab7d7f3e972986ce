package models

// Field names on persisted records are frozen: they must keep unmarshaling
// data written by earlier app versions. Evolution is additive only.

// TodayRecord is the single-slot cache of the most recent draw result.
type TodayRecord struct {
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	PersonaID PersonaID `json:"auraId"`
}

// LegacyCollection is the v1 discovered-id set, kept append-only for
// backward compatibility.
type LegacyCollection struct {
	Discovered []PersonaID `json:"discovered"`
}

func (lc *LegacyCollection) Has(id PersonaID) bool {
	for _, d := range lc.Discovered {
		if d == id {
			return true
		}
	}
	return false
}

// StreakRecord counts consecutive calendar days with at least one draw,
// ending on LastActiveDate.
type StreakRecord struct {
	CurrentStreak  int    `json:"currentStreak"`
	LastActiveDate string `json:"lastDate"`
}

// CollectionEntry is the per-persona discovery and progress record.
// Entries are never deleted; Experience only resets on an explicit reroll.
type CollectionEntry struct {
	PersonaID              PersonaID      `json:"auraId"`
	DiscoveredDate         string         `json:"discoveredDate"`
	DiscoveredCount        int            `json:"discoveredCount"`
	HighestEvolutionViewed EvolutionLevel `json:"highestEvolutionViewed"`
	Experience             int            `json:"exp"`
	TotalFeedings          int            `json:"totalFeedings"`
}

type Collection struct {
	Entries []*CollectionEntry `json:"entries"`
}

func (c *Collection) Entry(id PersonaID) *CollectionEntry {
	for _, e := range c.Entries {
		if e.PersonaID == id {
			return e
		}
	}
	return nil
}

// Upsert registers one more draw of id. New personas get a fresh entry
// discovered today; known ones only bump DiscoveredCount. Reports whether
// the persona was newly discovered.
func (c *Collection) Upsert(id PersonaID, today string) (*CollectionEntry, bool) {
	if e := c.Entry(id); e != nil {
		e.DiscoveredCount++
		return e, false
	}
	e := &CollectionEntry{
		PersonaID:       id,
		DiscoveredDate:  today,
		DiscoveredCount: 1,
	}
	c.Entries = append(c.Entries, e)
	return e, true
}

type MascotMood string

const (
	MoodHappy   MascotMood = "happy"
	MoodNeutral MascotMood = "neutral"
	MoodSleepy  MascotMood = "sleepy"
)

// MoodForLastFed derives the mascot mood from the last feeding date.
// Mood is never authoritative in storage; it is recomputed on every read.
func MoodForLastFed(lastFed, today, yesterday string) MascotMood {
	switch lastFed {
	case today:
		return MoodHappy
	case yesterday:
		return MoodNeutral
	default:
		return MoodSleepy
	}
}

// Mascot is the single active persona being raised. Experience and
// TotalFeedings mirror the matching CollectionEntry and are re-synchronized
// on every read and on every switch.
type Mascot struct {
	PersonaID     PersonaID  `json:"auraId"`
	Mood          MascotMood `json:"mood"`
	LastFedDate   string     `json:"lastFedDate"`
	TotalFeedings int        `json:"totalFeedings"`
	Experience    int        `json:"exp"`
}

// FeedingLogEntry is an append-only feeding record. Entries older than
// FeedingLogRetentionDays are pruned on every write.
type FeedingLogEntry struct {
	Date        string    `json:"date"`
	Name        string    `json:"name"`
	PersonaID   PersonaID `json:"auraId"`
	FedToMascot bool      `json:"fedToMascot"`
}

const FeedingLogRetentionDays = 30

// ProfileMeta drives the one-time schema migration.
type ProfileMeta struct {
	FirstVisitDate string `json:"firstVisitDate"`
	SchemaVersion  int    `json:"version"`
}

const CurrentSchemaVersion = 2
