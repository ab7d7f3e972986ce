package services

import (
	"errors"
	"strings"
	"time"

	"aurad/internal/engine"
	"aurad/internal/models"
	"aurad/internal/store"
)

var (
	// ErrAdRequired means the next manual feed sits on the ad-gated gauge
	// position and must be retried with adWatched after the interstitial.
	ErrAdRequired = errors.New("ad required before feed")
	// ErrNotDiscovered means the persona has no collection entry yet and
	// cannot become the mascot.
	ErrNotDiscovered = errors.New("persona not discovered")
	// ErrUnknownPersona means the id is outside the catalog.
	ErrUnknownPersona = errors.New("unknown persona id")
	// ErrNoDrawToday means reroll was requested before any draw happened
	// on the current day.
	ErrNoDrawToday = errors.New("no draw to reroll today")
)

// DrawOutcome is the full result of a draw or reroll, enough for the
// presentation layer to render and to detect an evolution transition.
type DrawOutcome struct {
	Persona        models.Persona           `json:"persona"`
	Name           string                   `json:"name"`
	Date           string                   `json:"date"`
	Streak         models.StreakRecord      `json:"streak"`
	Collection     *models.Collection       `json:"collection"`
	Mascot         *models.Mascot           `json:"mascot"`
	FeedingHistory []models.FeedingLogEntry `json:"feedingHistory"`
	IsNewDiscovery bool                     `json:"isNewDiscovery"`
	EvolutionLevel models.EvolutionLevel    `json:"evolutionLevel"`
	PreviousLevel  models.EvolutionLevel    `json:"previousLevel"`
	Evolved        bool                     `json:"evolved"`
}

type FeedOutcome struct {
	Mascot         *models.Mascot        `json:"mascot"`
	EvolutionLevel models.EvolutionLevel `json:"evolutionLevel"`
	PreviousLevel  models.EvolutionLevel `json:"previousLevel"`
	Evolved        bool                  `json:"evolved"`
	FeedingGauge   int                   `json:"feedingGauge"`
}

// StateSnapshot is everything the presentation layer needs at startup.
type StateSnapshot struct {
	Streak         models.StreakRecord      `json:"streak"`
	Collection     *models.Collection       `json:"collection"`
	Mascot         *models.Mascot           `json:"mascot"`
	FeedingHistory []models.FeedingLogEntry `json:"feedingHistory"`
	EvolutionLevel models.EvolutionLevel    `json:"evolutionLevel"`
	TodayRecord    *models.TodayRecord      `json:"todayRecord"`
	DailyQuote     string                   `json:"dailyQuote"`
	IsFirstVisit   bool                     `json:"isFirstVisit"`
	UserName       string                   `json:"userName"`
}

type AuraServiceInterface interface {
	LoadState(now time.Time) *StateSnapshot
	Draw(name string, now time.Time) *DrawOutcome
	Reroll(name string, now time.Time) (*DrawOutcome, error)
	ManualFeed(adWatched bool, now time.Time) (*FeedOutcome, error)
	SwitchMascot(id models.PersonaID) (*FeedOutcome, error)
	DailyQuote(now time.Time) string
	Partner(id models.PersonaID, now time.Time) (models.Persona, error)
	CollectionSize() int
	MascotLevel() int
}

type AuraService struct {
	repo     store.RepositoryInterface
	migrator *store.Migrator
}

func NewAuraService(repo store.RepositoryInterface, migrator *store.Migrator) *AuraService {
	return &AuraService{repo: repo, migrator: migrator}
}

// Draw selects today's persona for a name and records it. Drawing always
// feeds the drawn persona once.
func (s *AuraService) Draw(name string, now time.Time) *DrawOutcome {
	trimmed := strings.TrimSpace(name)
	today := models.DateString(now)
	id := engine.SelectPersona(today, trimmed)
	s.repo.SaveUserName(trimmed)
	return s.recordDrawAndFeed(trimmed, id, now)
}

// recordDrawAndFeed is the composite persistence operation. The steps are
// ordered, independent key writes with no cross-key atomicity: a failure
// between steps leaves a partially updated record set. Overwrite-style
// steps are retry-safe; the experience increment is not.
func (s *AuraService) recordDrawAndFeed(name string, id models.PersonaID, now time.Time) *DrawOutcome {
	today := models.DateString(now)
	yesterday := models.YesterdayString(now)

	// 1. Today record
	s.repo.SaveToday(&models.TodayRecord{Date: today, Name: name, PersonaID: id})

	// 2. Legacy discovered set, append-only
	legacy := s.repo.LegacyCollection()
	if !legacy.Has(id) {
		legacy.Discovered = append(legacy.Discovered, id)
		s.repo.SaveLegacyCollection(legacy)
	}

	// 3. Streak
	streak := engine.AdvanceStreak(s.repo.Streak(today, yesterday), today, yesterday)
	s.repo.SaveStreak(streak)

	// 4. Collection entry
	col := s.repo.Collection()
	entry, isNewDiscovery := col.Upsert(id, today)

	// 5. Implicit feed on draw
	previousLevel := models.LevelForExperience(entry.Experience)
	entry.Experience++
	entry.TotalFeedings++
	s.repo.SaveCollection(col)

	// 6. Feeding log
	history := append(s.repo.FeedingLog(), models.FeedingLogEntry{
		Date: today, Name: name, PersonaID: id, FedToMascot: true,
	})
	s.repo.SaveFeedingLog(history, models.CutoffString(now, models.FeedingLogRetentionDays))

	// 7. Mascot becomes the drawn persona. Flush the old mascot's counters
	// first or its progress is silently lost.
	mascot := s.repo.Mascot()
	if mascot == nil {
		mascot = &models.Mascot{PersonaID: id}
	} else if mascot.PersonaID != id {
		if old := col.Entry(mascot.PersonaID); old != nil {
			old.Experience = mascot.Experience
			old.TotalFeedings = mascot.TotalFeedings
			s.repo.SaveCollection(col)
		}
	}
	mascot.PersonaID = id
	mascot.Mood = models.MoodHappy
	mascot.LastFedDate = today
	mascot.Experience = entry.Experience
	mascot.TotalFeedings = entry.TotalFeedings

	// 8. Persist mascot
	s.repo.SaveMascot(mascot)

	level := models.LevelForExperience(mascot.Experience)
	persona, _ := models.PersonaByID(id)
	return &DrawOutcome{
		Persona:        persona,
		Name:           name,
		Date:           today,
		Streak:         streak,
		Collection:     col,
		Mascot:         mascot,
		FeedingHistory: history,
		IsNewDiscovery: isNewDiscovery,
		EvolutionLevel: level,
		PreviousLevel:  previousLevel,
		Evolved:        level > previousLevel,
	}
}

// Reroll discards today's persona and draws a random different one. The
// rerolled persona restarts at zero experience; its discovery count still
// grows. All other entries are untouched.
func (s *AuraService) Reroll(name string, now time.Time) (*DrawOutcome, error) {
	today := models.DateString(now)
	yesterday := models.YesterdayString(now)

	current := s.repo.Today(today)
	if current == nil {
		return nil, ErrNoDrawToday
	}

	trimmed := strings.TrimSpace(name)
	id := engine.RerollPersona(current.PersonaID)

	s.repo.SaveToday(&models.TodayRecord{Date: today, Name: trimmed, PersonaID: id})

	col := s.repo.Collection()
	entry, isNewDiscovery := col.Upsert(id, today)
	entry.Experience = 0
	entry.TotalFeedings = 0
	s.repo.SaveCollection(col)

	mascot := &models.Mascot{
		PersonaID:   id,
		Mood:        models.MoodHappy,
		LastFedDate: today,
	}
	s.repo.SaveMascot(mascot)

	persona, _ := models.PersonaByID(id)
	return &DrawOutcome{
		Persona:        persona,
		Name:           trimmed,
		Date:           today,
		Streak:         s.repo.Streak(today, yesterday),
		Collection:     col,
		Mascot:         mascot,
		FeedingHistory: s.repo.FeedingLog(),
		IsNewDiscovery: isNewDiscovery,
		EvolutionLevel: 0,
		PreviousLevel:  0,
	}, nil
}

// ManualFeed adds one experience point to the active mascot. When the
// feeding gauge sits at the ad-gated position the caller must confirm the
// ad was watched, otherwise nothing is committed. Retrying a feed is not
// idempotent: two calls add two points.
func (s *AuraService) ManualFeed(adWatched bool, now time.Time) (*FeedOutcome, error) {
	today := models.DateString(now)

	mascot := s.repo.Mascot()
	if mascot == nil {
		mascot = &models.Mascot{PersonaID: 1, Mood: models.MoodHappy, LastFedDate: today}
	}

	if models.IsAdGatedFeed(mascot.Experience) && !adWatched {
		return nil, ErrAdRequired
	}

	previousLevel := models.LevelForExperience(mascot.Experience)
	mascot.Experience++
	mascot.TotalFeedings++
	s.repo.SaveMascot(mascot)

	col := s.repo.Collection()
	if entry := col.Entry(mascot.PersonaID); entry != nil {
		entry.Experience = mascot.Experience
		entry.TotalFeedings = mascot.TotalFeedings
		s.repo.SaveCollection(col)
	}

	level := models.LevelForExperience(mascot.Experience)
	return &FeedOutcome{
		Mascot:         mascot,
		EvolutionLevel: level,
		PreviousLevel:  previousLevel,
		Evolved:        level > previousLevel,
		FeedingGauge:   models.FeedingGauge(mascot.Experience, level),
	}, nil
}

// SwitchMascot repoints the mascot at a previously discovered persona.
// The current mascot's counters are flushed onto its entry before the
// switch; skipping the flush would silently lose progress.
func (s *AuraService) SwitchMascot(id models.PersonaID) (*FeedOutcome, error) {
	if _, ok := models.PersonaByID(id); !ok {
		return nil, ErrUnknownPersona
	}

	col := s.repo.Collection()
	target := col.Entry(id)
	if target == nil {
		return nil, ErrNotDiscovered
	}

	mascot := s.repo.Mascot()
	if mascot == nil {
		mascot = &models.Mascot{Mood: models.MoodHappy}
	} else if old := col.Entry(mascot.PersonaID); old != nil {
		old.Experience = mascot.Experience
		old.TotalFeedings = mascot.TotalFeedings
	}

	mascot.PersonaID = id
	mascot.Experience = target.Experience
	mascot.TotalFeedings = target.TotalFeedings

	s.repo.SaveCollection(col)
	s.repo.SaveMascot(mascot)

	level := models.LevelForExperience(mascot.Experience)
	return &FeedOutcome{
		Mascot:         mascot,
		EvolutionLevel: level,
		PreviousLevel:  level,
		FeedingGauge:   models.FeedingGauge(mascot.Experience, level),
	}, nil
}

// LoadState assembles the startup snapshot, running the one-time schema
// migration first. The mascot is lazily created and always re-synced from
// its collection entry.
func (s *AuraService) LoadState(now time.Time) *StateSnapshot {
	isFirstVisit := s.migrator.MigrateIfNeeded(now)

	today := models.DateString(now)
	yesterday := models.YesterdayString(now)

	streak := s.repo.Streak(today, yesterday)
	col := s.repo.Collection()

	mascot := s.repo.Mascot()
	if mascot == nil {
		mascot = &models.Mascot{PersonaID: 1, Mood: models.MoodSleepy}
		s.repo.SaveMascot(mascot)
	}
	mascot.Mood = models.MoodForLastFed(mascot.LastFedDate, today, yesterday)
	if entry := col.Entry(mascot.PersonaID); entry != nil {
		mascot.Experience = entry.Experience
		mascot.TotalFeedings = entry.TotalFeedings
	}

	return &StateSnapshot{
		Streak:         streak,
		Collection:     col,
		Mascot:         mascot,
		FeedingHistory: s.repo.FeedingLog(),
		EvolutionLevel: models.LevelForExperience(mascot.Experience),
		TodayRecord:    s.repo.Today(today),
		DailyQuote:     engine.SelectDailyQuote(today),
		IsFirstVisit:   isFirstVisit,
		UserName:       s.repo.UserName(),
	}
}

func (s *AuraService) DailyQuote(now time.Time) string {
	return engine.SelectDailyQuote(models.DateString(now))
}

// Partner returns today's energy partner for a persona.
func (s *AuraService) Partner(id models.PersonaID, now time.Time) (models.Persona, error) {
	if _, ok := models.PersonaByID(id); !ok {
		return models.Persona{}, ErrUnknownPersona
	}
	partner, _ := models.PersonaByID(engine.SelectPartner(id, models.DateString(now)))
	return partner, nil
}

func (s *AuraService) CollectionSize() int {
	return len(s.repo.Collection().Entries)
}

func (s *AuraService) MascotLevel() int {
	mascot := s.repo.Mascot()
	if mascot == nil {
		return 0
	}
	return int(models.LevelForExperience(mascot.Experience))
}
