package store

import (
	"time"

	"go.uber.org/atomic"

	"aurad/internal/models"
	"aurad/internal/providers"
)

// Migrator performs the one-time v1 to v2 schema upgrade: the legacy
// discovered-id set becomes CollectionEntry records and the active mascot
// is derived from the feeding log.
type Migrator struct {
	repo   RepositoryInterface
	logger providers.Logger
	done   atomic.Bool
	first  atomic.Bool
}

func NewMigrator(repo RepositoryInterface, logger providers.Logger) *Migrator {
	return &Migrator{repo: repo, logger: logger}
}

// MigrateIfNeeded upgrades the record set once per install, guarded by
// ProfileMeta.SchemaVersion. Reports whether this is the user's first-ever
// visit (no legacy collection and no prior streak date), which the caller
// uses to show onboarding. Repeated calls within a process return the
// result of the first one.
func (m *Migrator) MigrateIfNeeded(now time.Time) bool {
	if !m.done.CompareAndSwap(false, true) {
		return m.first.Load()
	}

	profile := m.repo.Profile()
	if profile != nil && profile.SchemaVersion >= models.CurrentSchemaVersion {
		return false
	}

	today := models.DateString(now)
	yesterday := models.YesterdayString(now)
	isFirstVisit := true

	legacy := m.repo.LegacyCollection()
	if len(legacy.Discovered) > 0 {
		isFirstVisit = false
		col := &models.Collection{}
		for _, id := range legacy.Discovered {
			// True discovery dates were never recorded in v1; backfill
			// with today.
			col.Entries = append(col.Entries, &models.CollectionEntry{
				PersonaID:       id,
				DiscoveredDate:  today,
				DiscoveredCount: 1,
			})
		}
		m.repo.SaveCollection(col)
		m.logger.Infof(providers.TypeApp, "Migrated %d legacy collection entries", len(col.Entries))
	}

	streak := m.repo.Streak(today, yesterday)
	col := m.repo.Collection()
	history := m.repo.FeedingLog()

	totalFeedings := 0
	for _, e := range col.Entries {
		totalFeedings += e.DiscoveredCount
	}
	mascot := &models.Mascot{
		PersonaID:     RepresentativePersona(history, col),
		Mood:          models.MoodForLastFed(streak.LastActiveDate, today, yesterday),
		LastFedDate:   streak.LastActiveDate,
		TotalFeedings: totalFeedings,
	}
	m.repo.SaveMascot(mascot)

	if streak.LastActiveDate != "" {
		isFirstVisit = false
	}

	firstVisitDate := streak.LastActiveDate
	if firstVisitDate == "" {
		firstVisitDate = today
	}
	m.repo.SaveProfile(&models.ProfileMeta{
		FirstVisitDate: firstVisitDate,
		SchemaVersion:  models.CurrentSchemaVersion,
	})

	m.first.Store(isFirstVisit)
	return isFirstVisit
}

// RepresentativePersona picks the mascot for migrated users: the most
// frequently fed persona, ties broken by the most recent feeding. Falls
// back to the first collection entry, then to persona 1.
func RepresentativePersona(history []models.FeedingLogEntry, col *models.Collection) models.PersonaID {
	if len(history) == 0 {
		if len(col.Entries) > 0 {
			return col.Entries[0].PersonaID
		}
		return 1
	}

	counts := make(map[models.PersonaID]int)
	latestDate := ""
	latestID := models.PersonaID(1)
	for _, log := range history {
		counts[log.PersonaID]++
		if log.Date >= latestDate {
			latestDate = log.Date
			latestID = log.PersonaID
		}
	}

	// The log is append-ordered, so >= lets the most recently fed persona
	// win a count tie.
	maxCount := 0
	maxID := latestID
	for _, log := range history {
		if c := counts[log.PersonaID]; c >= maxCount {
			maxCount = c
			maxID = log.PersonaID
		}
	}
	return maxID
}
