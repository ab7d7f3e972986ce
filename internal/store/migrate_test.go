package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurad/internal/models"
	"aurad/internal/testutil"
)

var migrateNow = time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

func newTestMigrator() (*Migrator, RepositoryInterface) {
	repo, _, _ := newTestRepo()
	return NewMigrator(repo, &testutil.MockLogger{}), repo
}

func TestMigrateIfNeeded_FreshInstallIsFirstVisit(t *testing.T) {
	m, repo := newTestMigrator()

	assert.True(t, m.MigrateIfNeeded(migrateNow))

	profile := repo.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, models.CurrentSchemaVersion, profile.SchemaVersion)
	assert.Equal(t, "2024-01-02", profile.FirstVisitDate)

	mascot := repo.Mascot()
	require.NotNil(t, mascot)
	assert.Equal(t, models.PersonaID(1), mascot.PersonaID)
	assert.Equal(t, models.MoodSleepy, mascot.Mood)
}

func TestMigrateIfNeeded_ConvertsLegacyCollection(t *testing.T) {
	m, repo := newTestMigrator()

	repo.SaveLegacyCollection(&models.LegacyCollection{Discovered: []models.PersonaID{3, 7}})
	repo.SaveStreak(models.StreakRecord{CurrentStreak: 5, LastActiveDate: "2024-01-02"})

	assert.False(t, m.MigrateIfNeeded(migrateNow))

	col := repo.Collection()
	require.Len(t, col.Entries, 2)
	for _, e := range col.Entries {
		// v1 never recorded discovery dates, so they are backfilled.
		assert.Equal(t, "2024-01-02", e.DiscoveredDate)
		assert.Equal(t, 1, e.DiscoveredCount)
		assert.Equal(t, 0, e.Experience)
	}

	mascot := repo.Mascot()
	require.NotNil(t, mascot)
	assert.Equal(t, models.PersonaID(3), mascot.PersonaID)
	assert.Equal(t, models.MoodHappy, mascot.Mood)
	assert.Equal(t, "2024-01-02", mascot.LastFedDate)
	assert.Equal(t, 2, mascot.TotalFeedings)
}

func TestMigrateIfNeeded_PriorStreakIsNotFirstVisit(t *testing.T) {
	m, repo := newTestMigrator()

	repo.SaveStreak(models.StreakRecord{CurrentStreak: 1, LastActiveDate: "2024-01-01"})

	assert.False(t, m.MigrateIfNeeded(migrateNow))
	assert.Equal(t, "2024-01-01", repo.Profile().FirstVisitDate)
}

func TestMigrateIfNeeded_CurrentSchemaIsNoOp(t *testing.T) {
	m, repo := newTestMigrator()

	repo.SaveProfile(&models.ProfileMeta{FirstVisitDate: "2023-06-01", SchemaVersion: 2})
	repo.SaveLegacyCollection(&models.LegacyCollection{Discovered: []models.PersonaID{3}})

	assert.False(t, m.MigrateIfNeeded(migrateNow))

	// Nothing was converted.
	assert.Empty(t, repo.Collection().Entries)
	assert.Nil(t, repo.Mascot())
	assert.Equal(t, "2023-06-01", repo.Profile().FirstVisitDate)
}

func TestMigrateIfNeeded_RunsOncePerProcess(t *testing.T) {
	m, repo := newTestMigrator()

	assert.True(t, m.MigrateIfNeeded(migrateNow))

	// Later data must not change the cached answer.
	repo.SaveStreak(models.StreakRecord{CurrentStreak: 3, LastActiveDate: "2024-01-02"})
	assert.True(t, m.MigrateIfNeeded(migrateNow))
}

func TestRepresentativePersona_MostFedWins(t *testing.T) {
	history := []models.FeedingLogEntry{
		{Date: "2024-01-01", PersonaID: 2},
		{Date: "2024-01-02", PersonaID: 5},
		{Date: "2024-01-03", PersonaID: 5},
	}
	assert.Equal(t, models.PersonaID(5), RepresentativePersona(history, &models.Collection{}))
}

func TestRepresentativePersona_TieGoesToMostRecent(t *testing.T) {
	history := []models.FeedingLogEntry{
		{Date: "2024-01-01", PersonaID: 2},
		{Date: "2024-01-02", PersonaID: 5},
	}
	assert.Equal(t, models.PersonaID(5), RepresentativePersona(history, &models.Collection{}))
}

func TestRepresentativePersona_FallsBackToCollection(t *testing.T) {
	col := &models.Collection{}
	col.Upsert(9, "2024-01-01")
	assert.Equal(t, models.PersonaID(9), RepresentativePersona(nil, col))
}

func TestRepresentativePersona_FallsBackToFirstPersona(t *testing.T) {
	assert.Equal(t, models.PersonaID(1), RepresentativePersona(nil, &models.Collection{}))
}
