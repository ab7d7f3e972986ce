package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurad/internal/models"
	"aurad/internal/store"
	"aurad/internal/testutil"
)

var (
	day1 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	day5 = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
)

func newTestService() (*AuraService, store.RepositoryInterface) {
	kv := testutil.NewMemKV()
	logger := &testutil.MockLogger{}
	repo := store.NewRepository(kv, logger)
	migrator := store.NewMigrator(repo, logger)
	return NewAuraService(repo, migrator), repo
}

func TestDraw_FirstDraw(t *testing.T) {
	s, repo := newTestService()

	out := s.Draw("Kim", day1)

	assert.Equal(t, models.PersonaID(19), out.Persona.ID)
	assert.Equal(t, "Kim", out.Name)
	assert.Equal(t, "2024-01-01", out.Date)
	assert.True(t, out.IsNewDiscovery)
	assert.Equal(t, 1, out.Streak.CurrentStreak)
	assert.Equal(t, models.EvolutionLevel(0), out.EvolutionLevel)
	assert.False(t, out.Evolved)

	// Drawing feeds once.
	require.NotNil(t, out.Mascot)
	assert.Equal(t, models.PersonaID(19), out.Mascot.PersonaID)
	assert.Equal(t, 1, out.Mascot.Experience)
	assert.Equal(t, 1, out.Mascot.TotalFeedings)
	assert.Equal(t, models.MoodHappy, out.Mascot.Mood)
	assert.Equal(t, "2024-01-01", out.Mascot.LastFedDate)

	require.Len(t, out.FeedingHistory, 1)
	assert.True(t, out.FeedingHistory[0].FedToMascot)

	assert.True(t, repo.LegacyCollection().Has(19))
	assert.Equal(t, "Kim", repo.UserName())
	today := repo.Today("2024-01-01")
	require.NotNil(t, today)
	assert.Equal(t, models.PersonaID(19), today.PersonaID)
}

func TestDraw_SameDayTwiceKeepsStreak(t *testing.T) {
	s, _ := newTestService()

	s.Draw("Kim", day1)
	out := s.Draw("Kim", day1)

	assert.False(t, out.IsNewDiscovery)
	assert.Equal(t, 1, out.Streak.CurrentStreak)
	// Each draw still feeds and counts a discovery.
	assert.Equal(t, 2, out.Mascot.Experience)
	entry := out.Collection.Entry(19)
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.DiscoveredCount)
}

func TestDraw_ConsecutiveDaysExtendStreak(t *testing.T) {
	s, _ := newTestService()

	s.Draw("Kim", day1)
	out := s.Draw("Kim", day2)

	assert.Equal(t, 2, out.Streak.CurrentStreak)
	assert.Equal(t, "2024-01-02", out.Streak.LastActiveDate)

	// Day two draws a different persona; the old mascot's progress was
	// flushed to its entry before repointing.
	assert.Equal(t, models.PersonaID(4), out.Mascot.PersonaID)
	prev := out.Collection.Entry(19)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.Experience)
}

func TestDraw_GapResetsStreak(t *testing.T) {
	s, _ := newTestService()

	s.Draw("Kim", day1)
	out := s.Draw("Kim", day5)

	assert.Equal(t, 1, out.Streak.CurrentStreak)
}

func TestDraw_TrimsName(t *testing.T) {
	s, repo := newTestService()

	out := s.Draw("  Kim  ", day1)

	assert.Equal(t, models.PersonaID(19), out.Persona.ID)
	assert.Equal(t, "Kim", out.Name)
	assert.Equal(t, "Kim", repo.UserName())
}

func TestManualFeed_AddsExperience(t *testing.T) {
	s, _ := newTestService()
	s.Draw("Kim", day1)

	out, err := s.ManualFeed(false, day1)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Mascot.Experience)
	assert.False(t, out.Evolved)

	// Not idempotent: the mascot now sits on the ad gate.
	_, err = s.ManualFeed(false, day1)
	assert.ErrorIs(t, err, ErrAdRequired)
}

func TestManualFeed_AdGate(t *testing.T) {
	s, repo := newTestService()
	s.Draw("Kim", day1)
	_, err := s.ManualFeed(false, day1)
	require.NoError(t, err)

	// Gauge position 2: refused without an ad, nothing committed.
	_, err = s.ManualFeed(false, day1)
	assert.ErrorIs(t, err, ErrAdRequired)
	assert.Equal(t, 2, repo.Mascot().Experience)

	// The same feed passes once the ad was watched.
	out, err := s.ManualFeed(true, day1)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Mascot.Experience)
}

func TestManualFeed_FifthFeedEvolves(t *testing.T) {
	s, _ := newTestService()
	s.Draw("Kim", day1) // exp 1

	var out *FeedOutcome
	var err error
	for exp := 2; exp <= 5; exp++ {
		out, err = s.ManualFeed(true, day1)
		require.NoError(t, err)
		assert.Equal(t, exp, out.Mascot.Experience)
	}

	assert.True(t, out.Evolved)
	assert.Equal(t, models.EvolutionLevel(1), out.EvolutionLevel)
	assert.Equal(t, models.EvolutionLevel(0), out.PreviousLevel)
	assert.Equal(t, 0, out.FeedingGauge)
}

func TestManualFeed_SyncsCollectionEntry(t *testing.T) {
	s, repo := newTestService()
	s.Draw("Kim", day1)

	_, err := s.ManualFeed(false, day1)
	require.NoError(t, err)

	entry := repo.Collection().Entry(19)
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Experience)
	assert.Equal(t, 2, entry.TotalFeedings)
}

func TestManualFeed_WithoutMascotStartsFresh(t *testing.T) {
	s, repo := newTestService()

	out, err := s.ManualFeed(false, day1)
	require.NoError(t, err)
	assert.Equal(t, models.PersonaID(1), out.Mascot.PersonaID)
	assert.Equal(t, 1, out.Mascot.Experience)
	require.NotNil(t, repo.Mascot())
}

func TestReroll_WithoutDrawFails(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Reroll("Kim", day1)
	assert.ErrorIs(t, err, ErrNoDrawToday)
}

func TestReroll_ReplacesTodayAndResetsProgress(t *testing.T) {
	s, repo := newTestService()
	first := s.Draw("Kim", day1)

	out, err := s.Reroll("Kim", day1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Persona.ID, out.Persona.ID)
	assert.Equal(t, 0, out.Mascot.Experience)
	assert.Equal(t, models.EvolutionLevel(0), out.EvolutionLevel)

	today := repo.Today("2024-01-01")
	require.NotNil(t, today)
	assert.Equal(t, out.Persona.ID, today.PersonaID)

	entry := out.Collection.Entry(out.Persona.ID)
	require.NotNil(t, entry)
	assert.Equal(t, 0, entry.Experience)
	assert.Equal(t, 0, entry.TotalFeedings)
}

func TestReroll_LeavesOtherEntriesAlone(t *testing.T) {
	s, _ := newTestService()
	s.Draw("Kim", day1)
	s.Draw("Kim", day2) // persona 4; entry 19 flushed with exp 1

	out, err := s.Reroll("Kim", day2)
	require.NoError(t, err)

	if out.Persona.ID != 19 {
		prev := out.Collection.Entry(19)
		require.NotNil(t, prev)
		assert.Equal(t, 1, prev.Experience)
	}
}

func TestSwitchMascot_RestoresEntryProgress(t *testing.T) {
	s, repo := newTestService()
	s.Draw("Kim", day1) // 19, exp 1
	_, err := s.ManualFeed(false, day1)
	require.NoError(t, err) // 19 at exp 2
	s.Draw("Kim", day2)     // mascot now 4, exp 1; 19 flushed at exp 2

	out, err := s.SwitchMascot(19)
	require.NoError(t, err)
	assert.Equal(t, models.PersonaID(19), out.Mascot.PersonaID)
	assert.Equal(t, 2, out.Mascot.Experience)

	// Switching back restores persona 4's own progress.
	out, err = s.SwitchMascot(4)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Mascot.Experience)
	assert.Equal(t, 2, repo.Collection().Entry(19).Experience)
}

func TestSwitchMascot_UndiscoveredFails(t *testing.T) {
	s, _ := newTestService()
	s.Draw("Kim", day1)

	_, err := s.SwitchMascot(2)
	assert.ErrorIs(t, err, ErrNotDiscovered)
}

func TestSwitchMascot_UnknownIDFails(t *testing.T) {
	s, _ := newTestService()

	_, err := s.SwitchMascot(0)
	assert.ErrorIs(t, err, ErrUnknownPersona)
	_, err = s.SwitchMascot(21)
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestLoadState_FirstVisit(t *testing.T) {
	s, _ := newTestService()

	state := s.LoadState(day1)

	assert.True(t, state.IsFirstVisit)
	assert.Nil(t, state.TodayRecord)
	assert.Equal(t, 0, state.Streak.CurrentStreak)
	require.NotNil(t, state.Mascot)
	assert.Equal(t, models.PersonaID(1), state.Mascot.PersonaID)
	assert.Equal(t, models.MoodSleepy, state.Mascot.Mood)
	assert.Equal(t, models.DailyQuotes[6], state.DailyQuote)
}

func TestLoadState_AfterDraw(t *testing.T) {
	s, _ := newTestService()
	s.LoadState(day1)
	s.Draw("Kim", day1)

	state := s.LoadState(day1)

	require.NotNil(t, state.TodayRecord)
	assert.Equal(t, models.PersonaID(19), state.TodayRecord.PersonaID)
	assert.Equal(t, 1, state.Streak.CurrentStreak)
	assert.Equal(t, models.MoodHappy, state.Mascot.Mood)
	assert.Equal(t, "Kim", state.UserName)
	require.Len(t, state.Collection.Entries, 1)
}

func TestLoadState_MoodDecaysWithoutFeeding(t *testing.T) {
	s, _ := newTestService()
	s.LoadState(day1)
	s.Draw("Kim", day1)

	assert.Equal(t, models.MoodNeutral, s.LoadState(day2).Mascot.Mood)
	assert.Equal(t, models.MoodSleepy, s.LoadState(day5).Mascot.Mood)
}

func TestDailyQuote_KnownValue(t *testing.T) {
	s, _ := newTestService()
	assert.Equal(t, models.DailyQuotes[6], s.DailyQuote(day1))
}

func TestPartner_KnownValue(t *testing.T) {
	s, _ := newTestService()

	partner, err := s.Partner(1, day1)
	require.NoError(t, err)
	assert.Equal(t, models.PersonaID(10), partner.ID)
}

func TestPartner_UnknownIDFails(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Partner(0, day1)
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestCollectionSizeAndMascotLevel(t *testing.T) {
	s, _ := newTestService()

	assert.Equal(t, 0, s.CollectionSize())
	assert.Equal(t, 0, s.MascotLevel())

	s.Draw("Kim", day1)
	assert.Equal(t, 1, s.CollectionSize())
	assert.Equal(t, 0, s.MascotLevel())
}
