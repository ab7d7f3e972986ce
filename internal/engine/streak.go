package engine

import "aurad/internal/models"

// AdvanceStreak applies one day's activity to a streak record.
// Same-day re-entry is a no-op, activity on the day after LastActiveDate
// continues the run, anything else starts over at 1.
func AdvanceStreak(rec models.StreakRecord, today, yesterday string) models.StreakRecord {
	switch rec.LastActiveDate {
	case today:
		return rec
	case yesterday:
		return models.StreakRecord{CurrentStreak: rec.CurrentStreak + 1, LastActiveDate: today}
	default:
		return models.StreakRecord{CurrentStreak: 1, LastActiveDate: today}
	}
}

// DisplayStreak decays a stored streak on read: anything older than
// yesterday reads as no streak at all.
func DisplayStreak(rec models.StreakRecord, today, yesterday string) models.StreakRecord {
	if rec.LastActiveDate == today || rec.LastActiveDate == yesterday {
		return rec
	}
	return models.StreakRecord{}
}
