package models

import "time"

const dateLayout = "2006-01-02"

// DateString formats a moment as the user-local calendar day.
func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

// YesterdayString is naive local-calendar subtraction, matching the data
// already written by older app versions. No timezone normalization.
func YesterdayString(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// CutoffString returns the calendar day `days` before t. Records dated
// strictly before the cutoff are considered expired.
func CutoffString(t time.Time, days int) string {
	return t.AddDate(0, 0, -days).Format(dateLayout)
}
