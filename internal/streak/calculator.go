// Package streak derives the per-user streak aggregate from entry activity.
// Everything here is pure: no clocks, no I/O.
package streak

import (
	"time"

	models "io.remyapps.remy/internal/models/journal"
)

// DayOf truncates t to local midnight, the calendar-day granularity every
// streak comparison uses.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar-day boundaries crossed between from and to,
// going by each time's own calendar date. Comparing date components rather
// than durations keeps the count stable across DST transitions and across
// mixed zone representations of the same day, e.g. a DATE column scanned
// back as UTC midnight against a client timestamp at UTC+13.
func DaysBetween(from, to time.Time) int {
	return epochDay(to) - epochDay(from)
}

// epochDay numbers t's calendar day as days since the Unix epoch.
func epochDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// Apply returns the streak record that follows prev once an entry dated
// entryDay has been recorded.
//
// A zero current streak always restarts at 1 regardless of the stored last
// date. Otherwise the calendar-day distance to the last counted entry decides:
// same day is a no-op, the very next day extends the streak, and any larger
// gap resets it to 1. A negative distance (backdated entry) is treated as a
// reset as well, so out-of-order inserts never inflate the streak.
func Apply(prev models.StreakRecord, entryDay time.Time) models.StreakRecord {
	today := DayOf(entryDay)
	next := prev

	switch {
	case prev.CurrentStreak == 0 || prev.LastEntryDate == nil:
		next.CurrentStreak = 1
	default:
		switch days := DaysBetween(*prev.LastEntryDate, today); {
		case days == 0:
			return prev
		case days == 1:
			next.CurrentStreak = prev.CurrentStreak + 1
		default:
			next.CurrentStreak = 1
		}
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.LastEntryDate = &today
	return next
}
