package models

import "time"

// StreakRecord is the per-user aggregate of consecutive journaling days.
// LongestStreak is monotonically non-decreasing and always >= CurrentStreak.
// LastEntryDate carries calendar-day granularity only; Version backs the
// optimistic concurrency check on updates.
type StreakRecord struct {
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastEntryDate *time.Time `json:"lastEntryDate,omitempty"`
	Version       int64      `json:"-"`
}
