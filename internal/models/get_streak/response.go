package models

type GetStreakResponse struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	// LastEntryDate is the calendar day in ISO-8601 (yyyy-mm-dd), absent
	// before the first entry.
	LastEntryDate *string `json:"lastEntryDate,omitempty"`
}
