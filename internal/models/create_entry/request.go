package models

import "time"

type CreateEntryRequest struct {
	Content     string  `json:"content"`
	JournalType string  `json:"journalType" binding:"required"`
	MoodTag     *string `json:"moodTag,omitempty"`
	ThemeTag    *string `json:"themeTag,omitempty"`
	ImageURI    *string `json:"imageUri,omitempty"`
	AudioURI    *string `json:"audioUri,omitempty"`
	Location    *string `json:"location,omitempty"`
	// Timestamp overrides "now" for backdated entries.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
