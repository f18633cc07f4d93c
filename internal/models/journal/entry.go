package models

import "time"

// Entry is a single journal entry. Timestamp is the semantic "when this entry
// is about" instant and is what streak computation keys on; CreatedAt is the
// wall-clock creation time kept for audit.
type Entry struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	JournalType JournalType `json:"journalType"`
	MoodTag     *MoodTag    `json:"moodTag,omitempty"`
	ThemeTag    *ThemeTag   `json:"themeTag,omitempty"`
	ImageURI    *string     `json:"imageUri,omitempty"`
	AudioURI    *string     `json:"audioUri,omitempty"`
	Location    *string     `json:"location,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
