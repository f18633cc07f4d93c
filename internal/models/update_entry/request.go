package models

type UpdateEntryRequest struct {
	EntryID  string  `json:"entryId" binding:"required"`
	Content  string  `json:"content"`
	MoodTag  *string `json:"moodTag,omitempty"`
	ThemeTag *string `json:"themeTag,omitempty"`
	ImageURI *string `json:"imageUri,omitempty"`
	AudioURI *string `json:"audioUri,omitempty"`
	Location *string `json:"location,omitempty"`
}
