package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	createmodels "io.remyapps.remy/internal/models/create_entry"
	models "io.remyapps.remy/internal/models/journal"
)

// CreateEntry handles creation of new journal entries and folds the new entry
// into the user's streak
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req createmodels.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	journalType, err := models.ParseJournalType(req.JournalType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown journal type"})
		return
	}

	mood, theme, err := parseTags(req.MoodTag, req.ThemeTag)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tag value"})
		return
	}

	entry := &models.Entry{
		ID:          uuid.New().String(),
		Content:     req.Content,
		JournalType: journalType,
		MoodTag:     mood,
		ThemeTag:    theme,
		ImageURI:    req.ImageURI,
		AudioURI:    req.AudioURI,
		Location:    req.Location,
	}
	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}

	ctx := c.Request.Context()

	saved, err := h.service.CreateEntry(ctx, userUID, entry)
	if err != nil {
		h.respondServiceError(c, err, "Failed to create entry")
		return
	}

	streak, err := h.service.GetStreak(ctx, userUID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to load streak")
		return
	}

	// Cache entry in Redis; the entry is saved either way
	h.cacheEntry(ctx, userUID, saved)

	c.JSON(http.StatusCreated, createmodels.CreateEntryResponse{
		Entry:  *saved,
		Streak: *streak,
	})
}
