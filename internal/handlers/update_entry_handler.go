package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	updatemodels "io.remyapps.remy/internal/models/update_entry"
)

// UpdateEntry rewrites an entry's mutable fields (content, tags, attachments).
// Journal type and timestamp are fixed at creation; edits never touch the
// streak
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req updatemodels.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	mood, theme, err := parseTags(req.MoodTag, req.ThemeTag)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tag value"})
		return
	}

	ctx := c.Request.Context()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to load entry")
		return
	}

	entry.Content = req.Content
	entry.MoodTag = mood
	entry.ThemeTag = theme
	entry.ImageURI = req.ImageURI
	entry.AudioURI = req.AudioURI
	entry.Location = req.Location

	if err := h.service.UpdateEntry(ctx, userUID, entry); err != nil {
		h.respondServiceError(c, err, "Failed to update entry")
		return
	}

	h.dropCachedEntry(ctx, userUID, entry.ID)
	c.JSON(http.StatusOK, entry)
}
