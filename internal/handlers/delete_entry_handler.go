package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	deletemodels "io.remyapps.remy/internal/models/delete_entry"
)

// DeleteEntry removes an entry and its photo attachment. The streak record is
// left as-is; deletions never recompute it
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	var req deletemodels.DeleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to load entry")
		return
	}

	if err := h.service.DeleteEntry(ctx, userUID, req.EntryID); err != nil {
		h.respondServiceError(c, err, "Failed to delete entry")
		return
	}

	// Photo and cache cleanup are best effort once the row is gone
	if entry.ImageURI != nil {
		if err := h.photos.Delete(*entry.ImageURI); err != nil {
			h.logger.Warnw("failed to delete entry photo", "entry_id", req.EntryID, "error", err)
		}
	}
	h.dropCachedEntry(ctx, userUID, req.EntryID)

	c.JSON(http.StatusOK, gin.H{"isDeleted": true, "message": "Entry deleted successfully"})
}
