package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	listmodels "io.remyapps.remy/internal/models/list_entries"
)

// ListEntries returns all of the user's journal entries, newest first
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	entries, err := h.service.FetchEntries(c.Request.Context(), userUID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to fetch entries")
		return
	}

	c.JSON(http.StatusOK, listmodels.ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
}
