package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	getmodels "io.remyapps.remy/internal/models/get_entry"
	models "io.remyapps.remy/internal/models/journal"
)

// GetEntry returns a single journal entry, trying the Redis cache first
func (h *EntryHandler) GetEntry(c *gin.Context) {
	var req getmodels.GetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if cached, err := h.redis.Get(ctx, entryCacheKey(userUID, req.EntryID)).Result(); err == nil {
		var entry models.Entry
		if err := json.Unmarshal([]byte(cached), &entry); err == nil {
			c.JSON(http.StatusOK, entry)
			return
		}
	}

	entry, err := h.service.GetEntry(ctx, userUID, req.EntryID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to get entry")
		return
	}

	h.cacheEntry(ctx, userUID, entry)
	c.JSON(http.StatusOK, entry)
}
