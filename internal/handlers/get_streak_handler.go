package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	streakmodels "io.remyapps.remy/internal/models/get_streak"
)

// GetStreak returns the user's current and longest streak, lazily creating
// the zero record for a brand-new user
func (h *EntryHandler) GetStreak(c *gin.Context) {
	userUID, ok := currentUID(c)
	if !ok {
		return
	}

	record, err := h.service.GetStreak(c.Request.Context(), userUID)
	if err != nil {
		h.respondServiceError(c, err, "Failed to load streak")
		return
	}

	resp := streakmodels.GetStreakResponse{
		CurrentStreak: record.CurrentStreak,
		LongestStreak: record.LongestStreak,
	}
	if record.LastEntryDate != nil {
		day := record.LastEntryDate.Format("2006-01-02")
		resp.LastEntryDate = &day
	}

	c.JSON(http.StatusOK, resp)
}
