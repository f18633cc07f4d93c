package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"io.remyapps.remy/internal/journal"
	models "io.remyapps.remy/internal/models/journal"
	"io.remyapps.remy/internal/storage"
)

const entryCacheTTL = 24 * time.Hour

type EntryHandler struct {
	service *journal.Service
	redis   *redis.Client
	photos  *storage.PhotoStore
	logger  *zap.SugaredLogger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(service *journal.Service, redisClient *redis.Client, photos *storage.PhotoStore, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{
		service: service,
		redis:   redisClient,
		photos:  photos,
		logger:  logger,
	}
}

// currentUID pulls the authenticated user id the auth middleware stored
func currentUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	userUID, ok := uid.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return "", false
	}
	return userUID, true
}

// respondServiceError maps service errors onto HTTP statuses
func (h *EntryHandler) respondServiceError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, journal.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	case errors.Is(err, journal.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	default:
		h.logError(c, err, msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func entryCacheKey(userUID, entryID string) string {
	return fmt.Sprintf("entry:%s:%s", userUID, entryID)
}

// cacheEntry stores the entry JSON in Redis, best effort
func (h *EntryHandler) cacheEntry(ctx context.Context, userUID string, entry *models.Entry) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		h.logger.Warnw("failed to marshal entry for cache", "entry_id", entry.ID, "error", err)
		return
	}
	if err := h.redis.Set(ctx, entryCacheKey(userUID, entry.ID), entryJSON, entryCacheTTL).Err(); err != nil {
		h.logger.Warnw("failed to cache entry", "entry_id", entry.ID, "error", err)
	}
}

// dropCachedEntry evicts the entry from Redis, best effort
func (h *EntryHandler) dropCachedEntry(ctx context.Context, userUID, entryID string) {
	if err := h.redis.Del(ctx, entryCacheKey(userUID, entryID)).Err(); err != nil {
		h.logger.Warnw("failed to evict cached entry", "entry_id", entryID, "error", err)
	}
}

// parseTags decodes optional mood/theme tag strings from a request
func parseTags(moodTag, themeTag *string) (*models.MoodTag, *models.ThemeTag, error) {
	var mood *models.MoodTag
	if moodTag != nil && *moodTag != "" {
		m, err := models.ParseMoodTag(*moodTag)
		if err != nil {
			return nil, nil, err
		}
		mood = &m
	}
	var theme *models.ThemeTag
	if themeTag != nil && *themeTag != "" {
		t, err := models.ParseThemeTag(*themeTag)
		if err != nil {
			return nil, nil, err
		}
		theme = &t
	}
	return mood, theme, nil
}
