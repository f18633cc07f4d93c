package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	notificationsmodels "io.remyapps.remy/internal/models/notifications"
)

type NotificationsHandler struct {
	db     *pgxpool.Pool
	redis  *redis.Client
	logger *zap.SugaredLogger
}

func NewNotificationsHandler(db *pgxpool.Pool, redisClient *redis.Client, logger *zap.SugaredLogger) *NotificationsHandler {
	return &NotificationsHandler{db: db, redis: redisClient, logger: logger}
}

// RegisterPushToken upserts the device token used for streak reminder pushes
func (h *NotificationsHandler) RegisterPushToken(c *gin.Context) {
	var tokenData notificationsmodels.PushToken
	if err := c.ShouldBindJSON(&tokenData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userUID, ok := currentUID(c)
	if !ok {
		return
	}
	tokenData.UserID = userUID
	tokenData.UpdatedAt = time.Now()
	if tokenData.Timezone == "" {
		tokenData.Timezone = "UTC"
	}

	query := `
		INSERT INTO push_tokens (user_uid, fcm_token, platform, timezone, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (user_uid)
		DO UPDATE SET
			fcm_token = EXCLUDED.fcm_token,
			platform = EXCLUDED.platform,
			timezone = EXCLUDED.timezone,
			active = TRUE,
			updated_at = NOW()
		RETURNING id`

	var id string
	err := h.db.QueryRow(c.Request.Context(), query,
		tokenData.UserID,
		tokenData.FCMToken,
		tokenData.Platform,
		tokenData.Timezone,
	).Scan(&id)
	if err != nil {
		h.logError(c, err, "Failed to save push token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save token"})
		return
	}

	// Cache the token in Redis for quick access
	tokenKey := fmt.Sprintf("push_token:%s", tokenData.UserID)
	tokenJSON, _ := json.Marshal(tokenData)
	h.redis.Set(c.Request.Context(), tokenKey, tokenJSON, 24*time.Hour)

	c.JSON(http.StatusOK, gin.H{
		"message": "Token registered successfully",
		"id":      id,
	})
}
