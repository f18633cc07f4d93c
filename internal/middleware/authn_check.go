package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	firebaseutil "io.remyapps.remy/internal/firebase"
)

// sessionProbeTimeout bounds the token verification round-trip. A probe that
// exceeds it is treated as "no session" instead of blocking the request.
const sessionProbeTimeout = 2 * time.Second

const sessionCacheTTL = 24 * time.Hour

// AuthMiddleware resolves the bearer token to a user uid and sets it on the
// request context. Lookup order: Redis session cache, then Firebase.
func AuthMiddleware(firebaseApp *firebase.App, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with 'Bearer '"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()

		// Step 1: cached session
		sessionKey := fmt.Sprintf("session:%s", token)
		if uid, err := redisClient.Get(ctx, sessionKey).Result(); err == nil && uid != "" {
			c.Set("uid", uid)
			c.Next()
			return
		}

		// Step 2: verify with Firebase, bounded by the probe timeout
		var userUID string
		if authClient, err := firebaseutil.GetAuthClient(firebaseApp); err == nil {
			probeCtx, cancel := context.WithTimeout(ctx, sessionProbeTimeout)
			if idToken, err := authClient.VerifyIDToken(probeCtx, token); err == nil {
				userUID = idToken.UID
			}
			cancel()
		}

		if userUID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Cache the resolved session for subsequent requests
		redisClient.Set(ctx, sessionKey, userUID, sessionCacheTTL)

		c.Set("uid", userUID)
		c.Next()
	}
}
