package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"io.remyapps.remy/internal/db"
	firebaseutil "io.remyapps.remy/internal/firebase"
	"io.remyapps.remy/internal/handlers"
	"io.remyapps.remy/internal/jobs"
	"io.remyapps.remy/internal/journal"
	"io.remyapps.remy/internal/middleware"
	"io.remyapps.remy/internal/store/memory"
	"io.remyapps.remy/internal/store/postgres"
	"io.remyapps.remy/internal/storage"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize Firebase
	firebaseApp, err := firebaseutil.InitFirebase()
	if err != nil {
		logger.Fatalw("Failed to initialize Firebase", "error", err)
	}

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		logger.Fatalw("Failed to initialize Redis", "error", err)
	}
	defer redisClient.Close()

	// Pick the entry/streak backend. "memory" runs the API against seeded
	// in-process stores, no database required.
	var (
		entryStore   journal.EntryStore
		streakStore  journal.StreakStore
		notifHandler *handlers.NotificationsHandler
	)
	backend := envOrDefault("JOURNAL_STORE", "postgres")
	switch backend {
	case "memory":
		entries := memory.NewEntryStore()
		streaks := memory.NewStreakStore()
		memory.SeedMockData(entries, streaks, envOrDefault("MOCK_USER_UID", "demo-user"))
		entryStore, streakStore = entries, streaks
		logger.Infow("running with in-memory stores")
	default:
		pool, err := db.InitPostgres()
		if err != nil {
			logger.Fatalw("Failed to initialize PostgreSQL", "error", err)
		}
		defer pool.Close()

		entryStore = postgres.NewEntryStore(pool, logger)
		streakStore = postgres.NewStreakStore(pool)

		reminder := jobs.NewStreakReminder(firebaseApp, pool, logger)
		if err := reminder.Start(); err != nil {
			logger.Fatalw("Failed to start streak reminder job", "error", err)
		}
		defer reminder.Stop()

		// Push token registration only exists with a database behind it
		notifHandler = handlers.NewNotificationsHandler(pool, redisClient, logger)
	}

	service := journal.NewService(entryStore, streakStore, logger)

	photoStore, err := storage.NewPhotoStore(envOrDefault("PHOTO_DIR", "./data/images"), "/images")
	if err != nil {
		logger.Fatalw("Failed to initialize photo storage", "error", err)
	}

	// Initialize Gin router
	gin.SetMode(envOrDefault("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// CORS for the mobile app
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(service, redisClient, photoStore, logger)

	authRequired := middleware.AuthMiddleware(firebaseApp, redisClient)

	// Define routes
	v1 := router.Group("/api/v1")
	{
		entries := v1.Group("/entries")
		entries.Use(authRequired)
		{
			entries.POST("/create-entry", entryHandler.CreateEntry)
			entries.POST("/get-entry", entryHandler.GetEntry)
			entries.POST("/list-entries", entryHandler.ListEntries)
			entries.POST("/update-entry", entryHandler.UpdateEntry)
			entries.POST("/delete-entry", entryHandler.DeleteEntry)
			entries.POST("/upload-photo", entryHandler.UploadPhoto)
		}

		streak := v1.Group("/streak")
		streak.Use(authRequired)
		{
			streak.GET("", entryHandler.GetStreak)
		}

		if notifHandler != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(authRequired)
			{
				notifications.POST("/register-token", notifHandler.RegisterPushToken)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Serve photo attachments
	router.Static("/images", photoStore.Dir())

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + envOrDefault("PORT", "9091"),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "addr", srv.Addr, "backend", backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("Server forced to shutdown", "error", err)
	}

	logger.Infow("server exited")
}

// envOrDefault returns the environment variable value or a default value if not set
func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
