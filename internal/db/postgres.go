package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitPostgres initializes and returns a PostgreSQL connection pool
func InitPostgres() (*pgxpool.Pool, error) {
	// Get database URL from environment variable or use default
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// Default local development configuration
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5432")
		user := getEnvOrDefault("POSTGRES_USER", "remy")
		password := getEnvOrDefault("POSTGRES_PASSWORD", "")
		dbname := getEnvOrDefault("POSTGRES_DB", "remy")
		sslmode := getEnvOrDefault("POSTGRES_SSLMODE", "disable")

		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			user, password, host, port, dbname, sslmode)
	}

	// Configure connection pool
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Set connection pool settings
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.HealthCheckPeriod = time.Minute * 5

	// Create connection pool
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create tables if they don't exist
	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates all required tables if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	// Journal entries table - one row per entry; timestamp is the semantic
	// instant streak computation keys on, created_at is the audit instant
	entriesTable := `
		CREATE TABLE IF NOT EXISTS journal_entries (
			id UUID PRIMARY KEY,
			user_uid VARCHAR(255) NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			journal_type VARCHAR(20) NOT NULL,
			mood_tag VARCHAR(20),
			theme_tags TEXT[],
			photo_url TEXT,
			audio_url TEXT,
			location TEXT,
			timestamp TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	// Streaks table - one row per user; version backs the optimistic
	// concurrency check on the read-modify-write cycle
	streaksTable := `
		CREATE TABLE IF NOT EXISTS streaks (
			user_uid VARCHAR(255) PRIMARY KEY,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_entry_date DATE,
			version BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT streaks_longest_bound CHECK (longest_streak >= current_streak)
		);
	`

	// Push tokens - device registration for streak reminder pushes
	pushTokensTable := `
		CREATE TABLE IF NOT EXISTS push_tokens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_uid VARCHAR(255) NOT NULL,
			fcm_token TEXT NOT NULL,
			platform VARCHAR(20) NOT NULL,
			timezone VARCHAR(50) NOT NULL DEFAULT 'UTC',
			active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(user_uid)
		);
	`

	// Create indexes for better performance
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_uid ON journal_entries(user_uid);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_timestamp ON journal_entries(user_uid, timestamp DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_streaks_last_entry_date ON streaks(last_entry_date);`,
		`CREATE INDEX IF NOT EXISTS idx_push_tokens_user_uid ON push_tokens(user_uid);`,
		`CREATE INDEX IF NOT EXISTS idx_push_tokens_active ON push_tokens(active);`,
	}

	// Execute table creation statements
	tables := []string{entriesTable, streaksTable, pushTokensTable}

	for _, table := range tables {
		if _, err := pool.Exec(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Execute index creation statements
	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
