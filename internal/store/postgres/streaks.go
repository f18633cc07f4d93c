package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"io.remyapps.remy/internal/journal"
	models "io.remyapps.remy/internal/models/journal"
)

type StreakStore struct {
	pool *pgxpool.Pool
}

func NewStreakStore(pool *pgxpool.Pool) *StreakStore {
	return &StreakStore{pool: pool}
}

// Read returns the user's streak record, or nil when none exists yet.
func (s *StreakStore) Read(ctx context.Context, userID string) (*models.StreakRecord, error) {
	query := `
		SELECT current_streak, longest_streak, last_entry_date, version
		FROM streaks
		WHERE user_uid = $1
	`
	var record models.StreakRecord
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&record.CurrentStreak,
		&record.LongestStreak,
		&record.LastEntryDate,
		&record.Version,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read streak: %w", err)
	}
	return &record, nil
}

func (s *StreakStore) Create(ctx context.Context, userID string, record models.StreakRecord) error {
	query := `
		INSERT INTO streaks (user_uid, current_streak, longest_streak, last_entry_date, version)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (user_uid) DO NOTHING
	`
	_, err := s.pool.Exec(ctx, query,
		userID,
		record.CurrentStreak,
		record.LongestStreak,
		record.LastEntryDate,
	)
	if err != nil {
		return fmt.Errorf("create streak: %w", err)
	}
	return nil
}

// Update writes the record only if the stored version still matches the one
// it was read at, bumping the version on success. A concurrent writer that
// got there first surfaces as ErrVersionConflict.
func (s *StreakStore) Update(ctx context.Context, userID string, record models.StreakRecord) error {
	query := `
		UPDATE streaks
		SET current_streak = $1,
		    longest_streak = $2,
		    last_entry_date = $3,
		    version = version + 1,
		    updated_at = NOW()
		WHERE user_uid = $4 AND version = $5
	`
	tag, err := s.pool.Exec(ctx, query,
		record.CurrentStreak,
		record.LongestStreak,
		record.LastEntryDate,
		userID,
		record.Version,
	)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return journal.ErrVersionConflict
	}
	return nil
}
