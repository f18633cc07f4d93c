// Package postgres implements the journal stores over a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"io.remyapps.remy/internal/journal"
	models "io.remyapps.remy/internal/models/journal"
)

type EntryStore struct {
	pool   *pgxpool.Pool
	logger *zap.SugaredLogger
}

func NewEntryStore(pool *pgxpool.Pool, logger *zap.SugaredLogger) *EntryStore {
	return &EntryStore{pool: pool, logger: logger}
}

func (s *EntryStore) Insert(ctx context.Context, userID string, entry *models.Entry) error {
	query := `
		INSERT INTO journal_entries
			(id, user_uid, content, journal_type, mood_tag, theme_tags,
			 photo_url, audio_url, location, timestamp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.pool.Exec(ctx, query,
		entry.ID,
		userID,
		entry.Content,
		string(entry.JournalType),
		moodValue(entry.MoodTag),
		themeValues(entry.ThemeTag),
		entry.ImageURI,
		entry.AudioURI,
		entry.Location,
		entry.Timestamp,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (s *EntryStore) Update(ctx context.Context, userID string, entry *models.Entry) error {
	query := `
		UPDATE journal_entries
		SET content = $1, mood_tag = $2, theme_tags = $3,
		    photo_url = $4, audio_url = $5, location = $6, updated_at = $7
		WHERE id = $8 AND user_uid = $9
	`
	tag, err := s.pool.Exec(ctx, query,
		entry.Content,
		moodValue(entry.MoodTag),
		themeValues(entry.ThemeTag),
		entry.ImageURI,
		entry.AudioURI,
		entry.Location,
		entry.UpdatedAt,
		entry.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("update journal entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return journal.ErrEntryNotFound
	}
	return nil
}

func (s *EntryStore) Delete(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM journal_entries WHERE id = $1 AND user_uid = $2`
	tag, err := s.pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return journal.ErrEntryNotFound
	}
	return nil
}

func (s *EntryStore) Get(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	query := selectEntryColumns + ` WHERE id = $1 AND user_uid = $2`
	row := s.pool.QueryRow(ctx, query, entryID, userID)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, journal.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// FetchAll returns the user's entries newest-first. Rows that fail to decode
// (unknown enum value, torn write) are skipped and logged rather than failing
// the whole fetch.
func (s *EntryStore) FetchAll(ctx context.Context, userID string) ([]models.Entry, error) {
	query := selectEntryColumns + ` WHERE user_uid = $1 ORDER BY timestamp DESC`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			var integrity *models.DataIntegrityError
			if errors.As(err, &integrity) {
				s.logger.Warnw("skipping undecodable journal entry",
					"user_uid", userID,
					"field", integrity.Field,
					"value", integrity.Value,
				)
				continue
			}
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch journal entries: %w", err)
	}
	return entries, nil
}

const selectEntryColumns = `
	SELECT id, content, journal_type, mood_tag, theme_tags,
	       photo_url, audio_url, location, timestamp, created_at, updated_at
	FROM journal_entries`

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var (
		entry       models.Entry
		journalType string
		moodTag     *string
		themeTags   []string
		ts          time.Time
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(
		&entry.ID,
		&entry.Content,
		&journalType,
		&moodTag,
		&themeTags,
		&entry.ImageURI,
		&entry.AudioURI,
		&entry.Location,
		&ts,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	jt, err := models.ParseJournalType(journalType)
	if err != nil {
		return nil, err
	}
	entry.JournalType = jt

	if moodTag != nil {
		mood, err := models.ParseMoodTag(*moodTag)
		if err != nil {
			return nil, err
		}
		entry.MoodTag = &mood
	}

	// The remote schema keeps themes as an array for forward compatibility;
	// the domain model treats the first element as the scalar tag.
	if len(themeTags) > 0 {
		theme, err := models.ParseThemeTag(themeTags[0])
		if err != nil {
			return nil, err
		}
		entry.ThemeTag = &theme
	}

	entry.Timestamp = ts
	entry.CreatedAt = createdAt
	entry.UpdatedAt = updatedAt
	return &entry, nil
}

func moodValue(m *models.MoodTag) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

func themeValues(t *models.ThemeTag) []string {
	if t == nil {
		return nil
	}
	return []string{string(*t)}
}
