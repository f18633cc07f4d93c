package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io.remyapps.remy/internal/journal"
	models "io.remyapps.remy/internal/models/journal"
)

func entry(id string, ts time.Time) *models.Entry {
	return &models.Entry{ID: id, Content: "c", JournalType: models.TypeQuick, Timestamp: ts}
}

func TestEntryStore_FetchAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewEntryStore()
	base := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Insert(ctx, "u1", entry("a", base)))
	require.NoError(t, s.Insert(ctx, "u1", entry("b", base.AddDate(0, 0, 2))))
	require.NoError(t, s.Insert(ctx, "u1", entry("c", base.AddDate(0, 0, 1))))

	got, err := s.FetchAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestEntryStore_UserIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewEntryStore()
	now := time.Now()

	require.NoError(t, s.Insert(ctx, "u1", entry("a", now)))

	got, err := s.FetchAll(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.Get(ctx, "u2", "a")
	assert.ErrorIs(t, err, journal.ErrEntryNotFound)
}

func TestEntryStore_DeleteMissing(t *testing.T) {
	s := NewEntryStore()
	err := s.Delete(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, journal.ErrEntryNotFound)
}

func TestStreakStore_ReadAbsentReturnsNil(t *testing.T) {
	s := NewStreakStore()
	got, err := s.Read(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStreakStore_UpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	s := NewStreakStore()
	require.NoError(t, s.Create(ctx, "u1", models.StreakRecord{}))

	read, err := s.Read(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, read)

	read.CurrentStreak = 1
	read.LongestStreak = 1
	require.NoError(t, s.Update(ctx, "u1", *read))

	// Re-submitting the stale version must conflict.
	err = s.Update(ctx, "u1", *read)
	assert.ErrorIs(t, err, journal.ErrVersionConflict)

	fresh, err := s.Read(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.CurrentStreak)
}

func TestSeedMockData(t *testing.T) {
	ctx := context.Background()
	entries := NewEntryStore()
	streaks := NewStreakStore()
	SeedMockData(entries, streaks, "demo")

	got, err := entries.FetchAll(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	rec, err := streaks.Read(ctx, "demo")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, 7, rec.LongestStreak)
}
