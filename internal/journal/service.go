// Package journal orchestrates entry mutations and keeps the per-user streak
// record consistent with them.
package journal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	models "io.remyapps.remy/internal/models/journal"
	"io.remyapps.remy/internal/streak"
)

// EntryStore is the collection of journal entries for a user.
type EntryStore interface {
	Insert(ctx context.Context, userID string, entry *models.Entry) error
	Update(ctx context.Context, userID string, entry *models.Entry) error
	Delete(ctx context.Context, userID, entryID string) error
	Get(ctx context.Context, userID, entryID string) (*models.Entry, error)
	// FetchAll returns the user's entries newest-first by timestamp.
	FetchAll(ctx context.Context, userID string) ([]models.Entry, error)
}

// StreakStore persists one StreakRecord per user. Update compares the record's
// Version against the stored one and fails with ErrVersionConflict on mismatch.
type StreakStore interface {
	Read(ctx context.Context, userID string) (*models.StreakRecord, error)
	Create(ctx context.Context, userID string, record models.StreakRecord) error
	Update(ctx context.Context, userID string, record models.StreakRecord) error
}

const casRetries = 3

// Service is the single place that recomputes the streak after an
// entry-creating mutation. Construct one per process and inject the stores;
// there is no package-level instance.
type Service struct {
	entries EntryStore
	streaks StreakStore
	logger  *zap.SugaredLogger

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewService(entries EntryStore, streaks StreakStore, logger *zap.SugaredLogger) *Service {
	return &Service{
		entries:   entries,
		streaks:   streaks,
		logger:    logger,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor serializes streak read-modify-write per user within this process.
func (s *Service) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// CreateEntry persists the entry and folds its timestamp into the user's
// streak. A missing id or timestamp is filled in here. If the streak write
// fails after a successful insert, the entry stays persisted and the error is
// surfaced: a stale streak beats losing user content.
func (s *Service) CreateEntry(ctx context.Context, userID string, entry *models.Entry) (*models.Entry, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	now := time.Now()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := s.entries.Insert(ctx, userID, entry); err != nil {
		return nil, &PersistenceError{Op: "insert entry", Err: err}
	}

	if err := s.recordActivity(ctx, userID, entry.Timestamp); err != nil {
		return nil, err
	}
	return entry, nil
}

// recordActivity runs the streak read-modify-write under the per-user lock
// with a bounded retry on version conflicts.
func (s *Service) recordActivity(ctx context.Context, userID string, entryTime time.Time) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		current, err := s.loadOrCreateStreak(ctx, userID)
		if err != nil {
			return err
		}

		next := streak.Apply(*current, entryTime)
		if next.CurrentStreak == current.CurrentStreak &&
			next.LongestStreak == current.LongestStreak &&
			next.LastEntryDate != nil && current.LastEntryDate != nil &&
			next.LastEntryDate.Equal(*current.LastEntryDate) {
			// Same-day entry, nothing to write.
			return nil
		}

		next.Version = current.Version
		err = s.streaks.Update(ctx, userID, next)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return &PersistenceError{Op: "update streak", Err: err}
		}
		lastErr = err
		s.logger.Warnw("streak update conflict, retrying",
			"user_id", userID,
			"attempt", attempt+1,
		)
	}
	return &PersistenceError{Op: "update streak", Err: lastErr}
}

// loadOrCreateStreak reads the user's record, creating the zero record on
// first touch.
func (s *Service) loadOrCreateStreak(ctx context.Context, userID string) (*models.StreakRecord, error) {
	record, err := s.streaks.Read(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "read streak", Err: err}
	}
	if record != nil {
		return record, nil
	}

	zero := models.StreakRecord{}
	if err := s.streaks.Create(ctx, userID, zero); err != nil {
		return nil, &PersistenceError{Op: "create streak", Err: err}
	}
	return &zero, nil
}

// GetStreak returns the user's streak record, lazily creating the zero record
// for a brand-new user.
//
// Known limitation: deleting entries never recomputes the streak, so the
// record can be stale relative to the entry store until the next creation.
func (s *Service) GetStreak(ctx context.Context, userID string) (*models.StreakRecord, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.loadOrCreateStreak(ctx, userID)
}

// FetchEntries returns the user's entries newest-first by timestamp.
func (s *Service) FetchEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	entries, err := s.entries.FetchAll(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch entries", Err: err}
	}
	return entries, nil
}

// GetEntry returns a single entry by id.
func (s *Service) GetEntry(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	entry, err := s.entries.Get(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "get entry", Err: err}
	}
	return entry, nil
}

// UpdateEntry rewrites an entry's mutable fields. Edits never recompute the
// streak; only creation does.
func (s *Service) UpdateEntry(ctx context.Context, userID string, entry *models.Entry) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	entry.UpdatedAt = time.Now()
	if err := s.entries.Update(ctx, userID, entry); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return err
		}
		return &PersistenceError{Op: "update entry", Err: err}
	}
	return nil
}

// DeleteEntry removes the entry. The streak record is deliberately left
// untouched, matching creation-only recomputation; it may go stale until the
// next CreateEntry.
func (s *Service) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return err
		}
		return &PersistenceError{Op: "delete entry", Err: err}
	}
	return nil
}
