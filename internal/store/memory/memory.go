// Package memory holds process-local store implementations, used when the
// service runs without a database (mock mode) and as test doubles.
package memory

import (
	"context"
	"sort"
	"sync"

	"io.remyapps.remy/internal/journal"
	models "io.remyapps.remy/internal/models/journal"
)

type EntryStore struct {
	mu      sync.RWMutex
	entries map[string][]models.Entry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make(map[string][]models.Entry)}
}

func (s *EntryStore) Insert(_ context.Context, userID string, entry *models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = append(s.entries[userID], *entry)
	return nil
}

func (s *EntryStore) Update(_ context.Context, userID string, entry *models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[userID]
	for i := range list {
		if list[i].ID == entry.ID {
			list[i] = *entry
			return nil
		}
	}
	return journal.ErrEntryNotFound
}

func (s *EntryStore) Delete(_ context.Context, userID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[userID]
	for i := range list {
		if list[i].ID == entryID {
			s.entries[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return journal.ErrEntryNotFound
}

func (s *EntryStore) Get(_ context.Context, userID, entryID string) (*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries[userID] {
		if e.ID == entryID {
			copied := e
			return &copied, nil
		}
	}
	return nil, journal.ErrEntryNotFound
}

func (s *EntryStore) FetchAll(_ context.Context, userID string) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Entry, len(s.entries[userID]))
	copy(out, s.entries[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

type StreakStore struct {
	mu      sync.Mutex
	records map[string]models.StreakRecord
}

func NewStreakStore() *StreakStore {
	return &StreakStore{records: make(map[string]models.StreakRecord)}
}

func (s *StreakStore) Read(_ context.Context, userID string) (*models.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	copied := record
	return &copied, nil
}

func (s *StreakStore) Create(_ context.Context, userID string, record models.StreakRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[userID]; ok {
		return nil
	}
	s.records[userID] = record
	return nil
}

func (s *StreakStore) Update(_ context.Context, userID string, record models.StreakRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.records[userID]
	if !ok || stored.Version != record.Version {
		return journal.ErrVersionConflict
	}
	record.Version++
	s.records[userID] = record
	return nil
}
