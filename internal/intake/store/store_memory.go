// Package store keeps accepted entries in insertion order.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"amply/internal/intake/models"
	"amply/pkg/platform/sentinel"
)

// InMemoryEntryStore is the accepted-entries list. Entries are stored by value
// so callers cannot mutate what was appended.
type InMemoryEntryStore struct {
	mu      sync.RWMutex
	entries []models.Entry
	byID    map[uuid.UUID]int
}

func NewInMemoryEntryStore() *InMemoryEntryStore {
	return &InMemoryEntryStore{byID: make(map[uuid.UUID]int)}
}

func (s *InMemoryEntryStore) Append(_ context.Context, entry *models.Entry) error {
	if entry == nil {
		return fmt.Errorf("append nil entry: %w", sentinel.ErrInvalidState)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[entry.ID] = len(s.entries)
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *InMemoryEntryStore) List(_ context.Context) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Entry{}, s.entries...), nil
}

func (s *InMemoryEntryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	e := s.entries[i]
	return &e, nil
}

func (s *InMemoryEntryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
