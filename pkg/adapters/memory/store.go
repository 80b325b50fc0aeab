// Package memory provides an in-process ports.ComponentStore, suitable
// for tests and single-instance bots.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/roost-chat/roost/pkg/ports"
)

type entry struct {
	record   ports.PendingModal
	deadline time.Time // zero = never expires
}

// Store implements ports.ComponentStore in memory.
// Safe for concurrent use. Expired entries are dropped lazily on access.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Save persists the record, replacing any previous one.
func (s *Store) Save(ctx context.Context, customID string, record ports.PendingModal, ttl time.Duration) error {
	e := entry{record: record}
	if ttl > 0 {
		e.deadline = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[customID] = e
	return nil
}

// Load retrieves the record for a custom ID.
func (s *Store) Load(ctx context.Context, customID string) (ports.PendingModal, error) {
	s.mu.RLock()
	e, ok := s.entries[customID]
	s.mu.RUnlock()

	if !ok {
		return ports.PendingModal{}, ports.ErrComponentNotFound
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.entries, customID)
		s.mu.Unlock()
		return ports.PendingModal{}, ports.ErrComponentNotFound
	}
	return e.record, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, customID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, customID)
	return nil
}

// List returns the non-expired custom IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id, e := range s.entries {
		if s.expired(e) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) expired(e entry) bool {
	return !e.deadline.IsZero() && s.now().After(e.deadline)
}
