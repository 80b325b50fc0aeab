// Package redis provides a Redis-backed ports.ComponentStore, letting
// pending modal registrations survive process restarts and be shared
// between bot instances. Submission timeouts map onto key TTLs, so
// expiry is enforced by Redis itself.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/roost-chat/roost/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.ComponentStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
}

// Option configures the Store.
type Option func(*Store)

// WithPrefix sets the key prefix for component records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store connecting to the given address.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "roost:component:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(customID string) string {
	return s.prefix + customID
}

// Save persists the record. A positive TTL becomes the key's expiration;
// zero means the key never expires.
func (s *Store) Save(ctx context.Context, customID string, record ports.PendingModal, ttl time.Duration) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling component record: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(customID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("writing component record: %w", err)
	}
	return nil
}

// Load retrieves the record for a custom ID.
func (s *Store) Load(ctx context.Context, customID string) (ports.PendingModal, error) {
	raw, err := s.client.Get(ctx, s.key(customID)).Bytes()
	if errors.Is(err, backend.Nil) {
		return ports.PendingModal{}, ports.ErrComponentNotFound
	}
	if err != nil {
		return ports.PendingModal{}, fmt.Errorf("reading component record: %w", err)
	}

	var record ports.PendingModal
	if err := json.Unmarshal(raw, &record); err != nil {
		return ports.PendingModal{}, fmt.Errorf("unmarshaling component record: %w", err)
	}
	return record, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, customID string) error {
	if err := s.client.Del(ctx, s.key(customID)).Err(); err != nil {
		return fmt.Errorf("deleting component record: %w", err)
	}
	return nil
}

// List scans for registered custom IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scanning component records: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, key[len(s.prefix):])
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}
