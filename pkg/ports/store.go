package ports

import (
	"context"
	"errors"
	"time"

	"github.com/roost-chat/roost/pkg/component"
)

// ErrComponentNotFound is returned when a custom ID is absent from the
// store, either because it was never registered or because its TTL
// elapsed.
var ErrComponentNotFound = errors.New("component not found")

// PendingModal is the persisted record of a presented modal. It holds a
// snapshot of the callback data, not the live modal; handlers stay in
// process.
type PendingModal struct {
	CustomID   string                      `json:"custom_id"`
	Data       component.ModalCallbackData `json:"data"`
	Persistent bool                        `json:"persistent"`
	CreatedAt  time.Time                   `json:"created_at"`
}

// ComponentStore persists pending component registrations keyed by
// custom ID. A zero TTL means the record never expires; a positive TTL
// realizes the modal's submission timeout.
type ComponentStore interface {
	// Save persists the record, replacing any previous one for the ID.
	Save(ctx context.Context, customID string, record PendingModal, ttl time.Duration) error

	// Load retrieves the record for a custom ID.
	// Returns ErrComponentNotFound if the ID is unknown or expired.
	Load(ctx context.Context, customID string) (PendingModal, error)

	// Delete removes the record. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, customID string) error

	// List returns the custom IDs currently registered.
	List(ctx context.Context) ([]string, error)
}
