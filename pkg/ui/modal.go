package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/roost-chat/roost/pkg/component"
	"github.com/roost-chat/roost/pkg/interaction"
)

// DefaultTimeout is how long a modal waits for a submission when no
// explicit timeout is configured.
const DefaultTimeout = 180 * time.Second

// SubmitHandler is invoked once when a modal is submitted, after the
// modal's item state has been refreshed with the submitted values. The
// dispatcher awaits its completion before resolving the interaction.
type SubmitHandler func(ctx context.Context, m *Modal, ic *interaction.Interaction) error

// Modal is a pop-up form presented to a user: a View with a title, a
// stable custom ID and a submit callback.
type Modal struct {
	View

	title            string
	customID         string
	providedCustomID bool
	row              int
	handler          SubmitHandler
	entropy          io.Reader

	// pending holds WithItems children until New runs them through AddItem.
	pending []Item
}

// Option configures a Modal during construction.
type Option func(*Modal)

// WithTitle sets the display title.
func WithTitle(title string) Option {
	return func(m *Modal) { m.title = title }
}

// WithCustomID supplies a stable identifier. Supplying one is a
// precondition for persistence: the registration can then be resolved
// across process restarts.
func WithCustomID(id string) Option {
	return func(m *Modal) {
		m.customID = id
		m.providedCustomID = true
	}
}

// WithTimeout overrides the default 180-second submission timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Modal) { m.timeout = &d }
}

// WithNoTimeout removes the timeout entirely; the modal never expires.
func WithNoTimeout() Option {
	return func(m *Modal) { m.timeout = nil }
}

// WithRow requests a preferred layout row for the modal when it is
// nested inside another container.
func WithRow(row int) Option {
	return func(m *Modal) { m.row = row }
}

// WithItems appends initial children through the same admission path as
// AddItem, preserving order and enforcing the capacity cap.
func WithItems(items ...Item) Option {
	return func(m *Modal) { m.pending = append(m.pending, items...) }
}

// WithHandler sets the submit callback.
func WithHandler(h SubmitHandler) Option {
	return func(m *Modal) { m.handler = h }
}

// WithEntropy overrides the random source used for generated custom IDs.
// The default is crypto/rand.
func WithEntropy(r io.Reader) Option {
	return func(m *Modal) { m.entropy = r }
}

// New constructs a modal. Unless WithNoTimeout or WithTimeout is given
// the modal times out after DefaultTimeout. A missing custom ID is
// generated from the entropy source as 32 lowercase hex characters.
func New(opts ...Option) (*Modal, error) {
	timeout := DefaultTimeout
	m := &Modal{row: -1}
	m.timeout = &timeout

	for _, opt := range opts {
		opt(m)
	}

	if m.row >= maxRows {
		return nil, ErrRowOutOfRange
	}
	if m.row < 0 {
		// Any negative request means automatic placement.
		m.row = -1
	}

	if !m.providedCustomID {
		id, err := newCustomID(m.entropy)
		if err != nil {
			return nil, fmt.Errorf("generating custom id: %w", err)
		}
		m.customID = id
	}

	for _, item := range m.pending {
		if err := m.AddItem(item); err != nil {
			return nil, err
		}
	}
	m.pending = nil

	return m, nil
}

// CustomID returns the modal's wire identifier.
func (m *Modal) CustomID() string { return m.customID }

// Title returns the display title, empty when none was set.
func (m *Modal) Title() string { return m.title }

// Row returns the preferred layout row, negative for automatic placement.
func (m *Modal) Row() int { return m.row }

// IsPersistent reports whether the modal's registration survives process
// restarts: no timeout, a caller-supplied custom ID and only persistent
// children.
func (m *Modal) IsPersistent() bool {
	return m.providedCustomID && m.View.IsPersistent()
}

// CallbackData builds the wire payload presented to the platform. It
// reads but never mutates modal state, so repeated calls on an
// unmodified modal are equal.
func (m *Modal) CallbackData() component.ModalCallbackData {
	return component.ModalCallbackData{
		CustomID:   m.customID,
		Components: m.Components(),
		Title:      m.title,
	}
}

// RefreshState folds the submitted values of an interaction into the
// modal's items. Items that do not implement StateRefresher are left
// untouched.
func (m *Modal) RefreshState(ic *interaction.Interaction) {
	if ic == nil || ic.ModalSubmit == nil {
		return
	}
	for _, p := range m.placements {
		refresher, ok := p.item.(StateRefresher)
		if !ok {
			continue
		}
		for _, row := range ic.ModalSubmit.Components {
			for _, child := range row.Components {
				refresher.RefreshComponent(child)
			}
		}
	}
}

// Callback invokes the submit handler. With no handler configured it is
// a no-op. The dispatcher guarantees at-most-once invocation per
// submission by dropping non-persistent modals afterwards.
func (m *Modal) Callback(ctx context.Context, ic *interaction.Interaction) error {
	if m.handler == nil {
		return nil
	}
	return m.handler(ctx, m, ic)
}
