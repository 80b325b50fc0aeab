package ui

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/roost-chat/roost/pkg/component"
)

// Item is a single interactive element placeable inside a View.
// Implementations embed BaseItem, which provides the container
// bookkeeping half of the contract.
type Item interface {
	// CustomID returns the wire identifier of the item.
	CustomID() string
	// Width returns how many of a row's five column units the item occupies.
	Width() int
	// Row returns the requested layout row, or a negative value for
	// automatic placement.
	Row() int
	// IsPersistent reports whether the item survives process restarts,
	// which requires a caller-supplied custom ID.
	IsPersistent() bool
	// Component builds the wire payload for the item.
	Component() component.Component

	attach(v *View)
	detach()
}

// StateRefresher is implemented by items that can ingest the values a
// user submitted. The dispatcher feeds each submitted component payload
// to the matching item after a modal submission.
type StateRefresher interface {
	RefreshComponent(c component.Component)
}

// BaseItem carries the container back-reference and requested row shared
// by all item kinds. Embed it to satisfy the unexported half of Item.
type BaseItem struct {
	view *View
	row  int
}

// NewBaseItem initializes the bookkeeping state with automatic row placement.
func NewBaseItem() BaseItem {
	return BaseItem{row: -1}
}

// Row returns the requested layout row, negative when automatic.
func (b *BaseItem) Row() int { return b.row }

// SetRow requests a specific layout row. A negative value restores
// automatic placement.
func (b *BaseItem) SetRow(row int) error {
	if row >= maxRows {
		return ErrRowOutOfRange
	}
	if row < 0 {
		row = -1
	}
	b.row = row
	return nil
}

// View returns the container the item is attached to, or nil.
func (b *BaseItem) View() *View { return b.view }

func (b *BaseItem) attach(v *View) { b.view = v }
func (b *BaseItem) detach()        { b.view = nil }

// newCustomID draws 16 bytes from the entropy source and hex-encodes
// them, yielding a 32-character lowercase identifier.
func newCustomID(entropy io.Reader) (string, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	raw := make([]byte, 16)
	if _, err := io.ReadFull(entropy, raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
