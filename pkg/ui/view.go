package ui

import (
	"time"

	"github.com/roost-chat/roost/pkg/component"
)

// MaxItems is the hard cap on children per view. The platform rejects
// containers with more; AddItem enforces it before placement so the
// sixth add fails, not the seventh.
const MaxItems = 5

type placement struct {
	item Item
	row  int
}

// View is an ordered container of items bucketed into five layout rows.
// It is not safe for concurrent mutation; callers serialize AddItem and
// RemoveItem per instance.
type View struct {
	placements []placement
	weights    rowWeights
	timeout    *time.Duration
}

// AddItem validates, places and appends an item.
// It fails with ErrItemRequired for a nil item, ErrViewFull when the view
// already holds MaxItems, and ErrRowFull or ErrRowOutOfRange when the
// weight allocator cannot honor the item's placement.
func (v *View) AddItem(item Item) error {
	if item == nil {
		return ErrItemRequired
	}
	if len(v.placements) >= MaxItems {
		return ErrViewFull
	}

	row, err := v.weights.place(item)
	if err != nil {
		return err
	}

	item.attach(v)
	v.placements = append(v.placements, placement{item: item, row: row})
	return nil
}

// RemoveItem detaches an item and frees its layout slot. Removing an
// item that is not attached is a no-op.
func (v *View) RemoveItem(item Item) {
	for i, p := range v.placements {
		if p.item == item {
			v.weights.release(p.row, p.item.Width())
			p.item.detach()
			v.placements = append(v.placements[:i], v.placements[i+1:]...)
			return
		}
	}
}

// Clear removes every item.
func (v *View) Clear() {
	for _, p := range v.placements {
		p.item.detach()
	}
	v.placements = nil
	v.weights.clear()
}

// Items returns the children in insertion order.
func (v *View) Items() []Item {
	items := make([]Item, len(v.placements))
	for i, p := range v.placements {
		items[i] = p.item
	}
	return items
}

// Len returns the number of children.
func (v *View) Len() int { return len(v.placements) }

// Timeout returns the configured timeout and whether one is set.
func (v *View) Timeout() (time.Duration, bool) {
	if v.timeout == nil {
		return 0, false
	}
	return *v.timeout, true
}

// IsPersistent reports whether the view can outlive a process restart:
// no timeout and every child persistent. Modal adds the stable-identifier
// condition on top.
func (v *View) IsPersistent() bool {
	if v.timeout != nil {
		return false
	}
	for _, p := range v.placements {
		if !p.item.IsPersistent() {
			return false
		}
	}
	return true
}

// Components serializes the children grouped by assigned row, rows in
// ascending order, insertion order preserved within a row.
func (v *View) Components() []component.ActionRow {
	buckets := make([][]component.Component, maxRows)
	for _, p := range v.placements {
		buckets[p.row] = append(buckets[p.row], p.item.Component())
	}

	rows := make([]component.ActionRow, 0, len(v.placements))
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			rows = append(rows, component.NewActionRow(bucket...))
		}
	}
	return rows
}
