package ui

import "errors"

// ErrItemRequired is returned when a nil or uninitialized item is added to a view.
var ErrItemRequired = errors.New("item required")

// ErrViewFull is returned when adding an item to a view that already holds the maximum of five.
var ErrViewFull = errors.New("maximum number of items exceeded")

// ErrRowFull is returned when no layout row has room for the item.
var ErrRowFull = errors.New("no open layout row for item")

// ErrRowOutOfRange is returned for row indices outside [0, 4].
var ErrRowOutOfRange = errors.New("row index out of range")

// ErrTooManyFields is returned at schema definition time when the merged
// ancestry declares more than five fields.
var ErrTooManyFields = errors.New("schema cannot declare more than 5 fields")
