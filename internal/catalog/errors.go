package catalog

import "errors"

var (
	// ErrNotFound is returned when no item is assigned to a slot code.
	ErrNotFound = errors.New("catalog: slot not found")

	// ErrOutOfStock is returned when a decrement hits a depleted slot.
	ErrOutOfStock = errors.New("catalog: out of stock")
)
