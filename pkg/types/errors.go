package types

import "errors"

// Store operation errors. Each maps to exactly one violated rule so callers
// can report which check failed with errors.Is.
var (
	ErrInvalidName      = errors.New("invalid item name")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrNotFound         = errors.New("item not found")
	ErrCapacityExceeded = errors.New("inventory is full")
)
