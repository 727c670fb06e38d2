// Package store holds the in-memory inventory collection and its mutation
// operations. The collection preserves insertion order and enforces
// case-insensitive name uniqueness and a fixed capacity cap.
package store

import (
	"strings"

	"github.com/shelftools/stockroom/pkg/types"
)

// Store is an ordered collection of inventory items. It is owned by a single
// goroutine for its whole lifetime and is not safe for concurrent use.
type Store struct {
	capacity int
	items    []types.Item
}

// New returns an empty store with the default capacity (types.MaxItems).
func New() *Store {
	return NewWithCapacity(types.MaxItems)
}

// NewWithCapacity returns an empty store holding at most capacity items.
// The cap is a policy limit, independent of the slice's backing storage.
func NewWithCapacity(capacity int) *Store {
	return &Store{capacity: capacity}
}

// Len returns the number of items currently in the store.
func (s *Store) Len() int {
	return len(s.items)
}

// Capacity returns the maximum number of items the store accepts.
func (s *Store) Capacity() int {
	return s.capacity
}

// indexOf is the single source of truth for identity: a case-insensitive
// linear scan over the collection, returning -1 when the name is absent.
// First occurrence wins, which keeps duplicate detection during Load simple.
func (s *Store) indexOf(name string) int {
	for i := range s.items {
		if strings.EqualFold(s.items[i].Name, name) {
			return i
		}
	}
	return -1
}

// FindByName returns the item with the given name, matched
// case-insensitively. The second return value reports whether it was found.
func (s *Store) FindByName(name string) (types.Item, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return types.Item{}, false
	}
	return s.items[i], true
}

// Insert appends a new item to the store without restock semantics. Unlike
// Add it accepts a zero quantity, because the on-disk format records
// out-of-stock items. Returns ErrInvalidName if the name is empty,
// over-length, or already present; ErrInvalidQuantity or ErrInvalidPrice on
// out-of-range fields; ErrCapacityExceeded when the store is full.
func (s *Store) Insert(item types.Item) error {
	if len(item.Name) == 0 || len(item.Name) > types.MaxNameLen {
		return types.ErrInvalidName
	}
	if item.Quantity < 0 || item.Quantity > types.MaxQuantity {
		return types.ErrInvalidQuantity
	}
	if !(item.Price >= 0 && item.Price <= types.MaxPrice) {
		return types.ErrInvalidPrice
	}
	if s.indexOf(item.Name) >= 0 {
		return types.ErrInvalidName
	}
	if len(s.items) >= s.capacity {
		return types.ErrCapacityExceeded
	}
	s.items = append(s.items, item)
	return nil
}

// Add records a delivery of qty units at the given unit price. If the name
// is already stocked the existing item is restocked: its quantity grows by
// qty and its price is overwritten (not averaged). Otherwise a new item is
// appended. The quantity must be positive; a restock that would push the
// total past types.MaxQuantity is rejected so every store state stays
// representable on disk.
func (s *Store) Add(name string, qty int, price float64) error {
	if len(name) == 0 || len(name) > types.MaxNameLen {
		return types.ErrInvalidName
	}
	if qty <= 0 || qty > types.MaxQuantity {
		return types.ErrInvalidQuantity
	}
	// The inverted comparison also rejects NaN.
	if !(price >= 0 && price <= types.MaxPrice) {
		return types.ErrInvalidPrice
	}

	if i := s.indexOf(name); i >= 0 {
		if s.items[i].Quantity+qty > types.MaxQuantity {
			return types.ErrInvalidQuantity
		}
		s.items[i].Quantity += qty
		s.items[i].Price = price
		return nil
	}

	return s.Insert(types.Item{Name: name, Quantity: qty, Price: price})
}

// Remove deletes the named item. Remaining items keep their relative order.
// Returns ErrNotFound if the name is absent.
func (s *Store) Remove(name string) error {
	i := s.indexOf(name)
	if i < 0 {
		return types.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// UpdateQuantity sets the named item's stock to an absolute level. Zero is
// valid and means out of stock, not deletion. Returns ErrInvalidQuantity on
// out-of-range values and ErrNotFound for unknown names.
func (s *Store) UpdateQuantity(name string, qty int) error {
	if qty < 0 || qty > types.MaxQuantity {
		return types.ErrInvalidQuantity
	}
	i := s.indexOf(name)
	if i < 0 {
		return types.ErrNotFound
	}
	s.items[i].Quantity = qty
	return nil
}

// TotalValue returns the sum of quantity times price over all items.
// It is exactly zero for an empty store. No currency rounding is applied
// during accumulation; rounding is left to display code.
func (s *Store) TotalValue() float64 {
	var total float64
	for i := range s.items {
		total += s.items[i].Value()
	}
	return total
}

// List returns a snapshot of the items in store order. The caller may keep
// or modify the slice; it does not alias the store's internal state.
func (s *Store) List() []types.Item {
	out := make([]types.Item, len(s.items))
	copy(out, s.items)
	return out
}
