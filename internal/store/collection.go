// Package store holds the in-memory record collections of the back office.
package store

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
)

type entry[T any] struct {
	id     int
	record T
}

// Collection is an insertion-ordered map of records keyed by integer ID.
// Lookups go through the index; List walks the entries in insertion order.
// A Collection is not safe for concurrent use.
type Collection[T any] struct {
	entries []entry[T]
	index   map[int]int
}

// NewCollection creates an empty collection with room for expected records
func NewCollection[T any](expected int) *Collection[T] {
	return &Collection[T]{
		entries: make([]entry[T], 0, expected),
		index:   make(map[int]int, expected),
	}
}

// Add appends a record. Adding an ID that is already present fails and
// leaves the collection untouched.
func (c *Collection[T]) Add(id int, record T) error {
	if _, exists := c.index[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, id)
	}
	c.index[id] = len(c.entries)
	c.entries = append(c.entries, entry[T]{id: id, record: record})
	return nil
}

// Find returns the record stored under id
func (c *Collection[T]) Find(id int) (T, error) {
	pos, exists := c.index[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return c.entries[pos].record, nil
}

// Contains reports whether id is present
func (c *Collection[T]) Contains(id int) bool {
	_, exists := c.index[id]
	return exists
}

// Replace overwrites the whole record stored under id, keeping its position
func (c *Collection[T]) Replace(id int, record T) error {
	pos, exists := c.index[id]
	if !exists {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	c.entries[pos].record = record
	return nil
}

// Delete removes the record stored under id. The remaining records keep
// their relative order.
func (c *Collection[T]) Delete(id int) error {
	pos, exists := c.index[id]
	if !exists {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	c.entries = append(c.entries[:pos], c.entries[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.entries); i++ {
		c.index[c.entries[i].id] = i
	}
	return nil
}

// Any reports whether some record satisfies match, scanning in insertion order
func (c *Collection[T]) Any(match func(T) bool) bool {
	for _, e := range c.entries {
		if match(e.record) {
			return true
		}
	}
	return false
}

// List returns the records in insertion order
func (c *Collection[T]) List() []T {
	records := make([]T, 0, len(c.entries))
	for _, e := range c.entries {
		records = append(records, e.record)
	}
	return records
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	return len(c.entries)
}
