package store

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound reports an identifier absent from a collection.
var ErrNotFound = errors.New("record not found")

// Collection is an ordered in-memory record set acting as the source of
// truth for one resource type. All access goes through the mutex: gin serves
// requests concurrently, so identifier assignment and merges must be
// serialized to keep ids unique.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) int
	now   func() time.Time
}

// NewCollection builds a collection seeded with the given records. idOf
// extracts a record's identifier.
func NewCollection[T any](idOf func(T) int, seed ...T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items, idOf: idOf, now: time.Now}
}

// List returns a copy of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Find returns the first record matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert assigns the next identifier (max existing + 1, or 1 when empty),
// invokes build to construct the record, and appends it. Assignment and
// append happen under one lock so concurrent creates cannot collide.
func (c *Collection[T]) Insert(build func(id int, now time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := 1
	for _, item := range c.items {
		if v := c.idOf(item); v >= id {
			id = v + 1
		}
	}
	record := build(id, c.now().UTC())
	c.items = append(c.items, record)
	return record
}

// Update locates the record by id and replaces it with merge's result. The
// merge callback owns shallow-merge semantics and updatedAt stamping.
func (c *Collection[T]) Update(id int, merge func(current T, now time.Time) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			next := merge(item, c.now().UTC())
			c.items[i] = next
			return next, true
		}
	}
	var zero T
	return zero, false
}

// Remove hard-deletes the record, preserving the order of the rest.
func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
