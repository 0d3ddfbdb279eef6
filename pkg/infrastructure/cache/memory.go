// Package cache provides a two-tier cache for derived calculation
// results: a fast in-memory LRU tier and an optional persistent Badger
// tier. It stores derived values only; the component graph itself is
// never persisted here.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memory is the L1 tier: a fixed-size LRU cache.
type Memory[V any] struct {
	entries *lru.Cache[string, V]
}

// NewMemory creates an L1 tier holding at most size entries.
func NewMemory[V any](size int) (*Memory[V], error) {
	entries, err := lru.New[string, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &Memory[V]{entries: entries}, nil
}

// Get returns the cached value for key, if present.
func (m *Memory[V]) Get(key string) (V, bool) {
	return m.entries.Get(key)
}

// Put stores a value, evicting the least recently used entry if full.
func (m *Memory[V]) Put(key string, value V) {
	m.entries.Add(key, value)
}

// Purge removes every entry.
func (m *Memory[V]) Purge() {
	m.entries.Purge()
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	return m.entries.Len()
}
