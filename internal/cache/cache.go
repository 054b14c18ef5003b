// Package cache provides a process-lifetime key-value store with a fixed TTL.
// Entries are never swept; a stale entry is simply invisible to Get and gets
// overwritten by the next Set for its key.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Store maps string keys to values that expire ttl after insertion.
// Safe for concurrent use.
type Store[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Get returns the value for key if it is present and fresh.
// An expired entry is indistinguishable from an absent one.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ent, ok := s.entries[key]
	if !ok || s.now().Sub(ent.insertedAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return ent.value, true
}

// Set stores value under key, stamped with the current time. Any prior entry
// for the key is replaced, fresh or not.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, insertedAt: s.now()}
}
