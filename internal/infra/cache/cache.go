// Package cache provides an in-memory TTL cache. The gateway uses it
// for the merchant settings, which are read on every boleto
// generation but change only when an admin saves the configuration.
package cache

import (
	"sync"
	"time"
)

type item[T any] struct {
	value    T
	deadline int64 // unix nanos
}

// InMemory is a thread-safe TTL cache with a fixed per-cache TTL.
type InMemory[T any] struct {
	mu    sync.RWMutex
	items map[string]item[T]
	ttl   time.Duration
}

// New creates a cache whose entries expire after ttl. A background
// sweeper reclaims expired entries so rarely-read keys do not pile
// up.
func New[T any](ttl time.Duration) *InMemory[T] {
	c := &InMemory[T]{
		items: make(map[string]item[T]),
		ttl:   ttl,
	}
	go c.sweep()
	return c
}

// Get returns the cached value for key, or false when the key is
// absent or past its deadline.
func (c *InMemory[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || time.Now().UnixNano() > it.deadline {
		var zero T
		return zero, false
	}
	return it.value, true
}

// Set stores value under key with a fresh TTL.
func (c *InMemory[T]) Set(key string, value T) {
	c.mu.Lock()
	c.items[key] = item[T]{
		value:    value,
		deadline: time.Now().Add(c.ttl).UnixNano(),
	}
	c.mu.Unlock()
}

// Delete removes key. Deleting an absent key is a no-op.
func (c *InMemory[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *InMemory[T]) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now().UnixNano()
		c.mu.Lock()
		for k, it := range c.items {
			if now > it.deadline {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
