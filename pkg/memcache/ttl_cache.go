package mem

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a small in-process cache with per-entry expiry. Expired entries
// are dropped lazily on read and whenever the map grows past cleanupThreshold.
type TTLCache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

const cleanupThreshold = 1000

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{data: make(map[string]entry[V])}
}

func (c *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry[V]{value: value, expiresAt: time.Now().Add(ttl)}

	if len(c.data) > cleanupThreshold {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}
