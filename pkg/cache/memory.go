package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache keeps entries in process memory. When full, the entry closest
// to expiry (or the oldest, among entries that never expire) is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	max     int
	now     func() time.Time
}

type memoryEntry struct {
	data      []byte
	stored    time.Time
	expiresAt time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries values.
// maxEntries below 1 means 1.
func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		max:     max(maxEntries, 1),
		now:     time.Now,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.max {
		c.evict()
	}
	e := memoryEntry{data: data, stored: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) evict() {
	var (
		victim string
		best   memoryEntry
		found  bool
	)
	for k, e := range c.entries {
		if !found || sooner(e, best) {
			victim, best, found = k, e, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

// sooner orders entries by expiry, never-expiring last, then by age.
func sooner(a, b memoryEntry) bool {
	switch {
	case a.expiresAt.IsZero() != b.expiresAt.IsZero():
		return !a.expiresAt.IsZero()
	case !a.expiresAt.Equal(b.expiresAt):
		return a.expiresAt.Before(b.expiresAt)
	default:
		return a.stored.Before(b.stored)
	}
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close drops every entry.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	return nil
}

var _ Cache = (*MemoryCache)(nil)
