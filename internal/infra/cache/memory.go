// Package cache provides country cache backends for the geolocation resolver.
package cache

import (
	"context"
	"sync"
	"time"

	"shipway/internal/domain/service"
)

type memoryEntry struct {
	country   string
	timestamp time.Time
}

// memoryCache is an in-process TTL cache keyed by raw IP string. Expired
// entries are evicted on read.
type memoryCache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]memoryEntry
}

// NewMemoryCache creates an in-process country cache with the given TTL.
func NewMemoryCache(ttl time.Duration) service.CountryCache {
	return newMemoryCache(ttl, time.Now)
}

func newMemoryCache(ttl time.Duration, now func() time.Time) *memoryCache {
	return &memoryCache{
		ttl: ttl,
		now: now,
		m:   make(map[string]memoryEntry),
	}
}

func (c *memoryCache) Get(_ context.Context, ip string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.m[ip]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.timestamp) >= c.ttl {
		delete(c.m, ip)

		return "", false
	}

	return entry.country, true
}

func (c *memoryCache) Set(_ context.Context, ip, country string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[ip] = memoryEntry{country: country, timestamp: c.now()}
}

// Reset clears all entries. Intended for tests.
func (c *memoryCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m = make(map[string]memoryEntry)
}
