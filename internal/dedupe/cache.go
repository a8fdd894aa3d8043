// Package dedupe keeps a bounded record of alert batches already served, so
// the API's fresh-only mode does not announce the same availability twice
// within the TTL window.
package dedupe

import (
	"sync"
	"time"
)

type marked struct {
	id string
	at time.Time
}

// Cache is a fixed-capacity set of recently served batch IDs with a TTL.
// Entries fall out when they expire or when capacity forces out the oldest.
type Cache struct {
	mu       sync.Mutex
	served   map[string]time.Time
	order    []marked
	capacity int
	ttl      time.Duration
}

// NewCache creates a cache with the provided capacity and ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		served:   make(map[string]time.Time, capacity),
		order:    make([]marked, 0, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

// IsSeen reports whether the batch ID was served inside the ttl window.
// It does not record the ID; MarkSeen does.
func (c *Cache) IsSeen(id string) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	at, ok := c.served[id]
	return ok && now.Sub(at) <= c.ttl
}

// MarkSeen records that a batch was served, refreshing its TTL if it was
// already present.
func (c *Cache) MarkSeen(id string) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.served[id] = now
	c.order = append(c.order, marked{id: id, at: now})
	c.compact(now)
}

func (c *Cache) compact(now time.Time) {
	cutoff := now.Add(-c.ttl)

	for len(c.order) > 0 && (len(c.served) > c.capacity || c.order[0].at.Before(cutoff)) {
		oldest := c.order[0]
		c.order = c.order[1:]

		// A refreshed ID has a newer timestamp in the map; keep it.
		if at, ok := c.served[oldest.id]; ok && at.Equal(oldest.at) {
			delete(c.served, oldest.id)
		}
	}
}
