package hashing

import (
	"sync"
	"sync/atomic"
)

// perftEntry identifies a node count by position and remaining depth.
type perftEntry struct {
	key   Key
	depth int
}

// PerftCache memoises perft node counts. It is safe for concurrent use.
type PerftCache struct {
	mu          sync.RWMutex
	counts      map[perftEntry]uint64
	maxCapacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		counts:      make(map[perftEntry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached node count of a position at a depth.
func (c *PerftCache) Get(key Key, depth int) (uint64, bool) {
	c.mu.RLock()
	n, ok := c.counts[perftEntry{key, depth}]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return n, ok
}

// Put stores a node count. Entries beyond the capacity are dropped.
func (c *PerftCache) Put(key Key, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.counts) >= c.maxCapacity {
		return
	}
	c.counts[perftEntry{key, depth}] = nodes
}

// Len returns the number of cached entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	if c.maxCapacity <= 0 {
		return false
	}
	return c.Len() >= c.maxCapacity
}

// Stats returns the hit and miss counters.
func (c *PerftCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
