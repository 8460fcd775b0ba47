package catalog

import (
	"maps"
	"sync"
)

// NameCache maps related-resource locators to resolved names.
// Entries accumulate for the cache's lifetime; nothing is evicted or invalidated.
// Failed resolutions are never stored, so a miss means "unresolved", which is
// distinct from a resource that resolved to the empty string.
type NameCache struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewNameCache creates an empty cache.
func NewNameCache() *NameCache {
	return &NameCache{names: make(map[string]string)}
}

// Get returns the resolved name for ref and whether it is present.
func (c *NameCache) Get(ref string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[ref]
	return name, ok
}

// Set records the resolved name for ref.
func (c *NameCache) Set(ref, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[ref] = name
}

// Len returns the number of resolved locators.
func (c *NameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// Snapshot returns a copy of all entries.
func (c *NameCache) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.names)
}
