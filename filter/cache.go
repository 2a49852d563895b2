package filter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the compiled-program cache size used by CompileFilter
const DefaultCacheSize = 100

// filterCache holds compiled filters keyed by their trimmed expression
type filterCache struct {
	lru *lru.Cache[string, CompiledFilter]
}

// newFilterCache creates a cache holding at most size filters
func newFilterCache(size int) *filterCache {
	cache, err := lru.New[string, CompiledFilter](size)
	if err != nil {
		// only returned for size <= 0, which callers never pass
		return nil
	}
	return &filterCache{lru: cache}
}

// Get retrieves a compiled filter from the cache
func (c *filterCache) Get(expression string) (CompiledFilter, bool) {
	return c.lru.Get(expression)
}

// Put adds or updates a compiled filter, evicting the least recently used one
func (c *filterCache) Put(expression string, filter CompiledFilter) {
	c.lru.Add(expression, filter)
}

// Clear removes all items from the cache
func (c *filterCache) Clear() {
	c.lru.Purge()
}

// Size returns the number of items in the cache
func (c *filterCache) Size() int {
	return c.lru.Len()
}
