package searcher

import (
	"sync"

	"secondbest/game"
)

type cacheKey struct {
	board       game.Board
	mover       game.Colour
	perspective game.Colour
	depth       int
}

// cache stores node means. A nil cache stores nothing.
type cache struct {
	sync.RWMutex
	maxEntries int
	entries    map[cacheKey]float64
}

func newCache(maxEntries int) *cache {
	return &cache{
		maxEntries: maxEntries,
		entries:    make(map[cacheKey]float64),
	}
}

func (c *cache) get(key cacheKey) (float64, bool) {
	if c == nil {
		return 0, false
	}
	c.RLock()
	defer c.RUnlock()

	value, ok := c.entries[key]
	return value, ok
}

func (c *cache) put(key cacheKey, value float64) {
	if c == nil {
		return
	}
	c.Lock()
	defer c.Unlock()

	// Start over rather than track recency
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[cacheKey]float64)
	}
	c.entries[key] = value
}

func (c *cache) len() int {
	if c == nil {
		return 0
	}
	c.RLock()
	defer c.RUnlock()

	return len(c.entries)
}
