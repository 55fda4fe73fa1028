package ggfx

import (
	"github.com/gogpu/ggfx/internal/cache"
)

// DefaultCacheCapacity is the number of rasters a Cache keeps when
// created with a non-positive capacity.
const DefaultCacheCapacity = 16

// CacheStats reports raster cache activity.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache memoizes the rasters of its input per render context.
//
// Entries are dropped as soon as the input generation changes, so a
// mutation anywhere upstream is visible on the next render. Every render
// returns a copy; callers may not observe each other's rasters.
type Cache struct {
	nodeBase
	in      Node
	lru     *cache.Cache[contextKey, *Raster]
	lastGen uint64
}

// NewCache wraps in with an LRU of capacity rasters.
func NewCache(in Node, capacity int, opts ...NodeOption) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{
		nodeBase: newNodeBase("cache", opts),
		in:       in,
		lru:      cache.New[contextKey, *Raster](capacity),
	}
	if in != nil {
		c.lastGen = in.Generation()
	}
	return c
}

// Bounds returns the input bounds.
func (c *Cache) Bounds() Rect {
	if c.in == nil {
		return Rect{}
	}
	return c.in.Bounds()
}

// Inputs implements Composite.
func (c *Cache) Inputs() []Node {
	return []Node{c.in}
}

// Generation includes the input generation.
func (c *Cache) Generation() uint64 {
	return latestGeneration(c.gen, c.in)
}

// SetInput replaces the input node and drops every cached raster.
func (c *Cache) SetInput(in Node) {
	c.in = in
	c.Invalidate()
	c.touch()
}

// Invalidate drops every cached raster.
func (c *Cache) Invalidate() {
	c.lru.Purge()
}

// Stats returns the cache counters.
func (c *Cache) Stats() CacheStats {
	s := c.lru.Stats()
	return CacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Render returns a copy of the cached raster for rc, rendering the input
// on a miss. Nil results are cached too.
func (c *Cache) Render(rc RenderContext) *Raster {
	if c.in == nil {
		return nil
	}
	if gen := c.in.Generation(); gen != c.lastGen {
		Logger().Debug("ggfx: cache invalidated", "node", c.name, "generation", gen)
		c.Invalidate()
		c.lastGen = gen
	}

	key := rc.key()
	if r, ok := c.lru.Get(key); ok {
		Logger().Debug("ggfx: cache hit", "node", c.name)
		return cloneRaster(r)
	}
	r := c.in.Render(rc)
	c.lru.Set(key, r)
	return cloneRaster(r)
}

func cloneRaster(r *Raster) *Raster {
	if r == nil {
		return nil
	}
	return r.Clone()
}
