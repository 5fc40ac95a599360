package morph

import (
	"github.com/gogpu/swf"
	"github.com/gogpu/swf/internal/cache"
)

// CacheStats reports cache usage.
type CacheStats = cache.Stats

type frameKey struct {
	id    swf.CharacterID
	ratio uint16
}

// Cache holds built frames keyed by character id and ratio. It is safe for
// concurrent use.
type Cache struct {
	frames *cache.Cache[frameKey, *Frame]
}

// NewCache returns a cache holding at most size frames.
func NewCache(size int) *Cache {
	return &Cache{frames: cache.New[frameKey, *Frame](size)}
}

// Frame returns the frame of morph id at ratio, building it on a miss.
func (c *Cache) Frame(id swf.CharacterID, start, end *swf.Shape, ratio uint16) *Frame {
	return c.frames.GetOrCreate(frameKey{id: id, ratio: ratio}, func() *Frame {
		return BuildFrame(start, end, ratio)
	})
}

// Forget drops every cached frame of morph id.
func (c *Cache) Forget(id swf.CharacterID) int {
	return c.frames.DeleteFunc(func(k frameKey) bool { return k.id == id })
}

// Reset drops every cached frame. Statistics are kept.
func (c *Cache) Reset() { c.frames.Clear() }

// Len returns the number of cached frames.
func (c *Cache) Len() int { return c.frames.Len() }

// Stats returns usage statistics.
func (c *Cache) Stats() CacheStats { return c.frames.Stats() }
