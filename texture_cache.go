package gui

import "fmt"

// DefaultMaxLoadedTexts is the default capacity of the text texture cache.
const DefaultMaxLoadedTexts = 256

// TextKey identifies a rasterized text texture.
type TextKey struct {
	Text  string
	Size  float32 // pixel height
	Color uint32
}

// CachedTexture is a cache entry. The pointer stays valid until its own key
// is evicted or the cache is cleared.
type CachedTexture struct {
	Handle        *TextureHandle
	Width, Height float32
	LastUsedFrame uint64
}

// Texture returns the backing texture.
func (c *CachedTexture) Texture() Texture {
	return c.Handle.Texture()
}

// TextureCacheStats reports cache activity since creation.
type TextureCacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Failures  uint64
}

// TextureCache maps keys to lazily created textures and evicts the least
// recently used entry when full. A capacity of 0 means unbounded.
//
// Recency is tracked per frame: every hit stamps the entry with the frame set
// by SetFrame. The cache owns one reference on each entry's handle.
type TextureCache[K comparable] struct {
	entries  map[K]*CachedTexture
	capacity int
	frame    uint64
	stats    TextureCacheStats
}

// NewTextureCache creates a cache holding at most capacity entries.
func NewTextureCache[K comparable](capacity int) *TextureCache[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &TextureCache[K]{
		entries:  make(map[K]*CachedTexture),
		capacity: capacity,
	}
}

// SetFrame sets the frame number used to stamp entries.
func (c *TextureCache[K]) SetFrame(frame uint64) {
	c.frame = frame
}

// Frame returns the current frame number.
func (c *TextureCache[K]) Frame() uint64 {
	return c.frame
}

// Capacity returns the configured capacity (0 = unbounded).
func (c *TextureCache[K]) Capacity() int {
	return c.capacity
}

// Len returns the number of cached entries.
func (c *TextureCache[K]) Len() int {
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *TextureCache[K]) Stats() TextureCacheStats {
	return c.stats
}

// Peek returns the entry for key without touching its recency.
func (c *TextureCache[K]) Peek(key K) (*CachedTexture, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// TextureFactory materializes a texture for a cache miss. The returned handle
// is adopted by the cache.
type TextureFactory func() (*TextureHandle, error)

// GetOrCreate returns the entry for key, creating it with factory on a miss.
// When the cache is full the least recently used entry is evicted before the
// factory runs. A factory failure is returned wrapped in
// ErrTextureCreateFailed and nothing is inserted.
func (c *TextureCache[K]) GetOrCreate(key K, factory TextureFactory) (*CachedTexture, error) {
	if e, ok := c.entries[key]; ok {
		e.LastUsedFrame = c.frame
		c.stats.Hits++
		return e, nil
	}
	c.stats.Misses++

	if c.capacity > 0 && len(c.entries) >= c.capacity {
		c.EvictLRU()
	}

	h, err := factory()
	if err != nil {
		c.stats.Failures++
		return nil, fmt.Errorf("%w: %w", ErrTextureCreateFailed, err)
	}
	if h == nil || h.Texture() == nil {
		c.stats.Failures++
		return nil, fmt.Errorf("%w: factory returned no texture", ErrTextureCreateFailed)
	}

	w, hh := h.Size()
	e := &CachedTexture{
		Handle:        h,
		Width:         float32(w),
		Height:        float32(hh),
		LastUsedFrame: c.frame,
	}
	c.entries[key] = e
	return e, nil
}

// EvictLRU removes the entry with the smallest LastUsedFrame and releases its
// texture. Among entries with equal frames the one removed is whichever map
// iteration finds first, which is not deterministic. Returns false if the
// cache is empty.
func (c *TextureCache[K]) EvictLRU() bool {
	var (
		victim K
		oldest *CachedTexture
	)
	for k, e := range c.entries {
		if oldest == nil || e.LastUsedFrame < oldest.LastUsedFrame {
			victim, oldest = k, e
		}
	}
	if oldest == nil {
		return false
	}
	delete(c.entries, victim)
	oldest.Handle.Release()
	c.stats.Evictions++
	guiLogger.Debug("texture cache eviction", "key", victim, "lastUsed", oldest.LastUsedFrame, "frame", c.frame)
	return true
}

// Remove evicts a single key. Returns false if it wasn't cached.
func (c *TextureCache[K]) Remove(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	e.Handle.Release()
	return true
}

// Clear releases every entry and empties the cache.
func (c *TextureCache[K]) Clear() {
	for k, e := range c.entries {
		e.Handle.Release()
		delete(c.entries, k)
	}
}
