package internal

import "github.com/veandco/go-sdl2/sdl"

// TextureCache is a small LRU cache of rendered textures keyed by string.
// The header keeps its title and back-label textures here so text that
// appears every frame is rasterized only when it changes. Evicted and
// cleared textures are destroyed; do not hold them across calls.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

// NewTextureCacheWithSize creates a cache that holds at most maxSize
// textures before evicting the least recently used one.
func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the cached texture for key, marking it recently used, or
// nil on a miss.
func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, exists := c.textures[key]
	if !exists {
		return nil
	}
	c.markUsed(key)
	return texture
}

// Set stores a texture under key, evicting the least recently used entry
// when the cache is full. Replacing an existing key does not destroy the
// old texture; callers replacing in place must destroy it themselves.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.markUsed(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) markUsed(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture and empties the cache. The cache
// remains usable afterwards.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
