package common

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	CacheKeyProfile       = "profile"
	CacheKeyCurrentResume = "resume:current"
)

// Cache keeps a write generation per key so a read-through fill that raced with a write can be
// dropped instead of caching the older value.
type Cache struct {
	*cache.Cache
	mu  sync.Mutex
	gen map[string]uint64
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{Cache: cache.New(expirationTime, cleanupTime), gen: make(map[string]uint64)}
}

// Generation must be read before loading the value that is later passed to SetIfCurrent.
func (c *Cache) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gen[key]
}

// SetIfCurrent stores value unless key was invalidated after gen was taken.
func (c *Cache) SetIfCurrent(key string, gen uint64, value interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen[key] != gen {
		return false
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
	return true
}

// Invalidate removes key and discards fills that started before the call.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen[key]++
	c.Cache.Delete(key)
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Delete(key string) {
	c.Cache.Delete(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}
