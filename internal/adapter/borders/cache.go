package borders

import "github.com/bluele/gcache"

// lruCache holds projected rings keyed by country code. Empty results are
// cached too; a country without polygons will not gain any on refetch.
type lruCache struct {
	c gcache.Cache
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{c: gcache.New(max(maxEntries, 1)).LRU().Build()}
}

func (c *lruCache) get(key string) ([]Ring, bool) {
	v, err := c.c.Get(key)
	if err != nil {
		return nil, false
	}
	rings, ok := v.([]Ring)
	return rings, ok
}

func (c *lruCache) put(key string, rings []Ring) {
	_ = c.c.Set(key, rings)
}

func (c *lruCache) size() int { return c.c.Len(false) }
