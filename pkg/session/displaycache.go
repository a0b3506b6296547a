package session

import (
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Display cache keys for read-mostly feature lists.
const (
	DisplayKeyThemes         = "themes:list"
	DisplayKeyProblems       = "problems:list"
	DisplayKeyResults        = "results:list"
	DisplayKeyAccommodations = "accommodations:list"
)

// DisplayCache is a small LRU for rendered feature lists (themes, problem
// statements, results). It is a pure display optimization: entries are
// invalidated on successful mutation and never treated as authoritative.
type DisplayCache struct {
	cache *lru.Cache[string, []byte]
}

// NewDisplayCache creates a display cache holding up to size entries.
func NewDisplayCache(size int) (*DisplayCache, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &DisplayCache{cache: cache}, nil
}

// Get unmarshals the cached entry into out and reports whether it was found.
func (c *DisplayCache) Get(key string, out any) bool {
	data, ok := c.cache.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.cache.Remove(key)
		return false
	}
	return true
}

// Put stores a value under the key. Unmarshalable values are dropped.
func (c *DisplayCache) Put(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.cache.Add(key, data)
}

// Invalidate removes the given keys.
func (c *DisplayCache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.cache.Remove(key)
	}
}

// Purge empties the cache.
func (c *DisplayCache) Purge() {
	c.cache.Purge()
}
