package ui

import (
	"hash/fnv"
	"sync"
)

// RenderCache memoizes rendered page content by a hash of its inputs.
// Every dashboard interaction re-enters View; caching by
// (country, topic, width) keeps unchanged selections from recomputing.
type RenderCache struct {
	cache   sync.Map
	maxSize int
}

type cacheEntry struct {
	content string
	hits    int
}

// NewRenderCache creates a render cache with the given soft size cap.
func NewRenderCache(maxSize int) *RenderCache {
	return &RenderCache{maxSize: maxSize}
}

// ComputeKey hashes the inputs into a cache key with FNV-1a. Key inputs
// are the selection strings and layout ints that determine a render.
func ComputeKey(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
			h.Write([]byte{0}) // separator so ("ab","c") != ("a","bc")
		case int:
			u := uint64(v)
			for i := 0; i < 8; i++ {
				b[i] = byte(u >> (8 * i))
			}
			h.Write(b[:])
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return h.Sum64()
}

// Get retrieves cached content if present.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	if val, ok := rc.cache.Load(key); ok {
		entry := val.(*cacheEntry)
		entry.hits++
		return entry.content, true
	}
	return "", false
}

// Set stores rendered content.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.cache.Store(key, &cacheEntry{content: content, hits: 1})
}

// GetOrCompute retrieves from cache or renders and stores.
func (rc *RenderCache) GetOrCompute(key uint64, render func() string) string {
	if content, ok := rc.Get(key); ok {
		return content
	}
	content := render()
	rc.Set(key, content)
	return content
}

// Clear empties the cache. Called on terminal resize, when every cached
// layout is stale at once.
func (rc *RenderCache) Clear() {
	rc.cache = sync.Map{}
}
