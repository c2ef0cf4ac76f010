package api

import (
	"net/url"
	"sync"
	"time"
)

// readCache holds raw GET responses inside a freshness window. Mutating
// calls clear it wholesale, which keeps the staleness bound simple.
type readCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body     []byte
	storedAt time.Time
}

func newReadCache(ttl time.Duration) *readCache {
	return &readCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (rc *readCache) lookup(key string) ([]byte, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	e, ok := rc.entries[key]
	if !ok {
		return nil, false
	}
	if rc.now().Sub(e.storedAt) > rc.ttl {
		delete(rc.entries, key)
		return nil, false
	}
	return e.body, true
}

func (rc *readCache) store(key string, body []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries[key] = cacheEntry{body: body, storedAt: rc.now()}
}

func (rc *readCache) clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[string]cacheEntry)
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
