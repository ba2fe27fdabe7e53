package directory

import (
	"sync"
	"time"
)

// cacheEntry holds a cached contact with a timestamp for TTL expiration.
type cacheEntry struct {
	contact   Contact
	fetchedAt time.Time
}

// contactCache is a thread-safe in-memory cache with TTL expiration.
// Expired entries are cleaned up lazily on get() — no background goroutine.
type contactCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newContactCache(ttl time.Duration) *contactCache {
	return &contactCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

func (c *contactCache) get(key string) (Contact, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Contact{}, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired — clean up lazily.
		// Re-check under write lock: a concurrent set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return Contact{}, false
	}

	return entry.contact, true
}

func (c *contactCache) set(key string, contact Contact) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		contact:   contact,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
