// Package cache is a small in-process TTL cache for resolved posts. Values
// round-trip through JSON so cached reads never alias live store state.
package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/mayasahsra/write-verse-online/internal/config"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func New(cfg *config.Config) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     time.Duration(cfg.CacheTTLSec) * time.Second,
		now:     time.Now,
	}
}

// GetJSON decodes the cached value for key into dest. It reports whether a
// live entry existed; expired entries are dropped on access.
func (c *Cache) GetJSON(key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(e.payload, dest)
}

func (c *Cache) SetJSON(key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = entry{payload: b, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Del(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
