// Package cache is a read-through profile cache over the key/value store that also
// backs sessions.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"askfun/internal/models"
)

// Storage is the subset of fiber.Storage the cache needs.
// Get returns nil, nil for a missing key.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// NewRedisStorage connects to Redis using a redis:// URL.
func NewRedisStorage(url string) *redis.Storage {
	return redis.New(redis.Config{
		URL: url,
	})
}

// ProfileCache is a read-through cache of profiles keyed by handle.
type ProfileCache struct {
	store Storage
	ttl   time.Duration
}

// NewProfileCache creates a profile cache. A nil store disables caching.
func NewProfileCache(store Storage, ttl time.Duration) *ProfileCache {
	return &ProfileCache{store: store, ttl: ttl}
}

func profileKey(handle string) string {
	return "profile:" + handle
}

// Enabled returns true if a backing store is configured.
func (c *ProfileCache) Enabled() bool {
	return c != nil && c.store != nil
}

// Get returns the cached profile, or nil if it is not cached.
func (c *ProfileCache) Get(handle string) (*models.Profile, error) {
	if !c.Enabled() {
		return nil, nil
	}

	data, err := c.store.Get(profileKey(handle))
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &p, nil
}

// Set stores a profile for the configured TTL.
func (c *ProfileCache) Set(p *models.Profile) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.store.Set(profileKey(p.Handle), data, c.ttl); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
