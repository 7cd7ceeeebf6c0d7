package cache

import (
	"time"
)

// CacheService represents a generic cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// New returns a memcached-backed cache when an address is configured, and
// the in-process cache otherwise.
func New(memcacheAddr string) CacheService {
	if memcacheAddr != "" {
		return NewMemcacheService(memcacheAddr)
	}
	return NewMemoryService()
}
