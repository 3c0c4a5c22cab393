// Package cache provides a small TTL cache holding orders the watcher
// has discovered.
package cache

import "time"

// Cache is the interface for caching discovered orders.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns (value, true) if found, (nil, false) if not found.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with a TTL. The write is applied
	// asynchronously and may be rejected under pressure; the result reports
	// acceptance.
	Set(key string, value interface{}, ttl time.Duration) bool

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all values from the cache.
	Clear()

	// Close closes the cache and releases resources.
	Close()
}
