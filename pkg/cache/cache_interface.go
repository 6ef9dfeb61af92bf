package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the read-through cache used by repositories
// Allows swapping implementation (Redis, in-memory for tests)
type Cache interface {
	// Get loads the cached value for key into dest
	// Returns: (found bool, error)
	// - found = true: cache hit, dest has been unmarshalled
	// - found = false: cache miss, dest is left untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with TTL
	// Strings and byte slices are stored raw, anything else as JSON
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
