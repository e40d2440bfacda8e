package cache

import (
	"context"
	"time"
)

// Store is the response cache port. Both backends treat an expired key
// as a miss, never an error.
type Store interface {
	// Get returns the cached value and whether the key was present and
	// unexpired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl. A non-positive ttl stores
	// nothing.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
