package cache

import (
	"context"
	"time"
)

// Store is a minimal key-value cache with per-entry TTL. It backs
// profile snapshots and site settings lookups so a page render does
// not hit the database on every request.
type Store interface {
	// Get returns the cached value and whether it was present and fresh
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
