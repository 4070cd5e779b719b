// Package cache stores rendered PNGs so a seeded piece is drawn only once.
//
// A piece rendered with an explicit seed is fully determined by its mood,
// style, size and seed. The [Keyer] turns those four values into a stable
// key; a [Cache] maps keys to PNG bytes. Three backends are provided:
//
//   - [NullCache]: caching disabled.
//   - [FileCache]: one file per entry under a directory, for the CLI.
//   - [RedisCache]: a shared Redis instance, for the HTTP API.
//
// Pieces with a random seed are never cached.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry; a negative ttl
	// stores an already expired entry, so the next Get misses.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// DefaultTTL is how long rendered pieces stay cached.
const DefaultTTL = 7 * 24 * time.Hour
