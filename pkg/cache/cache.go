// Package cache provides byte-oriented caches for profile data.
//
// The engine treats detail lookups as idempotent, so any component may fetch
// a profile concurrently with any other. A [Cache] keeps those fetches from
// reaching the profile store repeatedly within a session:
//   - [FileCache] persists entries on disk for the CLI
//   - [RedisCache] shares entries between server replicas
//   - [NullCache] disables caching
//
// Keys are produced by a [Keyer] so hosts can scope them per tenant with
// [NewScopedKeyer].
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// TTLDetail bounds how long a profile detail is served from cache.
	TTLDetail = 10 * time.Minute

	// TTLItems bounds how long the ordered item sequence is cached. It is
	// short so newly registered users appear quickly.
	TTLItems = 30 * time.Second
)

// Cache stores opaque values by key.
type Cache interface {
	// Get returns the value for key. A missing or expired entry reports
	// false with a nil error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
