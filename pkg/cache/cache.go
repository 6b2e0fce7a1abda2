// Package cache stores computed query results keyed by input and query.
//
// Parsing and building sources is cheap, but a full-square search scans
// millions of lines. The CLI therefore caches every answer under a key derived
// from the SHA-256 of the raw input plus the query parameters, so re-running a
// query over the same input is a lookup.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection
//   - [NullCache]: caching disabled
//
// All backends implement [Cache]. Keys come from a [Keyer].
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLResult is how long a computed answer stays cached.
const TTLResult = 30 * 24 * time.Hour

// Backend names accepted by configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)
