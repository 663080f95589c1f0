// Package cache stores pipeline results by content address.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, used by the CLI.
//   - [RedisCache]: a shared Redis instance, used by the API server.
//   - [NullCache]: stores nothing, used when caching is disabled.
//
// # Keys
//
// A [Keyer] derives keys from a graph hash (see [Hash]) and the options that
// influence a result. Covers and rendered documents have separate key
// spaces, so changing only the output format reuses the cached cover.
// [ScopedKeyer] adds a prefix to every key for namespacing.
//
// # Retries
//
// Backends wrap transient failures with [Retryable]; [RetryWithBackoff]
// retries only those.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
