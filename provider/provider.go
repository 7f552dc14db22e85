// Package provider defines the byte store the value store writes framed
// entries into.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the bytes previously passed to Set for a key. The store validates every
// entry it reads (magic, version, kind, length) and deletes entries that do
// not parse, so a provider that rewrites values loses them.
//
// Keys under "v:<namespace>:" are owned by the store.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. cost is the store's estimate of
	// the entry size (the framed length by default); providers without cost
	// accounting ignore it. ok=false means the write was refused under
	// pressure, which is not an error.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
