package i

import (
	"context"
	"time"
)

// Cache is a byte-value cache with per-key expiry.
type Cache interface {
	// Set stores a value under the key for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves the value under the key. A miss returns nil bytes
	// and a nil error.
	Get(ctx context.Context, key string) ([]byte, error)
}
