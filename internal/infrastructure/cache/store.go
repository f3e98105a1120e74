// Package cache provides a small byte-value cache used to keep platform
// lookup catalogs (channels, event types, order statuses) warm between
// requests. Catalogs change rarely but are read on every settings page load.
package cache

import (
	"context"
	"time"
)

// Store is a TTL-bounded byte cache. A miss is not an error; Get reports it
// through the found flag.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
