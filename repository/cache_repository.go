package repository

import (
	"context"
	"time"
)

// CacheRepository stores opaque string values with an expiry.
// Get returns ok=false on a miss; an error means the backend failed.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
