package usecase

import (
	"context"
	"time"
)

// SearchCache is satisfied by the redis cache; a nil implementation is a
// valid no-op.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const (
	cacheKeyDemandLatest = "demand:latest"
	cacheKeyDemandLock   = "demand:lock"
	cacheKeyTrends       = "trends:"
)
