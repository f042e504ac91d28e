package cache

import (
	"context"
	"time"
)

// Cache is the JSON key-value store behind the assessment session state.
// A miss is not an error; GetJSON reports it through the hit flag.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
