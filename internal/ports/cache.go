package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a namespaced key-value store. Favorites and anonymous session
// state are kept here rather than in process-global state, so any layer that
// needs persistence gets the store injected.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// SetAdd/SetRemove/SetMembers operate on an unordered string set under key.
	SetAdd(ctx context.Context, key string, member string) error
	SetRemove(ctx context.Context, key string, member string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
	Ping() error
	Close() error
}
