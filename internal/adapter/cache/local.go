package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// LocalCache is an in-memory ports.Cache used when Redis is unavailable
// (development, tests). Expired keys are swept periodically.
type LocalCache struct {
	mu     sync.RWMutex
	data   map[string]cacheEntry
	sets   map[string]map[string]struct{}
	log    *zap.Logger
	stopCh chan struct{}
}

func NewLocalCache(cleanupInterval time.Duration, log *zap.Logger) ports.Cache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	c := &LocalCache{
		data:   make(map[string]cacheEntry),
		sets:   make(map[string]map[string]struct{}),
		log:    log,
		stopCh: make(chan struct{}),
	}

	go c.cleanupLoop(cleanupInterval)

	log.Info("Local in-memory cache initialized",
		zap.Duration("cleanup_interval", cleanupInterval),
	)
	return c
}

func (c *LocalCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && entry.expiresAt.Before(time.Now()) {
		return "", ports.ErrCacheMiss
	}

	return entry.value, nil
}

func (c *LocalCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}

	c.data[key] = entry
	return nil
}

func (c *LocalCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *LocalCache) SetAdd(ctx context.Context, key string, member string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sets[key] == nil {
		c.sets[key] = make(map[string]struct{})
	}
	c.sets[key][member] = struct{}{}
	return nil
}

func (c *LocalCache) SetRemove(ctx context.Context, key string, member string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sets[key], member)
	if len(c.sets[key]) == 0 {
		delete(c.sets, key)
	}
	return nil
}

func (c *LocalCache) SetMembers(ctx context.Context, key string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	members := make([]string, 0, len(c.sets[key]))
	for member := range c.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

func (c *LocalCache) Ping() error {
	return nil
}

func (c *LocalCache) Close() error {
	close(c.stopCh)
	return nil
}

func (c *LocalCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *LocalCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expired := 0
	for key, entry := range c.data {
		if !entry.expiresAt.IsZero() && entry.expiresAt.Before(now) {
			delete(c.data, key)
			expired++
		}
	}

	if expired > 0 {
		c.log.Debug("Cache cleanup completed", zap.Int("expired_entries", expired))
	}
}
