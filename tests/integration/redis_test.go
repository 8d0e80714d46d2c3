package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karta-lodzianina/ev-backend/internal/adapter/cache"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

func TestRedisCache_SetGetDelete(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	c, err := cache.NewRedisCache(env.RedisURL, env.Logger)
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "station:lodz-001", `{"id":"lodz-001"}`, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := c.Get(ctx, "station:lodz-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"id":"lodz-001"}` {
		t.Errorf("unexpected value: %s", value)
	}

	if err := c.Delete(ctx, "station:lodz-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "station:lodz-001"); !errors.Is(err, ports.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestRedisCache_Expiration(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	c, err := cache.NewRedisCache(env.RedisURL, env.Logger)
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "ephemeral", "x", 100*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := c.Get(ctx, "ephemeral"); !errors.Is(err, ports.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after expiry, got %v", err)
	}
}

func TestRedisCache_FavoriteSets(t *testing.T) {
	env := SetupTestEnvironment(t)
	FlushRedis(t, env.Redis)

	c, err := cache.NewRedisCache(env.RedisURL, env.Logger)
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	ctx := context.Background()
	key := "favorites:kl-test"

	for _, id := range []string{"lodz-001", "lodz-002", "lodz-001"} {
		if err := c.SetAdd(ctx, key, id); err != nil {
			t.Fatalf("SetAdd failed: %v", err)
		}
	}

	members, err := c.SetMembers(ctx, key)
	if err != nil {
		t.Fatalf("SetMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 distinct members, got %v", members)
	}

	if err := c.SetRemove(ctx, key, "lodz-001"); err != nil {
		t.Fatalf("SetRemove failed: %v", err)
	}
	members, err = c.SetMembers(ctx, key)
	if err != nil {
		t.Fatalf("SetMembers failed: %v", err)
	}
	if len(members) != 1 || members[0] != "lodz-002" {
		t.Errorf("expected only lodz-002, got %v", members)
	}
}
