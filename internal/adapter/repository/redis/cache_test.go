package redis

import (
	"context"
	"testing"
	"time"
)

func TestCache_GetSetDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	// Miss returns nil, nil.
	val, err := cache.Get(ctx, "missing")
	if err != nil || val != nil {
		t.Fatalf("miss: val=%v err=%v, want nil, nil", val, err)
	}

	if err := cache.Set(ctx, "verdict", []byte("clear"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err = cache.Get(ctx, "verdict")
	if err != nil || string(val) != "clear" {
		t.Fatalf("Get: val=%s err=%v, want clear", val, err)
	}

	if err := cache.Delete(ctx, "verdict"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	val, err = cache.Get(ctx, "verdict")
	if err != nil || val != nil {
		t.Fatalf("after delete: val=%v err=%v, want nil, nil", val, err)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "verdict", []byte("listed"), time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mr.FastForward(2 * time.Second)

	val, err := cache.Get(ctx, "verdict")
	if err != nil || val != nil {
		t.Fatalf("after expiry: val=%v err=%v, want nil, nil", val, err)
	}
}
