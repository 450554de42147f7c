package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pageKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCacheSetGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	html := []byte("<html><body>home</body></html>")
	pc.Set(ctx, HomeKey(), html)

	got, ok := pc.Get(ctx, HomeKey())
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(html) {
		t.Errorf("cached html = %q", got)
	}
}

func TestPageCacheMiss(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)

	if _, ok := pc.Get(context.Background(), "nope"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestPageCacheInvalidate(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	pc.Set(ctx, WeddingKey("w1"), []byte("gallery"))
	pc.Invalidate(ctx, WeddingKey("w1"))

	if _, ok := pc.Get(ctx, WeddingKey("w1")); ok {
		t.Error("expected miss after invalidate")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	pc.Set(ctx, HomeKey(), []byte("home"))
	pc.Set(ctx, WeddingKey("w1"), []byte("w1"))
	pc.Set(ctx, WeddingKey("w2"), []byte("w2"))

	pc.InvalidateAll(ctx)

	for _, key := range []string{HomeKey(), WeddingKey("w1"), WeddingKey("w2")} {
		if _, ok := pc.Get(ctx, key); ok {
			t.Errorf("expected miss for %q after InvalidateAll", key)
		}
	}
}

func TestPageCacheTTL(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, HomeKey(), []byte("home"))

	ttl, err := client.TTL(ctx, pageKeyPrefix+HomeKey()).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, want (0, 1m]", ttl)
	}
}
