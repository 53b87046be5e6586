package rediscache_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/rediscache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*rediscache.RedisTrackingCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return rediscache.NewRedisTrackingCache(client), server
}

func TestRedisTrackingCache(t *testing.T) {
	t.Run("should report a miss for an unknown code", func(t *testing.T) {
		cache, _ := newCache(t)

		payload, ok, err := cache.Get(t.Context(), "ENV-UNKNOWN1")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, payload)
	})

	t.Run("should round trip a payload", func(t *testing.T) {
		cache, _ := newCache(t)

		err := cache.Set(t.Context(), "ENV-AAAA0001", []byte(`{"status":"InTransit"}`), 5*time.Minute)
		require.NoError(t, err)

		payload, ok, err := cache.Get(t.Context(), "ENV-AAAA0001")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"status":"InTransit"}`, string(payload))
	})

	t.Run("should expire payloads after the TTL", func(t *testing.T) {
		cache, server := newCache(t)

		err := cache.Set(t.Context(), "ENV-AAAA0001", []byte("payload"), time.Minute)
		require.NoError(t, err)

		server.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(t.Context(), "ENV-AAAA0001")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should isolate codes under the key prefix", func(t *testing.T) {
		cache, server := newCache(t)

		err := cache.Set(t.Context(), "ENV-AAAA0001", []byte("payload"), time.Minute)
		require.NoError(t, err)

		assert.True(t, server.Exists("tracking:ENV-AAAA0001"))
		assert.False(t, server.Exists("ENV-AAAA0001"))
	})
}
