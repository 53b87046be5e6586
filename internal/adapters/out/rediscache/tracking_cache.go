// Package rediscache implements the tracking cache on Redis. Public tracking
// is the one endpoint hit by anonymous traffic, so its rendered payloads are
// kept out of Postgres behind a short TTL.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// RedisTrackingCache implements ports.TrackingCache using go-redis.
type RedisTrackingCache struct {
	client *redis.Client
}

// NewRedisTrackingCache creates a tracking cache on the given client.
func NewRedisTrackingCache(client *redis.Client) *RedisTrackingCache {
	return &RedisTrackingCache{client: client}
}

// Get returns the cached payload and whether it was present. A missing key
// is not an error.
func (c *RedisTrackingCache) Get(ctx context.Context, trackingCode string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+trackingCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload under the tracking code for the given TTL.
func (c *RedisTrackingCache) Set(ctx context.Context, trackingCode string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+trackingCode, payload, ttl).Err()
}
