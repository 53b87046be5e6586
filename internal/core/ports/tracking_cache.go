package ports

import (
	"context"
	"time"
)

// TrackingCache caches rendered tracking payloads by tracking code. A miss
// is a regular outcome, not an error.
type TrackingCache interface {
	// Get returns the cached payload and whether it was present.
	Get(ctx context.Context, trackingCode string) ([]byte, bool, error)

	// Set stores the payload under the tracking code for the given TTL.
	Set(ctx context.Context, trackingCode string, payload []byte, ttl time.Duration) error
}
