package ports

import (
	"context"
	"time"
)

// Contract for caching computed minimum costs by a canonical order key.
type CostCache interface {
	// Return the cached cost and whether it was found.
	Get(ctx context.Context, key string) (float64, bool, error)
	// Store a cost for key, expiring after ttl (0 means no expiry).
	Put(ctx context.Context, key string, cost float64, ttl time.Duration) error
}
