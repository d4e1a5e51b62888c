package stats

import (
	"context"
	"time"
)

// Cache is a best-effort side cache for computed statistics. A miss and
// a backend failure look the same to callers; statistics are always
// recomputable from the stores.
type Cache interface {
	// Get returns the cached payload for key, or ok=false on a miss
	Get(ctx context.Context, key string) (payload []byte, ok bool)

	// Set stores the payload under key for the given TTL
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}
