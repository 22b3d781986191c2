// Package cache provides the key/value stores used to memoize upstream
// recipe database responses.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/metrics"
)

// Cache stores opaque values under string keys with a time to live.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key. The boolean is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// GetJSON looks key up and decodes the stored value into out. Lookup and
// decode errors are logged and reported as a miss so callers fall through
// to the upstream source.
func GetJSON(ctx context.Context, c Cache, key string, out any) bool {
	if c == nil {
		return false
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		logging.FromContext(ctx).WithError(err).WithField("key", key).Warn("cache lookup failed")
		return false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		logging.FromContext(ctx).WithError(err).WithField("key", key).Warn("discarding undecodable cache entry")
		return false
	}

	metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return true
}

// SetJSON encodes value and stores it under key. Failures are logged and
// otherwise ignored.
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logging.FromContext(ctx).WithError(errors.Wrapf(err, "marshal %s", key)).Warn("cache store skipped")
		return
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("key", key).Warn("cache store failed")
	}
}
