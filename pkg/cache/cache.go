// Package cache provides the caching layer shared by the CLI and the
// badge server: a storage-agnostic Cache interface with file, Redis and
// null backends, plus deterministic key generation for the two cacheable
// artifacts (fetched profile statistics and rendered cards).
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class. Statistics go stale quickly; a
// rendered card is a pure function of its statistics and options, so it
// can live longer.
const (
	StatsTTL = 30 * time.Minute
	CardTTL  = 4 * time.Hour
	HTTPTTL  = 15 * time.Minute
)

// Cache is a byte-oriented key/value store with per-entry TTLs.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// StatsKeyOpts are the fetch parameters that change what statistics are
// collected, and therefore must be part of the cache key.
type StatsKeyOpts struct {
	AllCommits bool
}

// CardKeyOpts identify a rendered card: the statistics snapshot it was
// built from plus a fingerprint of every option that affects the output.
type CardKeyOpts struct {
	StatsHash   string
	OptionsHash string
}

// Keyer generates cache keys. Implementations must be deterministic:
// the same inputs always produce the same key.
type Keyer interface {
	// HTTPKey generates a key for raw upstream HTTP responses.
	HTTPKey(namespace, key string) string

	// StatsKey generates a key for a user's fetched statistics.
	StatsKey(username string, opts StatsKeyOpts) string

	// CardKey generates a key for a rendered card.
	CardKey(username string, opts CardKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return hashKey("http:"+namespace, key)
}

// StatsKey generates a key for fetched statistics.
func (k *DefaultKeyer) StatsKey(username string, opts StatsKeyOpts) string {
	return hashKey("stats", username, opts)
}

// CardKey generates a key for a rendered card.
func (k *DefaultKeyer) CardKey(username string, opts CardKeyOpts) string {
	return hashKey("card", username, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
