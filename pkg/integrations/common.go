package integrations

import (
	"errors"
	"net/http"
	"time"

	"github.com/statscard/statscard/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a requested resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the upstream API rejects the request
	// because the quota is exhausted.
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewCache creates a file-based cache with the given TTL in the default cache directory.
// See [httputil.NewCache] for details on cache location and behavior.
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}
