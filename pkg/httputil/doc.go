// Package httputil provides HTTP utilities for upstream API clients.
//
// # Overview
//
// This package provides infrastructure used by the GitHub API client:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/statscard/)
// with configurable TTL. This keeps repeated card renders for the same
// user from burning through the GitHub API rate limit.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 30*time.Minute)
//	ok, err := cache.Get("github:octocat", &stats)  // Check cache
//	if !ok {
//	    stats = fetchFromAPI()
//	    cache.Set("github:octocat", stats)          // Store for later
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient errors in [RetryableError] to opt them into retries:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return doRequest()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/statscard/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `statscard cache clear` or by deleting
// the cache directory.
package httputil
