// Package integrations provides shared infrastructure for upstream API
// clients: a cached HTTP client with retry logic and common error types.
//
// # Architecture
//
// Each upstream source lives in its own subpackage (currently only
// [github]) and embeds [Client] for transport concerns:
//
//   - Response caching via pkg/httputil with per-client TTLs
//   - Automatic retry with exponential backoff for transient failures
//   - JSON request/response plumbing for REST and GraphQL endpoints
//
// # Error handling
//
// Clients translate HTTP status codes into the package sentinels
// [ErrNotFound], [ErrNetwork] and [ErrRateLimited] so callers can branch
// with errors.Is without inspecting responses.
package integrations
