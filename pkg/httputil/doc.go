// Package httputil provides HTTP utilities for the platform REST client.
//
// # Overview
//
// This package provides the retry infrastructure used by every request
// against the Lumina platform API:
//
//   - [Retry]: Automatic retry with exponential backoff
//   - [RetryableError]: Marker wrapper for transient failures
//
// # Retry
//
// [Retry] wraps an operation with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses (honoring Retry-After when known)
//
// Only errors wrapped in [RetryableError] or [errors.RateLimitedError]
// trigger a retry; everything else (validation failures, 4xx statuses,
// missing resources) is returned immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.Get(ctx, url, &out)
//	})
//
// # Configuration
//
// Defaults are suitable for interactive tool calls:
//
//   - Max attempts: 3
//   - Base backoff: 1 second, doubling each retry
package httputil
