// Package httputil provides HTTP utilities for registry and repository clients.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Only errors wrapped in [RetryableError] are retried. The delay doubles
// after every failed attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return fetch(ctx)
//	})
//
// # Configuration
//
// [DefaultAttempts] and [DefaultDelay] are the defaults for crates.io and GitHub:
//
//   - Max attempts: 3
//   - Base backoff: 1 second
//
// Responses are never cached; every resolution talks to the network.
package httputil
