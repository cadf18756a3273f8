// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers pass a [Hooks] value into the
// resolver, scanner and HTTP client at construction time to receive events
// about a resolution request.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Carry the chosen implementation as a value, never as package state
//
// Two resolutions running in parallel can therefore use different hooks, and
// tests can substitute a recorder without touching shared state.
//
// # Usage
//
//	hooks := observability.Hooks{HTTP: myHTTPHooks{}}
//	resolver := resolve.New(registry, scanner, resolve.WithHooks(hooks))
package observability

import (
	"context"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from the resolution orchestrator.
type ResolveHooks interface {
	OnResolveStart(ctx context.Context, crate, constraint string)
	OnResolveComplete(ctx context.Context, crate string, entries int, duration time.Duration, err error)
}

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from the repository scanner.
type ScanHooks interface {
	// OnBranch records the default-branch lookup for a repository.
	OnBranch(ctx context.Context, platform, repo, branch string, err error)

	// OnProbe records a single candidate file probe.
	OnProbe(ctx context.Context, platform, repo, file string, found bool, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string, string) {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, int, time.Duration, error) {
}

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnBranch(context.Context, string, string, string, error) {}
func (NoopScanHooks) OnProbe(context.Context, string, string, string, bool, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Hook Set
// =============================================================================

// Hooks bundles the hook implementations for one component tree.
// Nil fields fall back to the no-op implementations.
type Hooks struct {
	Resolve ResolveHooks
	Scan    ScanHooks
	HTTP    HTTPHooks
}

// WithDefaults returns a copy of h where every nil field is replaced by its
// no-op implementation.
func (h Hooks) WithDefaults() Hooks {
	if h.Resolve == nil {
		h.Resolve = NoopResolveHooks{}
	}
	if h.Scan == nil {
		h.Scan = NoopScanHooks{}
	}
	if h.HTTP == nil {
		h.HTTP = NoopHTTPHooks{}
	}
	return h
}
