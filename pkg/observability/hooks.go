// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about tool invocations, platform
// API calls, and engine queries.
//
// The package uses a simple hooks pattern: hook interfaces per event
// category, no-op default implementations, and registration at startup
// by main rather than by libraries. This avoids import cycles and keeps
// the core packages free of any observability framework, while still
// allowing an OpenTelemetry or Prometheus backend to be plugged in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetToolHooks(&myToolHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tool().OnCallStart(ctx, name)
//	// ... handle the call ...
//	observability.Tool().OnCallComplete(ctx, name, duration, isError)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tool Hooks
// =============================================================================

// ToolHooks receives events from MCP tool invocations.
type ToolHooks interface {
	// OnCallStart records an incoming tool call.
	OnCallStart(ctx context.Context, tool string)

	// OnCallComplete records a finished tool call. isError reports a
	// tool-level failure surfaced to the client in the result.
	OnCallComplete(ctx context.Context, tool string, duration time.Duration, isError bool)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from platform REST calls.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from analytics engine queries.
type EngineHooks interface {
	// OnQueryStart records the beginning of a hypercube evaluation.
	OnQueryStart(ctx context.Context, appID string)

	// OnQueryComplete records a finished evaluation and the row count
	// of its result matrix.
	OnQueryComplete(ctx context.Context, appID string, rows int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopToolHooks is a no-op implementation of ToolHooks.
type NoopToolHooks struct{}

func (NoopToolHooks) OnCallStart(context.Context, string)                         {}
func (NoopToolHooks) OnCallComplete(context.Context, string, time.Duration, bool) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnQueryStart(context.Context, string)                               {}
func (NoopEngineHooks) OnQueryComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	toolHooks   ToolHooks   = NoopToolHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetToolHooks registers custom tool hooks.
// This should be called once at application startup before serving.
func SetToolHooks(h ToolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		toolHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any platform calls.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine queries.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Tool returns the registered tool hooks.
func Tool() ToolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return toolHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	toolHooks = NoopToolHooks{}
	httpHooks = NoopHTTPHooks{}
	engineHooks = NoopEngineHooks{}
}
