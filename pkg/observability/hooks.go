// Package observability provides hooks for logging, metrics, and tracing.
//
// This package enables optional instrumentation without tying the maze engine
// to a specific backend. Consumers register hooks at startup to receive
// events about sessions, maze generation, searches, and manual walks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Session().OnSessionStart(ctx, id, width, height, seed)
//	// ... carve ...
//	observability.Session().OnGenerationComplete(ctx, id, opened, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events about a session's lifetime and its maze.
type SessionHooks interface {
	// OnSessionStart fires when a new maze session is created.
	OnSessionStart(ctx context.Context, id string, width, height int, seed int64)

	// OnGenerationComplete fires once every candidate passage was examined.
	OnGenerationComplete(ctx context.Context, id string, opened int, duration time.Duration)

	// OnCommandRejected fires when a command is not allowed in the current mode.
	OnCommandRejected(ctx context.Context, id, command, mode string)
}

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from solver searches and manual walks.
type SearchHooks interface {
	// OnSearchStart fires when a depth-first or breadth-first search begins.
	OnSearchStart(ctx context.Context, id, discipline string)

	// OnSearchComplete fires when a search found its target or ran dry.
	OnSearchComplete(ctx context.Context, id, discipline string, steps int, found bool)

	// OnWalkComplete fires when a manual walk reaches the destination.
	OnWalkComplete(ctx context.Context, id string, moves int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(context.Context, string, int, int, int64)          {}
func (NoopSessionHooks) OnGenerationComplete(context.Context, string, int, time.Duration) {}
func (NoopSessionHooks) OnCommandRejected(context.Context, string, string, string)        {}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, string)               {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, string, int, bool) {}
func (NoopSearchHooks) OnWalkComplete(context.Context, string, int)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	searchHooks  SearchHooks  = NoopSearchHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session is created.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	searchHooks = NoopSearchHooks{}
}
