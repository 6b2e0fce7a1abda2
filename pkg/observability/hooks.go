// Package observability provides hooks for metrics and logging.
//
// Libraries emit events through the registered hooks; the defaults are no-ops,
// so nothing is recorded unless main installs an implementation. The CLI
// installs hooks that log at debug level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnQueryStart(ctx, "search")
//	// ... run query ...
//	observability.Engine().OnQueryComplete(ctx, "search", value, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events from the parse → build → query runner.
type EngineHooks interface {
	// OnBuild records that sources were built from parsed records.
	OnBuild(ctx context.Context, records, sources, witnesses int, duration time.Duration)

	// OnQueryStart records the start of a query computation (cache misses only).
	OnQueryStart(ctx context.Context, mode string)

	// OnQueryComplete records the end of a query computation.
	OnQueryComplete(ctx context.Context, mode string, value int64, duration time.Duration, err error)
}

// CacheHooks receives events from result cache lookups.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, mode string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, mode string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, mode string, size int)

	// OnCacheError records a backend failure that was tolerated.
	OnCacheError(ctx context.Context, op string, err error)
}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnBuild(context.Context, int, int, int, time.Duration)                {}
func (NoopEngineHooks) OnQueryStart(context.Context, string)                                 {}
func (NoopEngineHooks) OnQueryComplete(context.Context, string, int64, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks. A nil argument is ignored.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil argument is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
}
