// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers build a [Hooks] value at startup
// and pass it to the components that emit events: the grid engine, the spotlight
// view, and the cached profile store.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Inject implementations explicitly instead of registering them globally
//
// Injection keeps two galaxy views in the same process (for example two
// websocket sessions) from observing each other's events through shared state.
//
// # Usage
//
//	hooks := observability.Hooks{LayoutHooks: &myLayoutHooks{}}
//	engine := grid.New(grid.Options{Hooks: hooks})
//
// Libraries call hooks through the value they were given:
//
//	h.Layout().OnLayoutCommitted(ctx, itemCount, columns, tileSize, duration)
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the grid layout engine.
type LayoutHooks interface {
	// OnLayoutCommitted records a new committed layout.
	OnLayoutCommitted(ctx context.Context, itemCount, columns int, tileSize float64, duration time.Duration)

	// OnWindowComputed records a virtualized window recomputation.
	OnWindowComputed(ctx context.Context, start, end int)
}

// =============================================================================
// Spotlight Hooks
// =============================================================================

// SpotlightHooks receives events from spotlight rotation.
type SpotlightHooks interface {
	// OnSpotlight records an activated spotlight.
	OnSpotlight(ctx context.Context, index int, id string, fetch time.Duration)

	// OnSpotlightMiss records a rotation tick that ended without a spotlight
	// (failed fetch, missing record, or an index invalidated by a shrink).
	OnSpotlightMiss(ctx context.Context, index int, reason string, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutCommitted(context.Context, int, int, float64, time.Duration) {}
func (NoopLayoutHooks) OnWindowComputed(context.Context, int, int)                          {}

// NoopSpotlightHooks is a no-op implementation of SpotlightHooks.
type NoopSpotlightHooks struct{}

func (NoopSpotlightHooks) OnSpotlight(context.Context, int, string, time.Duration) {}
func (NoopSpotlightHooks) OnSpotlightMiss(context.Context, int, string, error)     {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Hook Set
// =============================================================================

// Hooks bundles the hook implementations handed to a component.
// Nil fields fall back to the no-op implementations, so the zero value is
// ready to use.
type Hooks struct {
	LayoutHooks    LayoutHooks
	SpotlightHooks SpotlightHooks
	CacheHooks     CacheHooks
}

// Layout returns the layout hooks, or a no-op implementation.
func (h Hooks) Layout() LayoutHooks {
	if h.LayoutHooks == nil {
		return NoopLayoutHooks{}
	}
	return h.LayoutHooks
}

// Spotlight returns the spotlight hooks, or a no-op implementation.
func (h Hooks) Spotlight() SpotlightHooks {
	if h.SpotlightHooks == nil {
		return NoopSpotlightHooks{}
	}
	return h.SpotlightHooks
}

// Cache returns the cache hooks, or a no-op implementation.
func (h Hooks) Cache() CacheHooks {
	if h.CacheHooks == nil {
		return NoopCacheHooks{}
	}
	return h.CacheHooks
}

// =============================================================================
// Log Hooks
// =============================================================================

// LogHooks writes every event to a logger at debug level. The server and
// the CLI install it when verbose logging is enabled.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns a Hooks value whose three categories log to logger.
func NewLogHooks(logger *log.Logger) Hooks {
	h := &LogHooks{Logger: logger}
	return Hooks{LayoutHooks: h, SpotlightHooks: h, CacheHooks: h}
}

func (h *LogHooks) OnLayoutCommitted(_ context.Context, itemCount, columns int, tileSize float64, d time.Duration) {
	h.Logger.Debug("layout committed", "items", itemCount, "columns", columns, "tile", tileSize, "took", d)
}

func (h *LogHooks) OnWindowComputed(_ context.Context, start, end int) {
	h.Logger.Debug("window computed", "start", start, "end", end)
}

func (h *LogHooks) OnSpotlight(_ context.Context, index int, id string, fetch time.Duration) {
	h.Logger.Debug("spotlight shown", "index", index, "id", id, "fetch", fetch)
}

func (h *LogHooks) OnSpotlightMiss(_ context.Context, index int, reason string, err error) {
	if err != nil {
		h.Logger.Debug("spotlight missed", "index", index, "reason", reason, "error", err)
		return
	}
	h.Logger.Debug("spotlight missed", "index", index, "reason", reason)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}
