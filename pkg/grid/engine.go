package grid

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/observability"
)

// Engine holds the committed layout for one galaxy view.
//
// An Engine is owned by a single view and is not safe for concurrent use; the
// committed layout is only ever replaced wholesale by SetItemCount and Resize.
type Engine struct {
	opts   Options
	logger *log.Logger
	hooks  observability.Hooks

	count  int
	size   geometry.Size
	layout geometry.Layout
}

// New creates an Engine with no items and a zero-sized container.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts:   opts,
		logger: opts.Logger,
		hooks:  opts.Hooks,
		layout: geometry.Solve(0, 0, 0, opts.Gap),
	}
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options { return e.opts }

// Layout returns the committed layout.
func (e *Engine) Layout() geometry.Layout { return e.layout }

// ItemCount returns the item count the committed layout was solved for.
func (e *Engine) ItemCount() int { return e.count }

// Size returns the container size the committed layout was solved for.
func (e *Engine) Size() geometry.Size { return e.size }

// SetItemCount commits a new layout when n differs from the current count.
// It reports whether the layout was recomputed.
func (e *Engine) SetItemCount(ctx context.Context, n int) bool {
	n = max(n, 0)
	if n == e.count {
		return false
	}
	e.count = n
	e.commit(ctx)
	return true
}

// Resize commits a new layout when either container dimension moved by more
// than the resize threshold. It reports whether the layout was recomputed.
func (e *Engine) Resize(ctx context.Context, size geometry.Size) bool {
	size = size.Clamp()
	if math.Abs(size.W-e.size.W) <= e.opts.ResizeThreshold &&
		math.Abs(size.H-e.size.H) <= e.opts.ResizeThreshold {
		return false
	}
	e.size = size
	e.commit(ctx)
	return true
}

func (e *Engine) commit(ctx context.Context) {
	start := time.Now()
	e.layout = geometry.Solve(e.count, e.size.W, e.size.H, e.opts.Gap)
	elapsed := time.Since(start)

	e.hooks.Layout().OnLayoutCommitted(ctx, e.count, e.layout.Columns, e.layout.TileSize, elapsed)
	e.logger.Debug("committed layout",
		"items", e.count,
		"width", e.size.W,
		"height", e.size.H,
		"columns", e.layout.Columns,
		"tile", e.layout.TileSize,
		"rows", e.layout.Rows,
		"virtualized", e.Virtualized(),
		"duration", elapsed)
}

// Virtualized reports whether only a window of tiles should be rendered.
// Small galaxies and galaxies whose tiles are still comfortably large render
// in full.
func (e *Engine) Virtualized() bool {
	return e.count >= e.opts.VirtualizeMinItems && e.layout.TileSize <= e.opts.VirtualizeMaxTile
}

// Window returns the range of items to render for the given scroll offset and
// viewport height. Without virtualization it is the full item range.
func (e *Engine) Window(ctx context.Context, offset, viewportHeight float64) Window {
	if !e.Virtualized() {
		return Window{Start: 0, End: e.count}
	}
	w := VisibleWindow(e.layout, e.count, offset, viewportHeight, e.opts.BufferRows)
	e.hooks.Layout().OnWindowComputed(ctx, w.Start, w.End)
	return w
}

// TileRect returns the rectangle of tile i relative to the container origin.
// It reports false when i does not reference a current item.
func (e *Engine) TileRect(i int) (geometry.Rect, bool) {
	if i < 0 || i >= e.count {
		return geometry.Rect{}, false
	}
	return e.layout.Rect(i), true
}

// TilePosition returns the screen position of the center of tile i for a
// container whose top-left corner sits at origin and whose content is
// scrolled down by scroll pixels.
func (e *Engine) TilePosition(i int, origin geometry.Point, scroll float64) (geometry.Point, bool) {
	r, ok := e.TileRect(i)
	if !ok {
		return geometry.Point{}, false
	}
	return r.Center().Add(origin).Sub(geometry.Point{Y: max(scroll, 0)}), true
}
