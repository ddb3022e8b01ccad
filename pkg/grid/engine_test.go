package grid

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/observability"
)

func TestEngineSetItemCount(t *testing.T) {
	ctx := context.Background()
	e := New(DefaultOptions())
	e.Resize(ctx, geometry.Size{W: 800, H: 600})

	if !e.SetItemCount(ctx, 1) {
		t.Fatal("SetItemCount(1) should recompute")
	}
	if got := e.Layout(); got.Columns != 1 || got.TileSize != 600 || got.Rows != 1 {
		t.Errorf("Layout() = %+v, want 1 column of 600px", got)
	}
	if e.SetItemCount(ctx, 1) {
		t.Error("SetItemCount with the same count should not recompute")
	}
	if !e.SetItemCount(ctx, 0) {
		t.Error("SetItemCount(0) should recompute")
	}
	if got := e.Layout(); got.Rows != 0 || got.TileSize != 0 {
		t.Errorf("Layout() after clearing = %+v, want empty", got)
	}
}

func TestEngineResizeThreshold(t *testing.T) {
	ctx := context.Background()
	e := New(DefaultOptions())
	e.SetItemCount(ctx, 12)

	tests := []struct {
		name string
		size geometry.Size
		want bool
	}{
		{"first size", geometry.Size{W: 400, H: 300}, true},
		{"same size", geometry.Size{W: 400, H: 300}, false},
		{"sub-threshold jitter", geometry.Size{W: 400.3, H: 299.8}, false},
		{"real change", geometry.Size{W: 410, H: 300}, true},
		{"negative clamps to zero", geometry.Size{W: -5, H: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Resize(ctx, tt.size); got != tt.want {
				t.Errorf("Resize(%+v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}

	if got := e.Size(); got != (geometry.Size{}) {
		t.Errorf("Size() = %+v, want zero after negative resize", got)
	}
	if got := e.Layout(); got.Columns < 1 || got.Rows != 12 {
		t.Errorf("Layout() for zero container = %+v, want one column of 12 rows", got)
	}
}

func TestEngineVirtualization(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		count int
		size  geometry.Size
		want  bool
	}{
		{"few items", 100, geometry.Size{W: 1000, H: 800}, false},
		{"many items with large tiles", 2500, geometry.Size{W: 4000, H: 4000}, false},
		{"many small items", 10000, geometry.Size{W: 1000, H: 800}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(DefaultOptions())
			e.Resize(ctx, tt.size)
			e.SetItemCount(ctx, tt.count)
			if got := e.Virtualized(); got != tt.want {
				t.Errorf("Virtualized() = %v (layout %+v), want %v", got, e.Layout(), tt.want)
			}
		})
	}
}

func TestEngineWindowFullWhenNotVirtualized(t *testing.T) {
	ctx := context.Background()
	e := New(DefaultOptions())
	e.Resize(ctx, geometry.Size{W: 800, H: 600})
	e.SetItemCount(ctx, 50)

	if got := e.Window(ctx, 300, 100); got != (Window{Start: 0, End: 50}) {
		t.Errorf("Window() = %+v, want [0, 50)", got)
	}
}

func TestEngineWindowVirtualized(t *testing.T) {
	ctx := context.Background()
	hooks := &countingLayoutHooks{}
	opts := DefaultOptions()
	opts.Hooks = observability.Hooks{LayoutHooks: hooks}
	e := New(opts)
	e.Resize(ctx, geometry.Size{W: 1000, H: 800})
	e.SetItemCount(ctx, 10000)

	w := e.Window(ctx, 0, 200)
	if w.Start != 0 {
		t.Errorf("Window().Start = %d, want 0", w.Start)
	}
	if w.End >= 10000 {
		t.Errorf("Window().End = %d, want a partial window", w.End)
	}
	if hooks.windows != 1 {
		t.Errorf("OnWindowComputed calls = %d, want 1", hooks.windows)
	}
	if hooks.commits != 2 {
		t.Errorf("OnLayoutCommitted calls = %d, want 2", hooks.commits)
	}
}

func TestEngineTilePosition(t *testing.T) {
	ctx := context.Background()
	e := New(DefaultOptions())
	e.Resize(ctx, geometry.Size{W: 100, H: 100})
	e.SetItemCount(ctx, 4)

	got, ok := e.TilePosition(3, geometry.Point{X: 10, Y: 20}, 5)
	if !ok {
		t.Fatal("TilePosition(3) should succeed")
	}
	// Tile 3 sits at (50, 50) with a 49px edge.
	want := geometry.Point{X: 10 + 50 + 24.5, Y: 20 + 50 + 24.5 - 5}
	if got != want {
		t.Errorf("TilePosition(3) = %+v, want %+v", got, want)
	}

	for _, i := range []int{-1, 4, 100} {
		if _, ok := e.TilePosition(i, geometry.Point{}, 0); ok {
			t.Errorf("TilePosition(%d) should fail for stale index", i)
		}
	}
}

type countingLayoutHooks struct {
	observability.NoopLayoutHooks
	commits, windows int
}

func (h *countingLayoutHooks) OnLayoutCommitted(context.Context, int, int, float64, time.Duration) {
	h.commits++
}

func (h *countingLayoutHooks) OnWindowComputed(context.Context, int, int) {
	h.windows++
}
