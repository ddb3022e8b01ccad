package grid

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

func TestVisibleWindow(t *testing.T) {
	// 10 columns of 9px tiles with a 1px gap: every row is 10px tall.
	l := geometry.Layout{Columns: 10, TileSize: 9, Rows: 100, Gap: 1}

	tests := []struct {
		name   string
		offset float64
		height float64
		buffer int
		want   Window
	}{
		{
			name:   "top without buffer",
			offset: 0,
			height: 50,
			buffer: 0,
			want:   Window{Start: 0, End: 60},
		},
		{
			name:   "middle without buffer",
			offset: 200,
			height: 50,
			buffer: 0,
			want:   Window{Start: 200, End: 260},
		},
		{
			name:   "middle with buffer",
			offset: 200,
			height: 50,
			buffer: 2,
			want:   Window{Start: 180, End: 280},
		},
		{
			name:   "buffer clamps at top",
			offset: 10,
			height: 50,
			buffer: 3,
			want:   Window{Start: 0, End: 120},
		},
		{
			name:   "clamps at bottom",
			offset: 980,
			height: 50,
			buffer: 1,
			want:   Window{Start: 970, End: 1000},
		},
		{
			name:   "past the end",
			offset: 5000,
			height: 50,
			buffer: 1,
			want:   Window{Start: 1000, End: 1000},
		},
		{
			name:   "negative offset treated as top",
			offset: -40,
			height: 20,
			buffer: 0,
			want:   Window{Start: 0, End: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleWindow(l, 1000, tt.offset, tt.height, tt.buffer)
			if got != tt.want {
				t.Errorf("VisibleWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVisibleWindowPartialLastRow(t *testing.T) {
	l := geometry.Layout{Columns: 10, TileSize: 9, Rows: 3, Gap: 1}

	got := VisibleWindow(l, 25, 0, 100, 0)
	if got != (Window{Start: 0, End: 25}) {
		t.Errorf("VisibleWindow() = %+v, want [0, 25)", got)
	}
}

func TestVisibleWindowEmpty(t *testing.T) {
	if got := VisibleWindow(geometry.Solve(0, 100, 100, 1), 0, 0, 100, 2); got.Len() != 0 {
		t.Errorf("VisibleWindow() for empty layout = %+v, want empty", got)
	}
}

func TestVisibleWindowCompleteness(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 84))

	for range 200 {
		n := 1 + rng.IntN(20000)
		l := geometry.Solve(n, float64(100+rng.IntN(1500)), float64(100+rng.IntN(1000)), geometry.DefaultGap)
		viewportHeight := float64(20 + rng.IntN(400))
		content := l.ContentSize().H
		buffer := rng.IntN(4)

		for range 20 {
			offset := rng.Float64() * content
			w := VisibleWindow(l, n, offset, viewportHeight, buffer)

			for row := 0; row < l.Rows; row++ {
				r := l.Rect(row * l.Columns)
				if r.Y > offset+viewportHeight || r.Bottom() < offset {
					continue
				}
				first := row * l.Columns
				last := min(first+l.Columns, n) - 1
				if !w.Contains(first) || !w.Contains(last) {
					t.Fatalf("n=%d layout=%+v offset=%v height=%v: row %d [%d,%d] missing from %+v",
						n, l, offset, viewportHeight, row, first, last, w)
				}
			}
		}
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: 10, End: 20}

	tests := []struct {
		index int
		want  bool
	}{
		{9, false},
		{10, true},
		{19, true},
		{20, false},
	}

	for _, tt := range tests {
		if got := w.Contains(tt.index); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
	if w.Len() != 10 {
		t.Errorf("Len() = %d, want 10", w.Len())
	}
}
