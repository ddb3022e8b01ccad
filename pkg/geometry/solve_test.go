package geometry

import (
	"math/rand/v2"
	"testing"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		width, height float64
		gap           float64
		wantCols      int
		wantTile      float64
		wantRows      int
	}{
		{
			name:     "no items",
			n:        0,
			width:    800,
			height:   600,
			gap:      1,
			wantCols: 1,
			wantTile: 0,
			wantRows: 0,
		},
		{
			name:     "single item clamps to shorter side",
			n:        1,
			width:    800,
			height:   600,
			gap:      1,
			wantCols: 1,
			wantTile: 600,
			wantRows: 1,
		},
		{
			name:     "four items in a square",
			n:        4,
			width:    100,
			height:   100,
			gap:      1,
			wantCols: 2,
			wantTile: 49,
			wantRows: 2,
		},
		{
			name:     "wider container keeps the larger tile",
			n:        4,
			width:    140,
			height:   100,
			gap:      1,
			wantCols: 2,
			wantTile: 49,
			wantRows: 2,
		},
		{
			name:     "single row when width dominates",
			n:        3,
			width:    300,
			height:   50,
			gap:      0,
			wantCols: 3,
			wantTile: 50,
			wantRows: 1,
		},
		{
			name:     "zero width degrades to minimum tile",
			n:        5,
			width:    0,
			height:   600,
			gap:      1,
			wantCols: 1,
			wantTile: MinTilePx,
			wantRows: 5,
		},
		{
			name:     "zero container",
			n:        3,
			width:    0,
			height:   0,
			gap:      1,
			wantCols: 1,
			wantTile: MinTilePx,
			wantRows: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.n, tt.width, tt.height, tt.gap)
			if got.Columns != tt.wantCols {
				t.Errorf("Columns = %d, want %d", got.Columns, tt.wantCols)
			}
			if got.TileSize != tt.wantTile {
				t.Errorf("TileSize = %v, want %v", got.TileSize, tt.wantTile)
			}
			if got.Rows != tt.wantRows {
				t.Errorf("Rows = %d, want %d", got.Rows, tt.wantRows)
			}
		})
	}
}

func TestSolveLargeCount(t *testing.T) {
	got := Solve(10000, 1000, 800, DefaultGap)

	if got.TileSize != 7 {
		t.Errorf("TileSize = %v, want 7", got.TileSize)
	}
	if got.Rows != ceilDiv(10000, got.Columns) {
		t.Errorf("Rows = %d, want ceil(10000/%d)", got.Rows, got.Columns)
	}
	content := got.ContentSize()
	if content.W > 1000 || content.H > 800 {
		t.Errorf("ContentSize() = %+v, exceeds 1000x800", content)
	}
}

func TestSolveHugeCountStaysBounded(t *testing.T) {
	got := Solve(5_000_000, 1200, 900, DefaultGap)
	if got.TileSize != MinTilePx {
		t.Errorf("TileSize = %v, want %v", got.TileSize, MinTilePx)
	}
	if got.Columns > 1200 {
		t.Errorf("Columns = %d, exceeds width cap", got.Columns)
	}
}

func TestSolveInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 500 {
		n := rng.IntN(3000)
		w := float64(rng.IntN(1600))
		h := float64(rng.IntN(1200))

		l := Solve(n, w, h, DefaultGap)
		if l.Columns < 1 {
			t.Fatalf("Solve(%d, %v, %v): Columns = %d, want >= 1", n, w, h, l.Columns)
		}
		if l.TileSize < 0 {
			t.Fatalf("Solve(%d, %v, %v): TileSize = %v, want >= 0", n, w, h, l.TileSize)
		}
		if n == 0 {
			continue
		}
		if l.TileSize < MinTilePx {
			t.Fatalf("Solve(%d, %v, %v): TileSize = %v, want >= %v", n, w, h, l.TileSize, MinTilePx)
		}
		if want := (n + l.Columns - 1) / l.Columns; l.Rows != want {
			t.Fatalf("Solve(%d, %v, %v): Rows = %d, want %d", n, w, h, l.Rows, want)
		}
		if l.Columns*l.Rows < n {
			t.Fatalf("Solve(%d, %v, %v): %d*%d < n", n, w, h, l.Columns, l.Rows)
		}
		if l.Columns*l.Rows-n >= l.Columns {
			t.Fatalf("Solve(%d, %v, %v): more than one partial row", n, w, h)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for range 200 {
		n := rng.IntN(5000)
		w := float64(rng.IntN(2000))
		h := float64(rng.IntN(2000))
		if a, b := Solve(n, w, h, DefaultGap), Solve(n, w, h, DefaultGap); a != b {
			t.Fatalf("Solve(%d, %v, %v) not deterministic: %+v vs %+v", n, w, h, a, b)
		}
	}
}

func TestSolveMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for range 500 {
		n := 1 + rng.IntN(800)
		w := float64(rng.IntN(1200))
		h := float64(rng.IntN(1200))
		dw := float64(rng.IntN(400))
		dh := float64(rng.IntN(400))

		small := Solve(n, w, h, DefaultGap)
		large := Solve(n, w+dw, h+dh, DefaultGap)
		if large.TileSize < small.TileSize {
			t.Fatalf("Solve(%d) tile shrank from %v (%vx%v) to %v (%vx%v)",
				n, small.TileSize, w, h, large.TileSize, w+dw, h+dh)
		}
	}
}

func TestSolveMatchesExhaustiveScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 1))

	for range 200 {
		n := 1 + rng.IntN(400)
		w := float64(rng.IntN(900))
		h := float64(rng.IntN(900))

		got := Solve(n, w, h, DefaultGap)
		want := exhaustive(n, w, h, DefaultGap)
		if got != want {
			t.Fatalf("Solve(%d, %v, %v) = %+v, exhaustive = %+v", n, w, h, got, want)
		}
	}
}

// exhaustive ranks every candidate without the early stop.
func exhaustive(n int, w, h, gap float64) Layout {
	maxCols := max(min(n, int(w/MinTilePx)), 1)
	var best Layout
	bestErr := 0.0
	for c := 1; c <= maxCols; c++ {
		rows := ceilDiv(n, c)
		tile := max(min(fitAxis(w, c, gap), fitAxis(h, rows, gap)), MinTilePx)
		cand := Layout{Columns: c, TileSize: tile, Rows: rows, Gap: gap}
		err := Waste(cand, w, h)
		if c == 1 || tile > best.TileSize || (tile == best.TileSize && err < bestErr) {
			best, bestErr = cand, err
		}
	}
	return best
}

func TestLayoutCell(t *testing.T) {
	l := Layout{Columns: 4, TileSize: 10, Rows: 3, Gap: 1}

	tests := []struct {
		index   int
		wantRow int
		wantCol int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{11, 2, 3},
	}

	for _, tt := range tests {
		row, col := l.Cell(tt.index)
		if row != tt.wantRow || col != tt.wantCol {
			t.Errorf("Cell(%d) = (%d, %d), want (%d, %d)", tt.index, row, col, tt.wantRow, tt.wantCol)
		}
	}
}

func TestLayoutRect(t *testing.T) {
	l := Layout{Columns: 3, TileSize: 20, Rows: 2, Gap: 2}

	got := l.Rect(4)
	want := Rect{X: 22, Y: 22, W: 20, H: 20}
	if got != want {
		t.Errorf("Rect(4) = %+v, want %+v", got, want)
	}
}

func TestLayoutContentSize(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   Size
	}{
		{
			name:   "empty",
			layout: Layout{Columns: 1},
			want:   Size{},
		},
		{
			name:   "two by two",
			layout: Layout{Columns: 2, TileSize: 49, Rows: 2, Gap: 1},
			want:   Size{W: 99, H: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.ContentSize(); got != tt.want {
				t.Errorf("ContentSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
