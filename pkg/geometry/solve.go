package geometry

import "math"

const (
	// DefaultGap is the spacing between adjacent tiles in pixels.
	DefaultGap = 1.0

	// MinTilePx is the smallest tile edge the solver will produce for a
	// non-empty grid. It also caps the candidate column count at
	// width / MinTilePx so the search stays bounded for very large counts.
	MinTilePx = 1.0
)

// Layout is a solved grid: how many columns, how large each square tile is,
// and how many rows the items occupy.
//
// For a non-empty grid Columns*Rows >= n and Columns*Rows - n < Columns, so
// only the last row can be partially filled.
type Layout struct {
	Columns  int     `json:"columns"`
	TileSize float64 `json:"tile_size"`
	Rows     int     `json:"rows"`
	Gap      float64 `json:"gap"`
}

// Empty reports whether the layout holds no rows.
func (l Layout) Empty() bool { return l.Rows == 0 }

// Stride returns the distance between the top-left corners of adjacent tiles.
func (l Layout) Stride() float64 { return l.TileSize + l.Gap }

// ContentSize returns the pixel area covered by all rows and columns,
// excluding the trailing gap.
func (l Layout) ContentSize() Size {
	if l.Rows == 0 {
		return Size{}
	}
	return Size{
		W: float64(l.Columns)*l.TileSize + float64(l.Columns-1)*l.Gap,
		H: float64(l.Rows)*l.TileSize + float64(l.Rows-1)*l.Gap,
	}
}

// Cell returns the row and column of the flat index i.
func (l Layout) Cell(i int) (row, col int) {
	cols := max(l.Columns, 1)
	return i / cols, i % cols
}

// Rect returns the rectangle of tile i relative to the container origin.
func (l Layout) Rect(i int) Rect {
	row, col := l.Cell(i)
	s := l.Stride()
	return Rect{X: float64(col) * s, Y: float64(row) * s, W: l.TileSize, H: l.TileSize}
}

// Solve computes the grid that best fills a width×height container with n
// square tiles separated by gap pixels.
//
// Every column count from 1 to min(n, width/MinTilePx) is considered. For
// each, the tile is the largest square fitting both the c columns and the
// ceil(n/c) rows, floored to whole pixels and clamped to MinTilePx. The
// largest tile wins; among equal tiles the lowest wasted space (the sum of
// unused pixels on both axes) wins; remaining ties keep the first candidate.
//
// Tile width only shrinks as the column count grows, so the scan stops as soon
// as no later candidate can reach the best tile found so far. The result is
// identical to an exhaustive scan of the same range.
func Solve(n int, width, height, gap float64) Layout {
	gap = max(gap, 0)
	if n <= 0 {
		return Layout{Columns: 1, TileSize: 0, Rows: 0, Gap: gap}
	}
	width, height = max(width, 0), max(height, 0)

	maxCols := min(n, int(math.Floor(width/MinTilePx)))
	maxCols = max(maxCols, 1)

	best := Layout{Columns: 1, Rows: n, Gap: gap, TileSize: -1}
	bestErr := math.Inf(1)

	for c := 1; c <= maxCols; c++ {
		tileW := fitAxis(width, c, gap)
		if best.TileSize > MinTilePx && tileW < best.TileSize {
			break
		}

		rows := ceilDiv(n, c)
		tile := max(min(tileW, fitAxis(height, rows, gap)), MinTilePx)
		err := wasted(width, c, tile, gap) + wasted(height, rows, tile, gap)

		if tile > best.TileSize || (tile == best.TileSize && err < bestErr) {
			best = Layout{Columns: c, TileSize: tile, Rows: rows, Gap: gap}
			bestErr = err
		}
	}
	return best
}

// Waste returns the number of container pixels l leaves unused on both axes.
func Waste(l Layout, width, height float64) float64 {
	if l.Rows == 0 {
		return max(width, 0) + max(height, 0)
	}
	return wasted(width, l.Columns, l.TileSize, l.Gap) + wasted(height, l.Rows, l.TileSize, l.Gap)
}

// fitAxis returns the whole-pixel tile edge that fits count tiles and
// count-1 gaps into span.
func fitAxis(span float64, count int, gap float64) float64 {
	return math.Floor((span - float64(count-1)*gap) / float64(count))
}

func wasted(span float64, count int, tile, gap float64) float64 {
	used := float64(count)*tile + float64(count-1)*gap
	return math.Abs(span - used)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
