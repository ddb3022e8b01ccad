package grid

import (
	"math"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

// Window is a half-open range [Start, End) of item indices to render.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of items in the window.
func (w Window) Len() int { return max(w.End-w.Start, 0) }

// Contains reports whether index i is inside the window.
func (w Window) Contains(i int) bool { return i >= w.Start && i < w.End }

// VisibleWindow returns the items of an n-item layout whose rows intersect
// the vertical band [offset, offset+viewportHeight], widened by bufferRows
// rows on each side.
func VisibleWindow(l geometry.Layout, n int, offset, viewportHeight float64, bufferRows int) Window {
	if n <= 0 || l.Rows == 0 {
		return Window{}
	}
	rowHeight := l.Stride()
	if rowHeight <= 0 {
		return Window{Start: 0, End: n}
	}
	offset = max(offset, 0)
	viewportHeight = max(viewportHeight, 0)
	bufferRows = max(bufferRows, 0)

	visibleRows := int(math.Ceil(viewportHeight/rowHeight)) + 1
	startRow := max(0, int(math.Floor(offset/rowHeight))-bufferRows)
	startRow = min(startRow, l.Rows)
	endRow := min(l.Rows, startRow+visibleRows+2*bufferRows)

	cols := max(l.Columns, 1)
	start := min(startRow*cols, n)
	end := min(endRow*cols, n)
	return Window{Start: start, End: max(start, end)}
}
