package galaxy

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/profile"
	"github.com/matzehuels/galaxy/pkg/tooltip"
)

// Tile is one rendered tile in screen coordinates.
type Tile struct {
	Index int           `json:"index"`
	Rect  geometry.Rect `json:"rect"`
}

// Frame is everything needed to draw the view once: the tiles that
// intersect the window and the spotlight overlay.
type Frame struct {
	Window      geometry.Size      `json:"window"`
	Cell        geometry.Size      `json:"cell"`
	Tiles       []Tile             `json:"tiles"`
	Spotlight   int                `json:"spotlight"`
	Detail      *profile.Detail    `json:"detail,omitempty"`
	Tooltip     *tooltip.Placement `json:"tooltip,omitempty"`
	TooltipSize geometry.Size      `json:"tooltip_size"`
}

// Frame returns the drawable state of the view. Only tiles inside the
// render window that intersect the visible screen are included.
func (v *View) Frame() Frame {
	f := Frame{
		Window:      v.dims.Window,
		Cell:        v.opts.Cell,
		Spotlight:   -1,
		TooltipSize: v.opts.Tooltip,
	}
	screen := geometry.Rect{W: f.Window.W, H: f.Window.H}
	origin := v.dims.Bounds.Origin().Sub(geometry.Point{Y: v.scroll})
	for i := v.window.Start; i < v.window.End; i++ {
		r, ok := v.engine.TileRect(i)
		if !ok {
			break
		}
		r = r.Translate(origin)
		if r.Intersects(screen) {
			f.Tiles = append(f.Tiles, Tile{Index: i, Rect: r})
		}
	}
	if st := v.sched.State(); st.Active() {
		f.Spotlight = st.Index
		f.Detail = st.Detail
		f.Tooltip = v.tooltip
	}
	return f
}

// =============================================================================
// Text rendering
// =============================================================================

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindTile
	kindSpot
	kindTooltip
	kindArrow
)

var (
	tileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	spotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	arrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

type canvas struct {
	cols, rows int
	cell       geometry.Size
	runes      [][]rune
	kinds      [][]cellKind
}

// Render draws a frame as terminal text, one rune per cell.
func Render(f Frame) string {
	if f.Cell.Empty() {
		f.Cell = DefaultCell
	}
	c := newCanvas(f.Window, f.Cell)
	if c.cols == 0 || c.rows == 0 {
		return ""
	}

	for _, t := range f.Tiles {
		kind := kindTile
		if t.Index == f.Spotlight {
			kind = kindSpot
		}
		glyph := '█'
		if t.Rect.W < f.Cell.W || t.Rect.H < f.Cell.H {
			glyph = '▪'
		}
		c0, c1 := c.span(t.Rect.X, t.Rect.Right(), f.Cell.W, c.cols)
		r0, r1 := c.span(t.Rect.Y, t.Rect.Bottom(), f.Cell.H, c.rows)
		for r := r0; r < r1; r++ {
			for col := c0; col < c1; col++ {
				c.set(col, r, glyph, kind)
			}
		}
	}

	if f.Tooltip != nil && f.Detail != nil {
		c.tooltip(*f.Tooltip, f.TooltipSize, f.Detail)
	}
	return c.String()
}

func newCanvas(window, cell geometry.Size) *canvas {
	window = window.Clamp()
	c := &canvas{
		cols: int(window.W / cell.W),
		rows: int(window.H / cell.H),
		cell: cell,
	}
	c.runes = make([][]rune, c.rows)
	c.kinds = make([][]cellKind, c.rows)
	for r := range c.rows {
		c.runes[r] = []rune(strings.Repeat(" ", c.cols))
		c.kinds[r] = make([]cellKind, c.cols)
	}
	return c
}

// span converts a pixel interval to a cell range, keeping at least one
// cell for intervals smaller than a cell.
func (c *canvas) span(from, to, unit float64, limit int) (int, int) {
	a := int(math.Round(from / unit))
	b := int(math.Round(to / unit))
	if b <= a {
		a = int(math.Floor((from + to) / 2 / unit))
		b = a + 1
	}
	return max(a, 0), min(b, limit)
}

func (c *canvas) set(col, row int, r rune, k cellKind) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.runes[row][col] = r
	c.kinds[row][col] = k
}

func (c *canvas) text(col, row, width int, s string) {
	for i, r := range []rune(truncate(s, width)) {
		c.set(col+i, row, r, kindTooltip)
	}
}

func (c *canvas) tooltip(p tooltip.Placement, box geometry.Size, d *profile.Detail) {
	rect := p.Rect(box)
	c0, c1 := c.span(rect.X, rect.Right(), c.cell.W, c.cols)
	r0, r1 := c.span(rect.Y, rect.Bottom(), c.cell.H, c.rows)
	if c1-c0 < 3 || r1-r0 < 3 {
		return
	}

	for r := r0; r < r1; r++ {
		for col := c0; col < c1; col++ {
			ch := ' '
			switch {
			case r == r0 && col == c0:
				ch = '╭'
			case r == r0 && col == c1-1:
				ch = '╮'
			case r == r1-1 && col == c0:
				ch = '╰'
			case r == r1-1 && col == c1-1:
				ch = '╯'
			case r == r0 || r == r1-1:
				ch = '─'
			case col == c0 || col == c1-1:
				ch = '│'
			}
			c.set(col, r, ch, kindTooltip)
		}
	}

	width := c1 - c0 - 4
	lines := []string{d.Name}
	if d.Location != "" {
		lines = append(lines, d.Location)
	}
	if d.Bio != "" {
		lines = append(lines, wrap(d.Bio, width)...)
	}
	for i, line := range lines {
		row := r0 + 1 + i
		if row >= r1-1 {
			break
		}
		c.text(c0+2, row, width, line)
	}

	if !p.HasArrow() {
		return
	}
	switch p.Side {
	case tooltip.SideTop:
		c.set(int((rect.X+p.ArrowOffset)/c.cell.W), r1, '▼', kindArrow)
	case tooltip.SideBottom:
		c.set(int((rect.X+p.ArrowOffset)/c.cell.W), r0-1, '▲', kindArrow)
	case tooltip.SideLeft:
		c.set(c1, int((rect.Y+p.ArrowOffset)/c.cell.H), '▶', kindArrow)
	case tooltip.SideRight:
		c.set(c0-1, int((rect.Y+p.ArrowOffset)/c.cell.H), '◀', kindArrow)
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for r := range c.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for col := 1; col <= c.cols; col++ {
			if col < c.cols && c.kinds[r][col] == c.kinds[r][start] {
				continue
			}
			b.WriteString(styleFor(c.kinds[r][start]).Render(string(c.runes[r][start:col])))
			start = col
		}
	}
	return b.String()
}

func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case kindTile:
		return tileStyle
	case kindSpot:
		return spotStyle
	case kindTooltip:
		return tooltipStyle
	case kindArrow:
		return arrowStyle
	default:
		return lipgloss.NewStyle()
	}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		line  string
	)
	for _, w := range strings.Fields(s) {
		switch {
		case line == "":
			line = w
		case len([]rune(line))+1+len([]rune(w)) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
