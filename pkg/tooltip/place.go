package tooltip

import (
	"math"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

const (
	// ArrowSize is the length of the arrow between box and target.
	ArrowSize = 8.0

	// DefaultMargin is the clearance kept to the viewport edges.
	DefaultMargin = 8.0
)

// Side is where the box sits relative to its target.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center" // fallback: centered in the viewport, no arrow
)

func (s Side) opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Placement is the computed position of a tooltip.
type Placement struct {
	Side   Side           `json:"side"`
	Origin geometry.Point `json:"origin"`

	// ArrowOffset is the arrow position along the box edge facing the
	// target, from the top (left/right sides) or the left (top/bottom).
	ArrowOffset float64 `json:"arrow_offset"`

	// ArrowRotation is the angle in degrees of the vector from the box
	// center to the target, clockwise from the positive x axis.
	ArrowRotation float64 `json:"arrow_rotation"`
}

// HasArrow reports whether the placement draws an arrow.
func (p Placement) HasArrow() bool { return p.Side != SideCenter }

// Rect returns the box rectangle for a box of the given size.
func (p Placement) Rect(box geometry.Size) geometry.Rect {
	return geometry.Rect{X: p.Origin.X, Y: p.Origin.Y, W: box.W, H: box.H}
}

// Place computes where to draw a box of size box for target inside a
// viewport of size viewport. Negative sizes and margins are treated as zero.
func Place(target geometry.Point, box, viewport geometry.Size, margin float64) Placement {
	box, viewport = box.Clamp(), viewport.Clamp()
	margin = max(margin, 0)

	for _, side := range order(target, box, viewport) {
		origin := candidate(side, target, box, viewport, margin)
		r := geometry.Rect{X: origin.X, Y: origin.Y, W: box.W, H: box.H}
		if fits(r.Outset(margin), viewport) {
			return withArrow(side, r, target)
		}
	}

	return Placement{
		Side: SideCenter,
		Origin: geometry.Point{
			X: (viewport.W - box.W) / 2,
			Y: (viewport.H - box.H) / 2,
		},
	}
}

// order ranks the four sides. The preferred horizontal side faces the wider
// half of the viewport, the preferred vertical side the taller half; the axis
// leaving more room once the box is placed goes first, then the opposites.
func order(target geometry.Point, box, viewport geometry.Size) [4]Side {
	h, roomH := SideRight, viewport.W-target.X
	if target.X >= viewport.W/2 {
		h, roomH = SideLeft, target.X
	}
	v, roomV := SideBottom, viewport.H-target.Y
	if target.Y >= viewport.H/2 {
		v, roomV = SideTop, target.Y
	}

	if roomH-box.W >= roomV-box.H {
		return [4]Side{h, v, h.opposite(), v.opposite()}
	}
	return [4]Side{v, h, v.opposite(), h.opposite()}
}

// candidate positions the box on side of target, centered on the target
// along the cross axis and clamped into the viewport on that axis.
func candidate(side Side, target geometry.Point, box, viewport geometry.Size, margin float64) geometry.Point {
	d := margin + ArrowSize
	switch side {
	case SideRight:
		return geometry.Point{X: target.X + d, Y: clampAxis(target.Y-box.H/2, box.H, viewport.H, margin)}
	case SideLeft:
		return geometry.Point{X: target.X - d - box.W, Y: clampAxis(target.Y-box.H/2, box.H, viewport.H, margin)}
	case SideBottom:
		return geometry.Point{X: clampAxis(target.X-box.W/2, box.W, viewport.W, margin), Y: target.Y + d}
	default:
		return geometry.Point{X: clampAxis(target.X-box.W/2, box.W, viewport.W, margin), Y: target.Y - d - box.H}
	}
}

// clampAxis slides a span [pos, pos+length] into [margin, limit-margin].
// Spans that cannot fit are left where they are.
func clampAxis(pos, length, limit, margin float64) float64 {
	lo, hi := margin, limit-margin-length
	if hi < lo {
		return pos
	}
	return min(max(pos, lo), hi)
}

func withArrow(side Side, r geometry.Rect, target geometry.Point) Placement {
	c := r.Center()
	rotation := math.Atan2(target.Y-c.Y, target.X-c.X) * 180 / math.Pi

	var offset float64
	switch side {
	case SideLeft, SideRight:
		offset = clampArrow(target.Y-r.Y, r.H)
	default:
		offset = clampArrow(target.X-r.X, r.W)
	}

	return Placement{
		Side:          side,
		Origin:        r.Origin(),
		ArrowOffset:   offset,
		ArrowRotation: rotation,
	}
}

// fits is Rect.Within with a tolerance for the rounding of clampAxis.
func fits(r geometry.Rect, viewport geometry.Size) bool {
	const eps = 1e-9
	return r.X >= -eps && r.Y >= -eps && r.Right() <= viewport.W+eps && r.Bottom() <= viewport.H+eps
}

// clampArrow keeps the arrow ArrowSize away from the corners of an edge of
// the given length, or at its midpoint when the edge is too short.
func clampArrow(offset, length float64) float64 {
	lo, hi := ArrowSize, length-ArrowSize
	if hi < lo {
		return length / 2
	}
	return min(max(offset, lo), hi)
}
