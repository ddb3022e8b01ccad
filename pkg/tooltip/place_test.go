package tooltip

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/galaxy/pkg/geometry"
)

var (
	viewport = geometry.Size{W: 1000, H: 800}
	box      = geometry.Size{W: 260, H: 180}
)

func inside(r geometry.Rect, vp geometry.Size) bool {
	const eps = 1e-6
	return r.X >= -eps && r.Y >= -eps && r.Right() <= vp.W+eps && r.Bottom() <= vp.H+eps
}

func TestPlaceNearTopLeft(t *testing.T) {
	p := Place(geometry.Point{X: 5, Y: 5}, box, viewport, DefaultMargin)
	if p.Side != SideRight && p.Side != SideBottom {
		t.Errorf("Side = %s, want right or bottom", p.Side)
	}
	if !inside(p.Rect(box), viewport) {
		t.Errorf("box %+v leaves the viewport", p.Rect(box))
	}
}

func TestPlaceCorners(t *testing.T) {
	tests := []struct {
		name   string
		target geometry.Point
		sides  []Side
	}{
		{"top left", geometry.Point{X: 5, Y: 5}, []Side{SideRight, SideBottom}},
		{"top right", geometry.Point{X: 995, Y: 5}, []Side{SideLeft, SideBottom}},
		{"bottom left", geometry.Point{X: 5, Y: 795}, []Side{SideRight, SideTop}},
		{"bottom right", geometry.Point{X: 995, Y: 795}, []Side{SideLeft, SideTop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Place(tt.target, box, viewport, DefaultMargin)
			if !inside(p.Rect(box).Outset(DefaultMargin), viewport) {
				t.Errorf("box with margin %+v leaves the viewport", p.Rect(box).Outset(DefaultMargin))
			}
			ok := false
			for _, s := range tt.sides {
				ok = ok || p.Side == s
			}
			if !ok {
				t.Errorf("Side = %s, want one of %v", p.Side, tt.sides)
			}
		})
	}
}

func TestPlaceSideGeometry(t *testing.T) {
	target := geometry.Point{X: 100, Y: 400}
	p := Place(target, box, viewport, DefaultMargin)
	if p.Side != SideRight {
		t.Fatalf("Side = %s, want right", p.Side)
	}
	if want := target.X + DefaultMargin + ArrowSize; p.Origin.X != want {
		t.Errorf("Origin.X = %v, want %v", p.Origin.X, want)
	}
	if want := target.Y - box.H/2; p.Origin.Y != want {
		t.Errorf("Origin.Y = %v, want box centered on target (%v)", p.Origin.Y, want)
	}
	if p.ArrowOffset != box.H/2 {
		t.Errorf("ArrowOffset = %v, want %v", p.ArrowOffset, box.H/2)
	}
	if math.Abs(math.Abs(p.ArrowRotation)-180) > 1e-9 {
		t.Errorf("ArrowRotation = %v, want 180 (pointing left at the target)", p.ArrowRotation)
	}
}

func TestPlaceVerticalPreference(t *testing.T) {
	// Narrow, tall viewport: there is more room below than to either side.
	vp := geometry.Size{W: 300, H: 900}
	p := Place(geometry.Point{X: 150, Y: 20}, geometry.Size{W: 200, H: 100}, vp, DefaultMargin)
	if p.Side != SideBottom {
		t.Errorf("Side = %s, want bottom", p.Side)
	}
	if p.ArrowRotation >= 0 {
		t.Errorf("ArrowRotation = %v, want negative (target above the box)", p.ArrowRotation)
	}
}

func TestPlaceFallback(t *testing.T) {
	big := geometry.Size{W: 900, H: 700}
	p := Place(geometry.Point{X: 500, Y: 400}, big, viewport, DefaultMargin)
	if p.Side != SideCenter {
		t.Fatalf("Side = %s, want center fallback", p.Side)
	}
	if p.Origin != (geometry.Point{X: 50, Y: 50}) {
		t.Errorf("Origin = %+v, want box centered in viewport", p.Origin)
	}
	if p.HasArrow() || p.ArrowOffset != 0 || p.ArrowRotation != 0 {
		t.Errorf("fallback should have no arrow: %+v", p)
	}
}

func TestPlaceDegenerate(t *testing.T) {
	p := Place(geometry.Point{}, box, geometry.Size{}, DefaultMargin)
	if p.Side != SideCenter {
		t.Errorf("Side = %s, want center for an empty viewport", p.Side)
	}

	p = Place(geometry.Point{X: 50, Y: 50}, geometry.Size{W: -5, H: -5}, geometry.Size{W: 100, H: 100}, -3)
	if !p.HasArrow() {
		t.Errorf("an empty box should fit: %+v", p)
	}
}

func TestPlaceAlwaysInsideOrCentered(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 2000; i++ {
		vp := geometry.Size{W: 50 + rng.Float64()*1500, H: 50 + rng.Float64()*1200}
		b := geometry.Size{W: 10 + rng.Float64()*vp.W, H: 10 + rng.Float64()*vp.H}
		target := geometry.Point{X: rng.Float64() * vp.W, Y: rng.Float64() * vp.H}
		margin := rng.Float64() * 16

		p := Place(target, b, vp, margin)
		if p.Side == SideCenter {
			continue
		}
		if !inside(p.Rect(b).Outset(margin), vp) {
			t.Fatalf("Place(%+v, %+v, %+v, %v) = %+v leaves the viewport", target, b, vp, margin, p)
		}
		if p.ArrowOffset < 0 || p.ArrowOffset > math.Max(b.W, b.H) {
			t.Fatalf("ArrowOffset %v outside the box edge", p.ArrowOffset)
		}
	}
}

func TestPlaceIsPure(t *testing.T) {
	target := geometry.Point{X: 640, Y: 120}
	a := Place(target, box, viewport, DefaultMargin)
	b := Place(target, box, viewport, DefaultMargin)
	if a != b {
		t.Errorf("Place is not deterministic: %+v vs %+v", a, b)
	}
}
