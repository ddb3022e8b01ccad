package geometry

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "origin",
			rect: Rect{W: 100, H: 50},
			want: Point{X: 50, Y: 25},
		},
		{
			name: "offset",
			rect: Rect{X: 20, Y: 10, W: 60, H: 40},
			want: Point{X: 50, Y: 30},
		},
		{
			name: "zero size",
			rect: Rect{X: 5, Y: 5},
			want: Point{X: 5, Y: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.want {
				t.Errorf("Center() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 15, Y: 15, W: 10, H: 10}, true},
		{"shared edge", Rect{X: 20, Y: 10, W: 5, H: 5}, true},
		{"left of", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"below", Rect{X: 10, Y: 25, W: 5, H: 5}, false},
		{"contains", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	vp := Size{W: 100, H: 80}

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"flush", Rect{W: 100, H: 80}, true},
		{"negative x", Rect{X: -1, W: 10, H: 10}, false},
		{"past bottom", Rect{Y: 75, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Within(vp); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOutset(t *testing.T) {
	got := Rect{X: 10, Y: 10, W: 20, H: 20}.Outset(5)
	want := Rect{X: 5, Y: 5, W: 30, H: 30}
	if got != want {
		t.Errorf("Outset(5) = %+v, want %+v", got, want)
	}
}
