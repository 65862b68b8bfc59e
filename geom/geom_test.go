package geom

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestNormalizeZero(t *testing.T) {
	got := Normalize(Vec{})
	if got != (Vec{}) {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Errorf("Normalize(0) produced NaN")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(V(3, 4))
	if !near(got, V(0.6, 0.8)) {
		t.Errorf("Normalize(3,4) = %v, want (0.6, 0.8)", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		deg  float64
		want Vec
	}{
		{"zero angle", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"negative quarter", V(1, 0), -90, V(0, -1)},
		{"half turn", V(0, 2), 180, V(0, -2)},
		{"thirty", V(1, 0), 30, V(math.Sqrt(3)/2, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rotate(tt.in, tt.deg); !near(got, tt.want) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.in, tt.deg, got, tt.want)
			}
		})
	}
}

func TestClampLength(t *testing.T) {
	got := ClampLength(V(30, 40), 5)
	if math.Abs(Length(got)-5) > eps {
		t.Errorf("length = %v, want 5", Length(got))
	}
	if !near(Normalize(got), V(0.6, 0.8)) {
		t.Errorf("direction changed: %v", got)
	}

	short := V(1, 1)
	if ClampLength(short, 5) != short {
		t.Errorf("short vector modified")
	}
	if ClampLength(Vec{}, 5) != (Vec{}) {
		t.Errorf("zero vector modified")
	}
}

func TestClampToBox(t *testing.T) {
	b := r2.Box{Max: V(100, 50)}
	tests := []struct {
		in, want Vec
	}{
		{V(-10, -10), V(5, 5)},
		{V(200, 200), V(95, 45)},
		{V(40, 20), V(40, 20)},
	}
	for _, tt := range tests {
		if got := ClampToBox(tt.in, b, 5); got != tt.want {
			t.Errorf("ClampToBox(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"inside", 34.9, true},
		{"boundary", 35, false},
		{"outside", 35.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(V(0, 0), 25, V(tt.dist, 0), 10); got != tt.want {
				t.Errorf("CirclesOverlap at %v = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestLerpColor(t *testing.T) {
	top := color.RGBA{R: 220, G: 185, B: 150, A: 255}
	bottom := color.RGBA{R: 255, G: 220, B: 190, A: 255}

	if got := LerpColor(top, bottom, 0); got != top {
		t.Errorf("t=0: %v, want %v", got, top)
	}
	if got := LerpColor(top, bottom, 1); got != bottom {
		t.Errorf("t=1: %v, want %v", got, bottom)
	}
	// 220 + 35*0.5 = 237.5 truncates to 237
	if got := LerpColor(top, bottom, 0.5); got.R != 237 || got.G != 202 || got.B != 170 {
		t.Errorf("t=0.5: %v", got)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 60, 100)

	if c := r.Center(); !near(c, V(40, 70)) {
		t.Errorf("Center = %v, want (40, 70)", c)
	}
	if r.BoundRadius() != 50 {
		t.Errorf("BoundRadius = %v, want 50", r.BoundRadius())
	}
	if !r.ContainsPoint(V(10, 20)) {
		t.Errorf("top-left corner should be inside")
	}
	if r.ContainsPoint(V(70, 50)) {
		t.Errorf("right edge should be outside")
	}
	if !r.Overlaps(NewRect(60, 110, 20, 20)) {
		t.Errorf("expected overlap")
	}
	if r.Overlaps(NewRect(70, 20, 10, 10)) {
		t.Errorf("edge-touching rectangles should not overlap")
	}
}
