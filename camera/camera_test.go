package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/werm/geom"
)

func newTestCamera() *Camera {
	return New(800, 600, 0.5, 2.0, 0.1)
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := newTestCamera()
	cam.Follow(geom.V(1000, 750))

	// Camera center should map to screen center
	s := cam.WorldToScreen(geom.V(1000, 750))
	if math.Abs(s.X-400) > 0.01 || math.Abs(s.Y-300) > 0.01 {
		t.Errorf("expected screen center (400, 300), got (%f, %f)", s.X, s.Y)
	}
}

func TestWorldToScreenZoom(t *testing.T) {
	cam := newTestCamera()
	cam.Follow(geom.V(1000, 750))
	cam.SetZoom(2)

	s := cam.WorldToScreen(geom.V(1010, 740))
	if math.Abs(s.X-420) > 0.01 || math.Abs(s.Y-280) > 0.01 {
		t.Errorf("expected (420, 280), got (%f, %f)", s.X, s.Y)
	}
	if cam.Scale(25) != 50 {
		t.Errorf("Scale(25) = %v, want 50", cam.Scale(25))
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.Follow(geom.V(300, 1200))
	cam.SetZoom(1.3)

	testCases := []geom.Vec{
		{X: 400, Y: 300}, // center
		{X: 100, Y: 100}, // top-left
		{X: 780, Y: 590}, // near bottom-right
	}

	for _, tc := range testCases {
		w := cam.ScreenToWorld(tc)
		s := cam.WorldToScreen(w)
		if math.Abs(s.X-tc.X) > 0.01 || math.Abs(s.Y-tc.Y) > 0.01 {
			t.Errorf("roundtrip failed: %v -> %v -> %v", tc, w, s)
		}
	}
}

func TestZoomClamp(t *testing.T) {
	cam := newTestCamera()

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 2.0 {
		t.Errorf("expected zoom clamped to 2.0, got %f", cam.Zoom)
	}
}

func TestZoomSteps(t *testing.T) {
	cam := newTestCamera()
	cam.ZoomSteps(1)
	if math.Abs(cam.Zoom-1.1) > 1e-9 {
		t.Errorf("expected 1.1 after one notch in, got %f", cam.Zoom)
	}
	for i := 0; i < 30; i++ {
		cam.ZoomSteps(-1)
	}
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom floor 0.5, got %f", cam.Zoom)
	}
	cam.Reset()
	if cam.Zoom != 1 {
		t.Errorf("Reset zoom = %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := newTestCamera()
	cam.Follow(geom.V(1000, 750))

	// Visible range in world coords: (600, 450) to (1400, 1050)
	if !cam.IsVisible(geom.V(1000, 750), 10) {
		t.Error("camera center should be visible")
	}
	if !cam.IsVisible(geom.V(1405, 750), 10) {
		t.Error("circle overlapping right edge should be visible")
	}
	if cam.IsVisible(geom.V(1500, 750), 10) {
		t.Error("point far right should not be visible")
	}
	// Parked worms sit far outside the world
	if cam.IsVisible(geom.V(-9999, -9999), 25) {
		t.Error("parked position should not be visible")
	}
}
