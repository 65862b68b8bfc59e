package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/werm/geom"
)

// rectAround builds a square obstacle centred at c with bounding radius r.
func rectAround(c geom.Vec, r float64) geom.Rect {
	return geom.NewRect(c.X-r, c.Y-r, 2*r, 2*r)
}

func TestCastSensorClear(t *testing.T) {
	east := geom.V(1, 0)

	tests := []struct {
		name      string
		obstacles []geom.Rect
	}{
		{"no obstacles", nil},
		{"obstacle behind", []geom.Rect{rectAround(geom.V(-100, 0), 20)}},
		{"obstacle beyond range", []geom.Rect{rectAround(geom.V(300, 0), 20)}},
		{"obstacle off to the side", []geom.Rect{rectAround(geom.V(100, 60), 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CastSensor(geom.V(0, 0), east, 200, DefaultSensorStep, tt.obstacles)
			if got != 1.0 {
				t.Errorf("CastSensor = %v, want 1.0", got)
			}
		})
	}
}

func TestCastSensorHitFraction(t *testing.T) {
	// Centre at 100, radius 20: the probe at step 16 (x=80) sits exactly on the
	// circle and is clear; step 17 (x=85) is the first inside.
	obstacles := []geom.Rect{rectAround(geom.V(100, 0), 20)}
	got := CastSensor(geom.V(0, 0), geom.V(1, 0), 200, DefaultSensorStep, obstacles)
	want := 17.0 / 40.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CastSensor = %v, want %v", got, want)
	}
}

func TestCastSensorTruncatesSteps(t *testing.T) {
	// 203/5 truncates to 40 steps, same as 200
	obstacles := []geom.Rect{rectAround(geom.V(100, 0), 20)}
	got := CastSensor(geom.V(0, 0), geom.V(1, 0), 203, DefaultSensorStep, obstacles)
	if math.Abs(got-17.0/40.0) > 1e-12 {
		t.Errorf("CastSensor = %v, want %v", got, 17.0/40.0)
	}

	// Too short for a single step
	if got := CastSensor(geom.V(0, 0), geom.V(1, 0), 4, DefaultSensorStep, obstacles); got != 1 {
		t.Errorf("sub-step ray = %v, want 1", got)
	}
}

func TestCastSensorNearestObstacleWins(t *testing.T) {
	obstacles := []geom.Rect{
		rectAround(geom.V(150, 0), 20),
		rectAround(geom.V(50, 0), 10),
	}
	// x=45 is 5 from the near centre: step 9 of 40
	got := CastSensor(geom.V(0, 0), geom.V(1, 0), 200, DefaultSensorStep, obstacles)
	if math.Abs(got-9.0/40.0) > 1e-12 {
		t.Errorf("CastSensor = %v, want %v", got, 9.0/40.0)
	}
}

func TestCastSensorUsesBoundingCircle(t *testing.T) {
	// A 200x20 slab: the bounding circle (radius 100) reaches well above the
	// slab, so a ray passing 50 units over it still reports a hit.
	slab := geom.NewRect(0, 90, 200, 20)
	got := CastSensor(geom.V(0, 50), geom.V(1, 0), 200, DefaultSensorStep, []geom.Rect{slab})
	if got >= 1 {
		t.Errorf("expected bounding circle hit, got clearance %v", got)
	}
}

func TestCastSensorDiagonal(t *testing.T) {
	dir := geom.Normalize(geom.V(1, 1))
	c := geom.V(100, 100)
	got := CastSensor(geom.V(0, 0), dir, 200, DefaultSensorStep, []geom.Rect{rectAround(c, 20)})
	if got <= 0 || got >= 1 {
		t.Fatalf("expected a hit, got %v", got)
	}
	// The hit step must be the first whose probe is inside the circle
	steps := 40
	i := int(math.Round(got * float64(steps)))
	first := geom.V(dir.X*5*float64(i), dir.Y*5*float64(i))
	prev := geom.V(dir.X*5*float64(i-1), dir.Y*5*float64(i-1))
	if geom.Distance(first, c) >= 20 || geom.Distance(prev, c) < 20 {
		t.Errorf("step %d is not the first hit", i)
	}
}
