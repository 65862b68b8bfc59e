package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/geom"
)

// DefaultSensorStep is the ray-march step in world units.
const DefaultSensorStep = 5.0

// CastSensor marches a probe from origin along dir (unit length) in fixed
// steps up to length and returns the clearance: i/steps for the first step i
// whose probe lies strictly inside an obstacle's bounding circle, or 1 when
// the ray is clear. The step count truncates length/step.
//
// Obstacles are treated as circles of radius max(w,h)/2 around their centre.
func CastSensor(origin, dir geom.Vec, length, step float64, obstacles []geom.Rect) float64 {
	steps := int(length / step)
	if steps <= 0 || len(obstacles) == 0 {
		return 1.0
	}

	for i := 1; i <= steps; i++ {
		p := r2.Add(origin, r2.Scale(step*float64(i), dir))
		for _, o := range obstacles {
			if geom.Distance(p, o.Center()) < o.BoundRadius() {
				return float64(i) / float64(steps)
			}
		}
	}
	return 1.0
}

// SensorReading is one sensor's cast result, kept for debug drawing.
type SensorReading struct {
	Angle     float64  // degrees relative to heading
	Dir       geom.Vec // world-space unit direction
	Clearance float64
}
