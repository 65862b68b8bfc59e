package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

// Steering is a memoryless seek-plus-avoid velocity controller.
// Velocity is the only state it carries between ticks, and that lives on the
// worm, not here.
type Steering struct {
	Accel         float64   // seek force per tick
	MaxSpeed      float64   // velocity magnitude cap
	ProbeLength   float64   // sensor ray length
	Step          float64   // sensor march step
	AvoidanceGain float64   // scale of the sideways push
	Angles        []float64 // sensor angles in degrees relative to heading
}

// NewSteering builds a controller from worm and sensor config.
func NewSteering(cfg *config.Config) Steering {
	return Steering{
		Accel:         cfg.Worm.Accel,
		MaxSpeed:      cfg.Worm.MaxSpeed,
		ProbeLength:   cfg.Sensors.Length,
		Step:          cfg.Sensors.Step,
		AvoidanceGain: cfg.Sensors.AvoidanceGain,
		Angles:        cfg.Sensors.Angles,
	}
}

// Steer returns the velocity for the next tick.
func (s Steering) Steer(pos, vel, target geom.Vec, obstacles []geom.Rect) geom.Vec {
	v, _ := s.steer(pos, vel, target, obstacles, false)
	return v
}

// SteerDebug is Steer that also returns each sensor's reading.
func (s Steering) SteerDebug(pos, vel, target geom.Vec, obstacles []geom.Rect) (geom.Vec, []SensorReading) {
	return s.steer(pos, vel, target, obstacles, true)
}

func (s Steering) steer(pos, vel, target geom.Vec, obstacles []geom.Rect, debug bool) (geom.Vec, []SensorReading) {
	// Zero when pos == target; seeking then contributes nothing this tick.
	desired := geom.Normalize(r2.Sub(target, pos))
	vel = r2.Add(vel, r2.Scale(s.Accel, desired))

	forward := desired
	if geom.Length(vel) > 0 {
		forward = geom.Normalize(vel)
	}

	var readings []SensorReading
	if debug {
		readings = make([]SensorReading, 0, len(s.Angles))
	}

	if forward != (geom.Vec{}) {
		// Cast every sensor before applying any push so all readings share
		// the same heading.
		clearances := make([]float64, len(s.Angles))
		for i, angle := range s.Angles {
			dir := geom.Rotate(forward, angle)
			clearances[i] = CastSensor(pos, dir, s.ProbeLength, s.Step, obstacles)
			if debug {
				readings = append(readings, SensorReading{Angle: angle, Dir: dir, Clearance: clearances[i]})
			}
		}

		for i, angle := range s.Angles {
			clr := clearances[i]
			if clr >= 1 {
				continue
			}
			perp := geom.Rotate(forward, angle+90)
			vel = r2.Add(vel, r2.Scale((1-clr)*s.AvoidanceGain, perp))
		}
	}

	return geom.ClampLength(vel, s.MaxSpeed), readings
}
