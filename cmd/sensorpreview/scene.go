package main

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/systems"
)

// sceneSize is the side of the square test area in world units.
const sceneSize = 800

// maxTrail bounds the remembered worm path.
const maxTrail = 600

// Scene is a fixed obstacle course with one worm chasing a target.
type Scene struct {
	Obstacles []geom.Rect
	Start     geom.Vec
	Worm      geom.Vec
	Vel       geom.Vec
	Target    geom.Vec
	Trail     []geom.Vec
}

// NewScene builds the course: a wall between start and target, a gap
// to squeeze through, and a pair of rocks.
func NewScene() *Scene {
	s := &Scene{
		Obstacles: []geom.Rect{
			geom.NewRect(350, 150, 100, 100),
			geom.NewRect(350, 330, 100, 140),
			geom.NewRect(350, 550, 100, 100),
			geom.NewRect(180, 600, 70, 70),
			geom.NewRect(560, 140, 80, 80),
		},
		Start:  geom.V(120, 400),
		Target: geom.V(680, 400),
	}
	s.Reset()
	return s
}

// Reset puts the worm back at the start, at rest.
func (s *Scene) Reset() {
	s.Worm = s.Start
	s.Vel = geom.Vec{}
	s.Trail = s.Trail[:0]
}

// Step advances the worm one tick with the given controller and reports
// whether it reached the target.
func (s *Scene) Step(steer systems.Steering, reach float64) bool {
	s.Vel = steer.Steer(s.Worm, s.Vel, s.Target, s.Obstacles)
	s.Worm = r2.Add(s.Worm, s.Vel)
	s.Trail = append(s.Trail, s.Worm)
	if len(s.Trail) > maxTrail {
		s.Trail = s.Trail[len(s.Trail)-maxTrail:]
	}
	return geom.Distance(s.Worm, s.Target) < reach
}

// Readings returns what the sensors would see this tick.
func (s *Scene) Readings(steer systems.Steering) (geom.Vec, []systems.SensorReading) {
	return steer.SteerDebug(s.Worm, s.Vel, s.Target, s.Obstacles)
}
