// Package systems runs the worms: sensor casts, steering, spawn placement
// and the pursuer lifecycle.
package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/components"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

// PursuerOutcome reports what happened to one worm during a tick.
type PursuerOutcome struct {
	Collided      bool // touching the player after moving
	Activated     bool // woke up and teleported this tick
	Deactivated   bool // went dormant this tick
	SpawnFallback bool // activation found no far-enough spot and used the player's position
}

// PursuerSystem runs the worm lifecycle and movement.
type PursuerSystem struct {
	steering      Steering
	spawner       *Spawner
	inactiveTicks int
	radius        float64
	playerRadius  float64
	bounds        r2.Box

	near []geom.Rect // scratch for obstacle queries
}

// NewPursuerSystem creates a pursuer system drawing spawn offsets from rng.
func NewPursuerSystem(cfg *config.Config, rng *rand.Rand) *PursuerSystem {
	return &PursuerSystem{
		steering:      NewSteering(cfg),
		spawner:       NewSpawner(cfg, rng),
		inactiveTicks: cfg.Worm.InactiveTicks,
		radius:        cfg.Worm.Radius,
		playerRadius:  cfg.Player.Radius,
		bounds:        cfg.Derived.WorldBounds,
	}
}

// Steering returns the controller used for active worms.
func (s *PursuerSystem) Steering() Steering {
	return s.steering
}

// Update advances one worm by one tick.
//
//   - moved while Inactive: respawn away from the player, idle = 0, Active.
//   - moved while Active: idle = 0.
//   - not moved: idle++; past the threshold the worm goes Inactive and stays
//     where it is until the player moves again.
//
// An Active worm then steers toward the player, moves, is clamped into the
// world inset by its radius, and is tested for contact with the player.
func (s *PursuerSystem) Update(w *components.Worm, player geom.Vec, obstacles *ObstacleGrid, moved bool) PursuerOutcome {
	var out PursuerOutcome

	if moved {
		if w.State == components.Inactive {
			pos, ok := s.spawner.SpawnAway(player)
			w.Pos = pos
			w.State = components.Active
			out.Activated = true
			out.SpawnFallback = !ok
		}
		w.Idle = 0
	} else {
		w.Idle++
		if w.Idle > s.inactiveTicks && w.State == components.Active {
			w.State = components.Inactive
			out.Deactivated = true
		}
	}

	if w.State != components.Active {
		return out
	}

	s.near = obstacles.NearInto(s.near[:0], w.Pos, s.steering.ProbeLength)
	w.Vel = s.steering.Steer(w.Pos, w.Vel, player, s.near)
	w.Pos = geom.ClampToBox(r2.Add(w.Pos, w.Vel), s.bounds, s.radius)

	out.Collided = geom.CirclesOverlap(w.Pos, s.radius, player, s.playerRadius)
	return out
}
