// Package components defines ECS components for the game world.
package components

import (
	"github.com/pthm-cable/werm/geom"
)

// Lifecycle is a pursuer's activity state. An Active worm is also the only
// kind that is drawn or can collide.
type Lifecycle uint8

const (
	Inactive Lifecycle = iota // Parked or dormant; not updated, not drawn
	Active                    // Hunting the player
)

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "active"
	default:
		return "inactive"
	}
}

// Worm holds a pursuer's kinematic and lifecycle state.
type Worm struct {
	Pos   geom.Vec
	Vel   geom.Vec
	State Lifecycle
	Idle  int // consecutive ticks without player movement
}

// NewWorm returns a worm parked at pos in the Inactive state.
func NewWorm(pos geom.Vec) Worm {
	return Worm{Pos: pos, State: Inactive}
}

// Visible reports whether the worm should be drawn.
func (w *Worm) Visible() bool {
	return w.State == Active
}

// Rock is an obstacle that blocks worm sensors.
type Rock struct {
	geom.Rect
}

// Water is a one-shot stamina pickup, removed on contact.
type Water struct {
	geom.Rect
}

// Village is a persistent regeneration zone. Villages also block worm sensors.
type Village struct {
	geom.Rect
}
