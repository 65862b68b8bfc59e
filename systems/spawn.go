package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

// Spawner picks pursuer spawn points away from the player.
type Spawner struct {
	MinDist  float64 // required distance from the player
	Offset   float64 // max random offset per axis
	Attempts int
	Radius   float64 // pursuer radius, used as the bounds inset
	Bounds   r2.Box

	rng *rand.Rand
}

// NewSpawner builds a spawner from worm config.
func NewSpawner(cfg *config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		MinDist:  cfg.Worm.MinSpawnDist,
		Offset:   cfg.Worm.SpawnOffset,
		Attempts: cfg.Worm.SpawnAttempts,
		Radius:   cfg.Worm.Radius,
		Bounds:   cfg.Derived.WorldBounds,
		rng:      rng,
	}
}

// SpawnAway returns a point at least MinDist from player, drawn as a random
// offset in [-Offset, Offset] per axis and clamped into the inset bounds.
// If every attempt lands too close the player's own position is returned
// (ok = false). Callers decide whether to report that; it is kept as-is.
func (s *Spawner) SpawnAway(player geom.Vec) (pos geom.Vec, ok bool) {
	for i := 0; i < s.Attempts; i++ {
		off := geom.V(s.uniform(-s.Offset, s.Offset), s.uniform(-s.Offset, s.Offset))
		p := geom.ClampToBox(r2.Add(player, off), s.Bounds, s.Radius)
		if geom.Distance(p, player) >= s.MinDist {
			return p, true
		}
	}
	return player, false
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
