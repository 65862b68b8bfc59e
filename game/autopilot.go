package game

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

// Autopilot is a scripted player for headless runs and tuning. It drinks
// when thirsty, rests in villages when tired, runs from nearby worms and
// otherwise wanders, now and then standing still long enough for worms to
// go dormant.
type Autopilot struct {
	cfg config.AutopilotConfig
	rng *rand.Rand

	idleLeft   int
	wanderLeft int
	wander     Input
}

// NewAutopilot creates an autopilot with its own random stream.
func NewAutopilot(cfg *config.Config, seed int64) *Autopilot {
	return &Autopilot{
		cfg: cfg.Autopilot,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next decides the input for the coming tick.
func (a *Autopilot) Next(g *Game) Input {
	player := g.Player()
	stamina := g.Stamina()

	if threat, ok := a.nearestThreat(g); ok {
		a.idleLeft = 0
		return quantize(r2.Sub(player, threat))
	}

	if a.idleLeft > 0 {
		a.idleLeft--
		return Input{}
	}

	if stamina < a.cfg.ThirstThreshold {
		if target, ok := nearestCenter(player, g.Waters()); ok {
			return quantize(r2.Sub(target, player))
		}
	}

	if stamina < a.cfg.RestThreshold || a.resting(g) {
		if insideAny(player, g.Villages()) {
			if stamina < g.Config().Stamina.Max {
				return Input{}
			}
		} else if target, ok := nearestCenter(player, g.Villages()); ok {
			return quantize(r2.Sub(target, player))
		}
	}

	if a.rng.Float64() < a.cfg.IdleChance {
		a.idleLeft = a.cfg.IdleTicks - 1
		return Input{}
	}

	return a.wanderStep(g)
}

// resting reports whether the player is topping up in a village.
func (a *Autopilot) resting(g *Game) bool {
	return insideAny(g.Player(), g.Villages()) && g.Stamina() < g.Config().Stamina.Max
}

// nearestThreat returns the closest visible worm inside the flee radius.
func (a *Autopilot) nearestThreat(g *Game) (geom.Vec, bool) {
	player := g.Player()
	best := a.cfg.FleeRadius
	var threat geom.Vec
	found := false
	for _, w := range g.Worms() {
		if !w.Visible {
			continue
		}
		if d := geom.Distance(w.Pos, player); d < best {
			best, threat, found = d, w.Pos, true
		}
	}
	return threat, found
}

// wanderStep keeps a random heading for a while, turning back toward the
// middle when near the edge of the world.
func (a *Autopilot) wanderStep(g *Game) Input {
	cfg := g.Config()
	player := g.Player()
	margin := 4 * cfg.Player.Radius

	if player.X < margin || player.Y < margin ||
		player.X > cfg.World.Width-margin || player.Y > cfg.World.Height-margin {
		center := geom.V(cfg.World.Width/2, cfg.World.Height/2)
		a.wander = quantize(r2.Sub(center, player))
		a.wanderLeft = a.cfg.WanderTicks
		return a.wander
	}

	for a.wanderLeft <= 0 || !a.wander.Moved() {
		a.wander = Input{DX: a.rng.Intn(3) - 1, DY: a.rng.Intn(3) - 1}
		a.wanderLeft = max(a.cfg.WanderTicks, 1)
	}
	a.wanderLeft--
	return a.wander
}

// quantize snaps v to the nearest of the eight key directions.
func quantize(v geom.Vec) Input {
	n := geom.Length(v)
	if n == 0 {
		return Input{}
	}
	// sin(22.5°): components below this share go to zero
	const cut = 0.3826834
	axis := func(c float64) int {
		switch {
		case c/n > cut:
			return 1
		case c/n < -cut:
			return -1
		}
		return 0
	}
	return Input{DX: axis(v.X), DY: axis(v.Y)}
}

func nearestCenter(p geom.Vec, rects []geom.Rect) (geom.Vec, bool) {
	best := math.Inf(1)
	var target geom.Vec
	for _, r := range rects {
		c := r.Center()
		if d := geom.Distance(p, c); d < best {
			best, target = d, c
		}
	}
	return target, len(rects) > 0
}

func insideAny(p geom.Vec, rects []geom.Rect) bool {
	for _, r := range rects {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}
