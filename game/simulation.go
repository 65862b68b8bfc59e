package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/telemetry"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	GameOver       bool
	Collided       bool
	WaterCollected int
	InVillage      bool
	Activated      int
	Deactivated    int
}

// Tick advances the world by one tick. Once the game is over it does
// nothing until Reset.
func (g *Game) Tick(in Input) TickResult {
	if g.gameOver {
		return TickResult{GameOver: true}
	}

	g.perf.StartTick()
	defer g.perf.EndTick()

	g.tick++
	moved := in.Moved()
	exhausted := false
	g.perf.StartPhase(telemetry.PhasePlayer)
	if moved {
		exhausted = g.movePlayer(in)
	}

	g.perf.StartPhase(telemetry.PhaseWorms)
	res, sample := g.updateWorms(moved)

	g.perf.StartPhase(telemetry.PhasePickups)
	res.WaterCollected = g.collectWater()
	res.InVillage = g.regenInVillage()

	switch {
	case res.Collided:
		g.gameOver = true
		g.cause = telemetry.CauseCaught
	case exhausted:
		g.gameOver = true
		g.cause = telemetry.CauseExhausted
	}
	res.GameOver = g.gameOver

	sample.Tick = g.tick
	sample.Moved = moved
	sample.Stamina = g.stamina
	sample.WatersTaken = res.WaterCollected
	sample.InVillage = res.InVillage
	sample.Collided = res.Collided

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry(sample)

	return res
}

// movePlayer applies one step of movement and its stamina cost. Reports
// whether stamina ran out.
func (g *Game) movePlayer(in Input) bool {
	step := r2.Scale(g.cfg.Player.Speed, in.Direction())
	g.player = geom.ClampToBox(r2.Add(g.player, step), g.cfg.Derived.WorldBounds, g.cfg.Player.Radius)

	g.stamina = max(g.stamina-g.cfg.Stamina.Decay, 0)
	return g.stamina <= 0
}

// updateWorms runs the pursuer system over the roster.
func (g *Game) updateWorms(moved bool) (TickResult, telemetry.TickSample) {
	var res TickResult
	var sample telemetry.TickSample
	nearest := math.Inf(1)

	idx := 0
	query := g.wormFilter.Query()
	for query.Next() {
		w := query.Get()
		idx++
		out := g.pursuers.Update(w, g.player, g.obstacleGrid, moved)

		if out.Activated {
			res.Activated++
			g.log.Debug("worm activated",
				"worm", idx,
				"x", w.Pos.X, "y", w.Pos.Y,
				"fallback", out.SpawnFallback)
		}
		if out.Deactivated {
			res.Deactivated++
			g.log.Debug("worm deactivated", "worm", idx, "idle", w.Idle)
		}
		if out.SpawnFallback {
			sample.SpawnFallbacks++
		}
		if out.Collided {
			res.Collided = true
		}
		if w.Visible() {
			sample.ActiveWorms++
			nearest = min(nearest, geom.Distance(w.Pos, g.player))
		}
	}

	if sample.ActiveWorms > 0 {
		sample.NearestWorm = nearest
	}
	sample.Activations = res.Activated
	sample.Deactivations = res.Deactivated
	return res, sample
}

// collectWater consumes every water the player's centre is inside.
func (g *Game) collectWater() int {
	var taken []ecs.Entity

	query := g.waterFilter.Query()
	for query.Next() {
		if query.Get().ContainsPoint(g.player) {
			taken = append(taken, query.Entity())
		}
	}

	for _, e := range taken {
		g.world.RemoveEntity(e)
		g.stamina = min(g.stamina+g.cfg.Stamina.Water, g.cfg.Stamina.Max)
	}
	return len(taken)
}

// regenInVillage adds regen once per tick while inside any village.
func (g *Game) regenInVillage() bool {
	inside := false
	query := g.villageFilter.Query()
	for query.Next() {
		if query.Get().ContainsPoint(g.player) {
			inside = true
			query.Close()
			break
		}
	}

	if inside {
		g.stamina = min(g.stamina+g.cfg.Stamina.Regen, g.cfg.Stamina.Max)
	}
	return inside
}
