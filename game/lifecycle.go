package game

import (
	"github.com/pthm-cable/werm/components"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

// spawnEnvironment places rocks, waters and villages, in that order, so no
// two items overlap. An item that finds no free spot within the attempt
// budget is skipped.
func (g *Game) spawnEnvironment() {
	env := g.cfg.Environment
	var placed []geom.Rect

	rocks := g.placeSquares(env.Rocks, &placed)
	waters := g.placeSquares(env.Waters, &placed)
	villages := g.placeSquares(env.Villages, &placed)

	for i := range rocks {
		g.rockMap.NewEntity(&components.Rock{Rect: rocks[i]})
	}
	for i := range waters {
		g.waterMap.NewEntity(&components.Water{Rect: waters[i]})
	}
	for i := range villages {
		g.villageMap.NewEntity(&components.Village{Rect: villages[i]})
	}

	g.obstacles = make([]geom.Rect, 0, len(rocks)+len(villages))
	g.obstacles = append(g.obstacles, rocks...)
	g.obstacles = append(g.obstacles, villages...)
	g.obstacleGrid.Rebuild(g.obstacles)

	if len(rocks) < env.Rocks.Count || len(waters) < env.Waters.Count || len(villages) < env.Villages.Count {
		g.log.Warn("environment crowded",
			"rocks", len(rocks), "waters", len(waters), "villages", len(villages))
	}
}

// placeSquares draws up to r.Count squares with integer sides in
// [MinSize, MaxSize], each rejected while it overlaps anything in placed.
func (g *Game) placeSquares(r config.SizeRange, placed *[]geom.Rect) []geom.Rect {
	var out []geom.Rect
	for n := 0; n < r.Count; n++ {
		for attempt := 0; attempt < g.cfg.Environment.PlacementAttempts; attempt++ {
			side := float64(r.MinSize + g.rng.Intn(r.MaxSize-r.MinSize+1))
			x := g.rng.Float64() * (g.cfg.World.Width - side)
			y := g.rng.Float64() * (g.cfg.World.Height - side)
			rect := geom.NewRect(x, y, side, side)

			if overlapsAny(rect, *placed) {
				continue
			}
			*placed = append(*placed, rect)
			out = append(out, rect)
			break
		}
	}
	return out
}

func overlapsAny(r geom.Rect, others []geom.Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// spawnWorms creates the roster, parked outside the world.
func (g *Game) spawnWorms() {
	for i := 0; i < g.cfg.Worm.Count; i++ {
		w := components.NewWorm(g.cfg.Derived.Parked)
		g.wormMap.NewEntity(&w)
	}
}
