package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/geom"
)

// ReadInput returns the movement keys held this frame. Arrows and WASD
// both work; opposite keys cancel.
func ReadInput() game.Input {
	return axes(rl.KeyLeft, rl.KeyRight, rl.KeyUp, rl.KeyDown).
		Combine(axes(rl.KeyA, rl.KeyD, rl.KeyW, rl.KeyS))
}

func axes(left, right, up, down int32) game.Input {
	var in game.Input
	if rl.IsKeyDown(left) {
		in.DX--
	}
	if rl.IsKeyDown(right) {
		in.DX++
	}
	if rl.IsKeyDown(up) {
		in.DY--
	}
	if rl.IsKeyDown(down) {
		in.DY++
	}
	return in
}

// WheelSteps returns whole zoom steps from the mouse wheel this frame.
func WheelSteps() float64 {
	return float64(rl.GetMouseWheelMove())
}

// NearestVisibleWorm returns the closest hunting worm to the player.
func NearestVisibleWorm(g *game.Game) (game.WormView, float64, bool) {
	var best game.WormView
	bestDist := -1.0
	player := g.Player()
	for _, w := range g.Worms() {
		if !w.Visible {
			continue
		}
		if d := geom.Distance(w.Pos, player); bestDist < 0 || d < bestDist {
			best, bestDist = w, d
		}
	}
	return best, bestDist, bestDist >= 0
}
