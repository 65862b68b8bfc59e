package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/systems"
)

var (
	rayClear   = rl.Color{R: 40, G: 160, B: 60, A: 200}
	rayBlocked = rl.Color{R: 220, G: 40, B: 40, A: 220}
	boundColor = rl.Color{R: 255, G: 255, B: 255, A: 90}
	pushColor  = rl.Color{R: 255, G: 200, B: 0, A: 255}
)

// DrawBoundCircles outlines the circles sensors test obstacles against.
func DrawBoundCircles(g *game.Game, cam *camera.Camera) {
	for _, o := range g.Obstacles() {
		if !cam.IsVisible(o.Center(), o.BoundRadius()) {
			continue
		}
		c := cam.WorldToScreen(o.Center())
		rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(cam.Scale(o.BoundRadius())), boundColor)
	}
}

// DrawSensors re-runs the steering controller for each visible worm, without
// changing it, and draws every ray up to its hit point.
func DrawSensors(g *game.Game, cam *camera.Camera) {
	steer := g.Steering()
	for _, w := range g.Worms() {
		if !w.Visible {
			continue
		}
		_, readings := steer.SteerDebug(w.Pos, w.Vel, g.Player(), g.Obstacles())
		DrawReadings(cam, w.Pos, readings, steer.ProbeLength)

		// Velocity, scaled so max speed is visible
		tip := cam.WorldToScreen(r2.Add(w.Pos, r2.Scale(10, w.Vel)))
		from := cam.WorldToScreen(w.Pos)
		rl.DrawLineEx(vec2(from), vec2(tip), 2, pushColor)
	}
}

// DrawReadings draws sensor rays from origin, green when clear and red up to
// the hit when blocked.
func DrawReadings(cam *camera.Camera, origin geom.Vec, readings []systems.SensorReading, length float64) {
	from := vec2(cam.WorldToScreen(origin))
	for _, rd := range readings {
		end := cam.WorldToScreen(r2.Add(origin, r2.Scale(length*rd.Clearance, rd.Dir)))
		c := rayClear
		if rd.Clearance < 1 {
			c = rayBlocked
			rl.DrawCircleV(vec2(end), 3, c)
		}
		rl.DrawLineEx(from, vec2(end), 1.5, c)
		rl.DrawText(fmt.Sprintf("%.2f", rd.Clearance), int32(end.X)+4, int32(end.Y)-4, 10, c)
	}
}

func vec2(v geom.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
