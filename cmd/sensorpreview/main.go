// Sensor preview tool: an obstacle course with live sliders for the worm
// steering parameters.
//
// Usage: go run ./cmd/sensorpreview
package main

import (
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/palette"
	"github.com/pthm-cable/werm/renderer"
	"github.com/pthm-cable/werm/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// slider describes one parameter slider.
type slider struct {
	label    string
	min, max float32
	format   string
	value    *float64
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defaults := systems.NewSteering(cfg)
	steer := defaults
	spread := steer.Angles[1]

	rl.InitWindow(windowWidth, windowHeight, "Sensor Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := camera.New(previewSize, previewSize, 0.1, 4, 0.1)
	cam.SetZoom(previewSize / float64(sceneSize))
	cam.Follow(geom.V(sceneSize/2, sceneSize/2))
	offset := rl.Vector2{X: 10, Y: 10}

	scene := NewScene()
	running := false
	reached := false

	sliders := []slider{
		{"Accel (seek force per tick)", 0.05, 1.0, "%.2f", &steer.Accel},
		{"Max speed", 1, 10, "%.1f", &steer.MaxSpeed},
		{"Probe length", 20, 400, "%.0f", &steer.ProbeLength},
		{"Probe step", 1, 20, "%.0f", &steer.Step},
		{"Avoidance gain", 0, 5, "%.2f", &steer.AvoidanceGain},
		{"Side probe angle", 5, 80, "%.0f", &spread},
	}

	for !rl.WindowShouldClose() {
		steer.Angles = []float64{0, spread, -spread}

		mouse := rl.GetMousePosition()
		inPreview := mouse.X >= offset.X && mouse.Y >= offset.Y &&
			mouse.X < offset.X+previewSize && mouse.Y < offset.Y+previewSize
		if inPreview {
			world := cam.ScreenToWorld(geom.V(float64(mouse.X-offset.X), float64(mouse.Y-offset.Y)))
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				scene.Start = world
				scene.Reset()
				reached = false
			}
			if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
				scene.Target = world
				reached = false
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			running = !running
		}

		if running && !reached {
			reached = scene.Step(steer, cfg.Worm.Radius+cfg.Player.Radius)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawScene(scene, steer, cam, offset, cfg)

		status := "paused"
		if running {
			status = "running"
		}
		if reached {
			status = "reached target"
		}
		rl.DrawText(fmt.Sprintf("Worm %s | speed %.2f | trail %d", status, geom.Length(scene.Vel), len(scene.Trail)),
			15, previewSize+25, 16, rl.DarkGray)
		rl.DrawText("Left click: start  Right click: target  Space: run/pause", 15, previewSize+45, 14, rl.Gray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Steering Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf(s.format, s.min), fmt.Sprintf(s.format, s.max),
				float32(*s.value), s.min, s.max,
			)
			*s.value = float64(v)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(running, "Pause", "Run")) {
			running = !running
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Restart Worm") {
			scene.Reset()
			reached = false
		}
		panelY += 45
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			steer = defaults
			spread = defaults.Angles[1]
			scene = NewScene()
			reached = false
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(steer, spread) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			text := ""
			for _, line := range yamlLines(steer, spread) {
				text += line + "\n"
			}
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

// drawScene draws the course into the preview square.
func drawScene(s *Scene, steer systems.Steering, cam *camera.Camera, offset rl.Vector2, cfg *config.Config) {
	rl.DrawRectangle(int32(offset.X), int32(offset.Y), previewSize, previewSize, palette.SandAt(previewSize/2, previewSize))

	// Shift the camera's viewport so world points land inside the preview.
	shifted := *cam
	shifted.X -= float64(offset.X) / cam.Zoom
	shifted.Y -= float64(offset.Y) / cam.Zoom

	for _, o := range s.Obstacles {
		tl := shifted.WorldToScreen(geom.V(o.X, o.Y))
		rl.DrawRectangleRec(rl.Rectangle{
			X: float32(tl.X), Y: float32(tl.Y),
			Width: float32(shifted.Scale(o.W)), Height: float32(shifted.Scale(o.H)),
		}, palette.Rock)
		c := shifted.WorldToScreen(o.Center())
		rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(shifted.Scale(o.BoundRadius())), rl.Fade(rl.Black, 0.3))
	}

	for i := 1; i < len(s.Trail); i++ {
		a, b := shifted.WorldToScreen(s.Trail[i-1]), shifted.WorldToScreen(s.Trail[i])
		rl.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y), rl.Fade(palette.Worm, 0.5))
	}

	t := shifted.WorldToScreen(s.Target)
	rl.DrawCircle(int32(t.X), int32(t.Y), float32(shifted.Scale(cfg.Player.Radius)), palette.Player)

	_, readings := s.Readings(steer)
	renderer.DrawReadings(&shifted, s.Worm, readings, steer.ProbeLength)

	w := shifted.WorldToScreen(s.Worm)
	rl.DrawCircle(int32(w.X), int32(w.Y), float32(shifted.Scale(cfg.Worm.Radius)), palette.Worm)

	rl.DrawRectangleLines(int32(offset.X), int32(offset.Y), previewSize, previewSize, rl.DarkGray)
}

func yamlLines(s systems.Steering, spread float64) []string {
	return []string{
		"worm:",
		fmt.Sprintf("  max_speed: %.2f", s.MaxSpeed),
		fmt.Sprintf("  accel: %.2f", s.Accel),
		"sensors:",
		fmt.Sprintf("  step: %.0f", s.Step),
		fmt.Sprintf("  length: %.0f", s.ProbeLength),
		fmt.Sprintf("  angles: [0, %.0f, %.0f]", spread, -spread),
		fmt.Sprintf("  avoidance_gain: %.2f", s.AvoidanceGain),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
