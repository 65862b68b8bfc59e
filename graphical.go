package main

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/renderer"
	"github.com/pthm-cable/werm/sound"
	"github.com/pthm-cable/werm/ui"
)

// maxTicksPerFrame bounds catch-up after a stalled frame.
const maxTicksPerFrame = 5

const controlsLegend = "Arrows/WASD: move | Wheel: zoom | M: mute | Tab: overlays | Esc: quit"

// runGraphical opens a raylib window and plays until it is closed.
func runGraphical(cfg *config.Config, f runFlags, logger *slog.Logger) error {
	screenW, screenH := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	rl.InitWindow(screenW, screenH, "Werm: Survivor")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, gameOptions(cfg, f, logger))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	player := sound.NewPlayer(cfg.Audio, logger)
	player.Init()
	defer player.Close()

	cam := camera.New(float64(screenW), float64(screenH), cfg.Camera.MinZoom, cfg.Camera.MaxZoom, cfg.Camera.ZoomStep)
	bg := renderer.NewBackgroundRenderer(screenW, screenH, cfg.World.Width, cfg.World.Height, f.seed)
	defer bg.Unload()
	world := renderer.NewWorldRenderer(g)

	hud := ui.NewHUD()
	overlays := ui.NewOverlayRegistry()
	controls := ui.NewControlsPanel(200)
	perfPanel := ui.NewPerfPanel(ui.AnchorTopRight, 220)
	inspector := ui.NewWormInspector(200)

	intro := true
	var acc float64
	var total int64

	for !rl.WindowShouldClose() {
		if intro {
			rl.BeginDrawing()
			if ui.DrawIntro(screenW, screenH) {
				intro = false
			}
			rl.EndDrawing()
			continue
		}

		g.Perf().RecordFrame()
		overlays.PollKeys()
		if rl.IsKeyPressed(rl.KeyM) {
			player.SetMuted(!player.Muted())
		}
		cam.ZoomSteps(ui.WheelSteps())

		if !g.GameOver() {
			acc += float64(rl.GetFrameTime())
			in := ui.ReadInput()
			for n := 0; acc >= cfg.Derived.DT && n < maxTicksPerFrame; n++ {
				acc -= cfg.Derived.DT
				res := g.Tick(in)
				total++
				player.PlayTick(res, g.Cause())
				if res.GameOver {
					acc = 0
					break
				}
			}
			if acc > cfg.Derived.DT*maxTicksPerFrame {
				acc = 0
			}
		}

		cam.Follow(g.Player())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		bg.Draw(cam)
		world.Draw(g, cam)
		if overlays.IsEnabled(ui.OverlayBounds) {
			renderer.DrawBoundCircles(g, cam)
		}
		if overlays.IsEnabled(ui.OverlaySensors) {
			renderer.DrawSensors(g, cam)
		}

		data := ui.HUDDataFrom(g, screenW, screenH)
		data.Muted = player.Muted()
		hud.Draw(data)
		hud.DrawControls(screenH, controlsLegend)
		if overlays.IsEnabled(ui.OverlayControls) {
			controls.Draw(overlays, 10, 60)
		}
		if overlays.IsEnabled(ui.OverlayPerf) {
			perfPanel.Draw(g.Perf().Stats(), screenW, screenH)
		}
		if overlays.IsEnabled(ui.OverlayInspector) {
			inspector.Draw(g, screenW, screenH)
		}

		restart := false
		if g.GameOver() {
			restart = ui.DrawGameOver(g.Cause(), screenW, screenH)
		}
		rl.EndDrawing()

		if restart {
			g.Reset()
			bg.Reseed(f.seed + int64(g.Session()))
			acc = 0
		}
		if f.maxTicks > 0 && total >= f.maxTicks {
			break
		}
	}
	return nil
}
