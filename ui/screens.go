package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/telemetry"
)

// IntroLines is the text of the title screen.
var IntroLines = []string{
	"WERM: SURVIVOR",
	"",
	"Controls:",
	"  Arrow keys or WASD to move",
	"  Mouse wheel to zoom",
	"  M to mute, Tab for overlays",
	"",
	"Collect water (blue), visit villages (regen),",
	"avoid the worms!",
	"",
	"Press any key to start",
}

// DrawIntro draws the title screen and reports whether the player asked to
// start, by key press, click, or the Start button.
func DrawIntro(screenW, screenH int32) bool {
	t := DefaultTheme()
	rl.ClearBackground(t.ScreenBg)
	y := int32(50)
	for _, line := range IntroLines {
		rl.DrawText(line, 50, y, t.TitleFontSize, t.ScreenText)
		y += 28
	}

	start := gui.Button(rl.Rectangle{X: 50, Y: float32(y + 10), Width: 120, Height: 30}, "Start")
	return start || rl.GetKeyPressed() != 0 || rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// GameOverText is the message for a finished session.
func GameOverText(cause telemetry.Cause) string {
	switch cause {
	case telemetry.CauseCaught:
		return "Game Over! The worms got you. Press R to restart"
	case telemetry.CauseExhausted:
		return "Game Over! Out of stamina. Press R to restart"
	}
	return "Game Over! Press R to restart"
}

// DrawGameOver overlays the game-over message on the frozen world and
// reports whether the player asked to restart.
func DrawGameOver(cause telemetry.Cause, screenW, screenH int32) bool {
	t := DefaultTheme()
	msg := GameOverText(cause)
	w := rl.MeasureText(msg, t.TitleFontSize)
	rl.DrawRectangle(0, screenH/2-20, screenW, 90, rl.Color{R: 255, G: 240, B: 220, A: 180})
	rl.DrawText(msg, (screenW-w)/2, screenH/2, t.TitleFontSize, t.TextColor)

	restart := gui.Button(rl.Rectangle{X: float32(screenW/2 - 60), Y: float32(screenH/2 + 30), Width: 120, Height: 30}, "Restart")
	return restart || rl.IsKeyPressed(rl.KeyR)
}
