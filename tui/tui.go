// Package tui is a terminal frontend: the same game drawn with half-block
// characters through tcell.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/palette"
	"github.com/pthm-cable/werm/sound"
	"github.com/pthm-cable/werm/ui"
)

// worldPerPixel is the world distance one pixel covers at zoom 1, so a
// 100-column terminal shows about as much as an 800 pixel window.
const worldPerPixel = 8.0

// Frontend runs a game in a terminal.
type Frontend struct {
	screen tcell.Screen
	g      *game.Game
	cam    *camera.Camera
	raster *Raster
	keys   keyLatch
	sound  *sound.Player
	log    *slog.Logger

	intro bool
}

// New wraps an initialised screen and enables mouse wheel zoom. snd may
// be nil.
func New(screen tcell.Screen, g *game.Game, snd *sound.Player, log *slog.Logger) *Frontend {
	screen.EnableMouse()

	cfg := g.Config()
	base := 1 / worldPerPixel
	cam := camera.New(0, 0, cfg.Camera.MinZoom*base, cfg.Camera.MaxZoom*base, cfg.Camera.ZoomStep*base)
	cam.SetZoom(base)

	f := &Frontend{
		screen: screen,
		g:      g,
		cam:    cam,
		sound:  snd,
		log:    log,
		intro:  true,
	}
	f.resize()
	return f
}

// Run drives the game at its tick rate until Esc, Ctrl-C or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	rate := f.g.Config().World.TickRate
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.step()
			f.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep going.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if f.intro {
			f.intro = false
			return true
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			f.keys.pressX(-1)
		case tcell.KeyRight:
			f.keys.pressX(1)
		case tcell.KeyUp:
			f.keys.pressY(-1)
		case tcell.KeyDown:
			f.keys.pressY(1)
		case tcell.KeyRune:
			f.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		switch ev.Buttons() {
		case tcell.WheelUp:
			f.cam.ZoomSteps(1)
		case tcell.WheelDown:
			f.cam.ZoomSteps(-1)
		}
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleRune(r rune) {
	switch r {
	case 'a', 'h':
		f.keys.pressX(-1)
	case 'd', 'l':
		f.keys.pressX(1)
	case 'w', 'k':
		f.keys.pressY(-1)
	case 's', 'j':
		f.keys.pressY(1)
	case '+', '=':
		f.cam.ZoomSteps(1)
	case '-':
		f.cam.ZoomSteps(-1)
	case 'm':
		f.sound.SetMuted(!f.sound.Muted())
	case 'r', 'R':
		if f.g.GameOver() {
			f.g.Reset()
			f.keys.clear()
			f.log.Info("restarted from terminal")
		}
	}
}

// step advances the game one tick unless a screen is waiting on the player.
func (f *Frontend) step() {
	if f.intro || f.g.GameOver() {
		return
	}
	res := f.g.Tick(f.keys.next())
	f.sound.PlayTick(res, f.g.Cause())
}

func (f *Frontend) resize() {
	cols, rows := f.screen.Size()
	rows = max(rows, 1)
	f.cam.Resize(float64(cols), float64(rows*2))
	f.raster = NewRaster(cols, rows*2)
}

func (f *Frontend) draw() {
	f.screen.Clear()
	if f.intro {
		f.drawIntro()
		f.screen.Show()
		return
	}

	f.cam.Follow(f.g.Player())
	f.raster.Paint(f.g, f.cam)
	f.blit()
	f.drawHUD()
	if f.g.GameOver() {
		f.drawCentered(f.raster.H/4, ui.GameOverText(f.g.Cause()), textStyle(f.raster, f.raster.H/4))
	}
	f.screen.Show()
}

// blit copies the raster to the screen, two pixel rows per cell.
func (f *Frontend) blit() {
	r := f.raster
	for cy := 0; cy*2+1 < r.H; cy++ {
		for x := 0; x < r.W; x++ {
			top, bottom := r.At(x, cy*2), r.At(x, cy*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			f.screen.SetContent(x, cy, '▀', nil, style)
		}
	}
}

func (f *Frontend) drawHUD() {
	style := textStyle(f.raster, 0)
	f.drawText(1, 0, ui.TimerText(f.g.Elapsed()), style)
	f.drawText(1, 1, StaminaBar(f.g.StaminaFraction(), 20), style)
}

func (f *Frontend) drawIntro() {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	lines := append([]string(nil), ui.IntroLines...)
	lines = append(lines, "", "Esc to quit")
	for i, line := range lines {
		f.drawText(2, 1+i, line, style)
	}
}

func (f *Frontend) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (f *Frontend) drawCentered(y int, s string, style tcell.Style) {
	f.drawText((f.raster.W-len([]rune(s)))/2, y, s, style)
}

// StaminaBar renders stamina as a fixed-width text gauge.
func StaminaBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat("-", width-filled), fraction*100)
}

// textStyle draws text in the palette's text colour over the sand at the
// given cell row.
func textStyle(r *Raster, cellRow int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(palette.Text)).
		Background(rgb(palette.SandAt(cellRow*2, r.H)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
