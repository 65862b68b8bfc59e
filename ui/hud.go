package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Elapsed      time.Duration
	Stamina      float64
	StaminaMax   float64
	Session      int
	FPS          int32
	Muted        bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUDDataFrom reads the HUD fields off a running game.
func HUDDataFrom(g *game.Game, screenW, screenH int32) HUDData {
	return HUDData{
		Elapsed:      g.Elapsed(),
		Stamina:      g.Stamina(),
		StaminaMax:   g.Config().Stamina.Max,
		Session:      g.Session(),
		FPS:          rl.GetFPS(),
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the timer and stamina bar in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme

	rl.DrawText(TimerText(data.Elapsed), 10, 10, t.TitleFontSize, t.TextColor)

	frac := 0.0
	if data.StaminaMax > 0 {
		frac = data.Stamina / data.StaminaMax
	}
	h.renderer.DrawStaminaBar(10, 40, 100, frac)
	gui.Label(rl.Rectangle{X: 116, Y: 35, Width: 80, Height: 20}, fmt.Sprintf("%.0f", data.Stamina))

	status := fmt.Sprintf("Session %d | FPS %d", data.Session, data.FPS)
	if data.Muted {
		status += " | muted"
	}
	w := rl.MeasureText(status, t.FontSize)
	rl.DrawText(status, data.ScreenWidth-w-10, 10, t.FontSize, t.TextColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.DarkGray)
}

// TimerText formats elapsed time as whole seconds.
func TimerText(d time.Duration) string {
	return fmt.Sprintf("Time: %ds", int64(d/time.Second))
}

// PerfPanel renders the per-phase tick timing panel.
type PerfPanel struct {
	renderer *Renderer
	anchor   PanelAnchor
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(anchor PanelAnchor, width int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), anchor: anchor, width: width}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, screenW, screenH int32) {
	r := p.renderer
	lh := r.Theme.LineHeight
	phases := telemetry.AllPhases()
	height := r.Theme.Padding*2 + lh*int32(4) + int32(len(phases))*(lh+2)

	x, y := p.anchor.Place(p.width, height, screenW, screenH, 10)
	r.DrawPanel(x, y, p.width, height)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawSectionHeader(x, y, "Tick Performance")
	y = r.DrawLabelValue(x, y, "avg", stats.AvgTick.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "p99", stats.P99Tick.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "tps", fmt.Sprintf("%.0f", stats.TicksPerSecond))
	for _, phase := range phases {
		y = r.DrawPercentBar(x, y, phase, stats.PhasePct[phase], p.width-r.Theme.Padding*2)
	}
}

// WormInspector shows the nearest visible worm's state.
type WormInspector struct {
	renderer *Renderer
	width    int32
}

// NewWormInspector creates a new inspector panel.
func NewWormInspector(width int32) *WormInspector {
	return &WormInspector{renderer: NewRenderer(), width: width}
}

// Draw renders the panel in the bottom-right corner. Nothing is drawn when
// no worm is hunting.
func (ins *WormInspector) Draw(g *game.Game, screenW, screenH int32) {
	w, dist, ok := NearestVisibleWorm(g)
	if !ok {
		return
	}
	r := ins.renderer
	height := r.Theme.Padding*2 + r.Theme.LineHeight*5
	x, y := AnchorBottomRight.Place(ins.width, height, screenW, screenH, 10)
	r.DrawPanel(x, y, ins.width, height)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawSectionHeader(x, y, "Nearest Worm")
	y = r.DrawLabelValue(x, y, "distance", fmt.Sprintf("%.0f", dist))
	y = r.DrawLabelValue(x, y, "position", fmt.Sprintf("%.0f, %.0f", w.Pos.X, w.Pos.Y))
	y = r.DrawLabelValue(x, y, "velocity", fmt.Sprintf("%.2f, %.2f", w.Vel.X, w.Vel.Y))
	r.DrawLabelValue(x, y, "idle", fmt.Sprintf("%d / %d", w.Idle, g.Config().Worm.InactiveTicks))
}
