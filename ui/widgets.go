package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/geom"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawStaminaBar draws the stamina bar: the empty colour underneath, the
// filled share on top shading from empty to full.
func (r *Renderer) DrawStaminaBar(x, y, width int32, fraction float64) {
	fraction = geom.Clamp(fraction, 0, 1)
	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)
	fill := StaminaColor(r.Theme, fraction)
	rl.DrawRectangle(x, y, int32(float64(width)*fraction), r.Theme.BarHeight, fill)
}

// StaminaColor is the fill colour for a stamina fraction. Above half the
// bar is the full colour; below, it blends toward the empty colour.
func StaminaColor(t Theme, fraction float64) rl.Color {
	if fraction >= 0.5 {
		return t.BarFull
	}
	return geom.LerpColor(t.BarEmpty, t.BarFull, fraction*2)
}

// DrawPercentBar draws a labelled [0, 100] bar used by the perf panel.
func (r *Renderer) DrawPercentBar(x, y int32, label string, pct float64, width int32) int32 {
	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 45

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, rl.Color{R: 40, G: 30, B: 20, A: 255})

	fill := int32(float64(barWidth) * geom.Clamp(pct/100, 0, 1))
	c := r.Theme.SectionHeader
	if pct > 50 {
		c = rl.Orange
	}
	rl.DrawRectangle(barX, y+2, fill, r.Theme.BarHeight, c)
	rl.DrawText(fmt.Sprintf("%4.1f%%", pct), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// DrawCenteredLines draws lines of text centred horizontally, starting at y.
func (r *Renderer) DrawCenteredLines(lines []string, screenW, y, size int32, c rl.Color) int32 {
	for _, line := range lines {
		w := rl.MeasureText(line, size)
		rl.DrawText(line, (screenW-w)/2, y, size, c)
		y += size + size/2
	}
	return y
}
