// Package ui draws the heads-up display, debug panels and the full-screen
// intro and game-over screens on top of the world.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/palette"
)

// PanelAnchor specifies where a panel is anchored on screen.
type PanelAnchor int

const (
	AnchorTopLeft PanelAnchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// Place returns the top-left corner of a w x h panel anchored inside a
// screenW x screenH screen, margin pixels from the edges.
func (a PanelAnchor) Place(w, h, screenW, screenH, margin int32) (x, y int32) {
	switch a {
	case AnchorTopRight:
		return screenW - w - margin, margin
	case AnchorBottomLeft:
		return margin, screenH - h - margin
	case AnchorBottomRight:
		return screenW - w - margin, screenH - h - margin
	case AnchorCenter:
		return (screenW - w) / 2, (screenH - h) / 2
	default:
		return margin, margin
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	TextColor      rl.Color // drawn straight on the sand
	BarBg          rl.Color
	BarEmpty       rl.Color
	BarFull        rl.Color
	ScreenBg       rl.Color
	ScreenText     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the desert theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 60, G: 45, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 140, G: 110, B: 80, A: 255},
		SectionHeader:  rl.Color{R: 255, G: 210, B: 120, A: 255},
		LabelColor:     rl.Color{R: 220, G: 205, B: 185, A: 255},
		ValueColor:     rl.RayWhite,
		TextColor:      palette.Text,
		BarBg:          palette.StaminaEmpty,
		BarEmpty:       palette.StaminaEmpty,
		BarFull:        palette.StaminaFull,
		ScreenBg:       rl.Black,
		ScreenText:     rl.White,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  20,
	}
}
