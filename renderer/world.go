// Package renderer draws the game world with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/palette"
)

var worldOrigin = geom.V(0, 0)

// shadowOffset is the player's drop shadow offset in screen pixels.
const shadowOffset = 4

// WorldRenderer draws environment rectangles, worms and the player.
type WorldRenderer struct {
	wormRadius   float64
	playerRadius float64
}

// NewWorldRenderer creates a renderer sized from the game config.
func NewWorldRenderer(g *game.Game) *WorldRenderer {
	cfg := g.Config()
	return &WorldRenderer{
		wormRadius:   cfg.Worm.Radius,
		playerRadius: cfg.Player.Radius,
	}
}

// Draw renders one frame of world content. The camera must already follow
// the player.
func (r *WorldRenderer) Draw(g *game.Game, cam *camera.Camera) {
	r.drawRects(cam, g.Rocks(), palette.Rock)
	r.drawRects(cam, g.Waters(), palette.Water)
	r.drawRects(cam, g.Villages(), palette.Village)

	for _, w := range g.Worms() {
		if !w.Visible || !cam.IsVisible(w.Pos, r.wormRadius) {
			continue
		}
		p := cam.WorldToScreen(w.Pos)
		rl.DrawCircle(int32(p.X), int32(p.Y), float32(cam.Scale(r.wormRadius)), palette.Worm)
	}

	p := cam.WorldToScreen(g.Player())
	radius := float32(cam.Scale(r.playerRadius))
	rl.DrawCircle(int32(p.X)+shadowOffset, int32(p.Y)+shadowOffset, radius, palette.Shadow)
	rl.DrawCircle(int32(p.X), int32(p.Y), radius, palette.Player)
}

func (r *WorldRenderer) drawRects(cam *camera.Camera, rects []geom.Rect, c color.RGBA) {
	for _, rect := range rects {
		if !cam.IsVisible(rect.Center(), rect.BoundRadius()*1.5) {
			continue
		}
		tl := cam.WorldToScreen(geom.V(rect.X, rect.Y))
		rl.DrawRectangleRec(rl.Rectangle{
			X:      float32(tl.X),
			Y:      float32(tl.Y),
			Width:  float32(cam.Scale(rect.W)),
			Height: float32(cam.Scale(rect.H)),
		}, c)
	}
}
