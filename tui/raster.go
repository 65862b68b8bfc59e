package tui

import (
	"image/color"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/palette"
)

// outside is drawn beyond the world edge.
var outside = color.RGBA{A: 255}

// Raster is a small framebuffer of square pixels. Each terminal cell shows
// two of its rows with a half-block glyph.
type Raster struct {
	W, H int
	Pix  []color.RGBA
}

// NewRaster allocates a w x h framebuffer.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) color.RGBA {
	return r.Pix[y*r.W+x]
}

func (r *Raster) set(x, y int, c color.RGBA) {
	if x >= 0 && y >= 0 && x < r.W && y < r.H {
		r.Pix[y*r.W+x] = c
	}
}

// Paint draws the world as seen by cam, which must match the raster size.
func (r *Raster) Paint(g *game.Game, cam *camera.Camera) {
	cfg := g.Config()
	bounds := cfg.Derived.WorldBounds

	rocks, waters, villages := g.Rocks(), g.Waters(), g.Villages()
	for y := 0; y < r.H; y++ {
		sand := palette.SandAt(y, r.H)
		for x := 0; x < r.W; x++ {
			p := cam.ScreenToWorld(geom.V(float64(x)+0.5, float64(y)+0.5))
			c := sand
			switch {
			case p.X < bounds.Min.X || p.Y < bounds.Min.Y || p.X >= bounds.Max.X || p.Y >= bounds.Max.Y:
				c = outside
			case containsAny(villages, p):
				c = palette.Village
			case containsAny(waters, p):
				c = palette.Water
			case containsAny(rocks, p):
				c = palette.Rock
			}
			r.Pix[y*r.W+x] = c
		}
	}

	for _, w := range g.Worms() {
		if w.Visible {
			r.disc(cam, w.Pos, cfg.Worm.Radius, palette.Worm)
		}
	}
	r.disc(cam, g.Player(), cfg.Player.Radius, palette.Player)
}

// disc fills a circle, always marking at least its centre pixel.
func (r *Raster) disc(cam *camera.Camera, center geom.Vec, radius float64, c color.RGBA) {
	s := cam.WorldToScreen(center)
	rad := cam.Scale(radius)
	r.set(int(s.X), int(s.Y), c)
	for y := int(s.Y - rad); y <= int(s.Y+rad); y++ {
		for x := int(s.X - rad); x <= int(s.X+rad); x++ {
			if geom.Distance(geom.V(float64(x)+0.5, float64(y)+0.5), s) <= rad {
				r.set(x, y, c)
			}
		}
	}
}

func containsAny(rects []geom.Rect, p geom.Vec) bool {
	for _, rect := range rects {
		if rect.ContainsPoint(p) {
			return true
		}
	}
	return false
}
