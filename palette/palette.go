// Package palette holds the game's colours and the procedural sand
// textures both frontends draw behind the world.
package palette

import (
	"image"
	"image/color"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/werm/geom"
)

var (
	TopSand    = color.RGBA{R: 220, G: 185, B: 150, A: 255}
	BottomSand = color.RGBA{R: 255, G: 220, B: 190, A: 255}
	Rock       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Water      = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	Village    = color.RGBA{R: 200, G: 150, B: 100, A: 255}
	Player     = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Worm       = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Text       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Shadow     = color.RGBA{R: 50, G: 50, B: 50, A: 255}

	StaminaEmpty = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	StaminaFull  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// SandAt returns the background colour for row y of a screen h rows tall.
func SandAt(y, h int) color.RGBA {
	if h <= 0 {
		return TopSand
	}
	return geom.LerpColor(TopSand, BottomSand, float64(y)/float64(h))
}

// Gradient renders the vertical top-to-bottom sand gradient.
func Gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := SandAt(y, h)
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// DuneParams shapes the dune shading texture.
type DuneParams struct {
	Scale    float64 // world units per noise unit
	Octaves  int
	MaxAlpha uint8 // darkest ripple
}

// DefaultDunes is tuned for a 2000x1500 world.
var DefaultDunes = DuneParams{Scale: 180, Octaves: 3, MaxAlpha: 70}

// Dunes renders a translucent ripple overlay covering a worldW x worldH area
// at 1/cell resolution. Each pixel is Shadow with alpha from fractal
// simplex noise, so the overlay darkens whatever sand is under it.
func Dunes(worldW, worldH, cell float64, seed int64, p DuneParams) *image.NRGBA {
	w, h := max(int(worldW/cell), 1), max(int(worldH/cell), 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	noise := opensimplex.NewNormalized(seed)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx, wy := float64(x)*cell/p.Scale, float64(y)*cell/p.Scale
			n := fbm(noise, wx, wy, p.Octaves)
			ridge := 1 - 2*absf(n-0.5)
			a := uint8(ridge * ridge * float64(p.MaxAlpha))
			img.SetNRGBA(x, y, color.NRGBA{R: Shadow.R, G: Shadow.G, B: Shadow.B, A: a})
		}
	}
	return img
}

// fbm sums octaves of normalized noise, returning a value in [0, 1).
func fbm(n opensimplex.Noise, x, y float64, octaves int) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	// x is stretched so ripples run sideways like dunes
	for i := 0; i < max(octaves, 1); i++ {
		sum += amp * n.Eval2(x*freq*0.5, y*freq*2)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
