package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/werm/camera"
	"github.com/pthm-cable/werm/palette"
)

// duneCell is world units per dune texel; the texture is stretched
// bilinearly, so ripples stay soft at any zoom.
const duneCell = 8

// BackgroundRenderer draws the screen-space sand gradient and a world-space
// dune overlay that scrolls and zooms with the camera.
type BackgroundRenderer struct {
	gradient rl.Texture2D
	dunes    rl.Texture2D

	screenW, screenH int32
	worldW, worldH   float64
	seed             int64
	hasDunes         bool
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, worldW, worldH float64, seed int64) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: screenW,
		screenH: screenH,
		worldW:  worldW,
		worldH:  worldH,
		seed:    seed,
	}
}

// Init uploads textures (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	img := rl.NewImageFromImage(palette.Gradient(int(b.screenW), int(b.screenH)))
	b.gradient = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	b.loadDunes()
	b.initialized = true
}

func (b *BackgroundRenderer) loadDunes() {
	if b.hasDunes {
		rl.UnloadTexture(b.dunes)
	}
	img := rl.NewImageFromImage(palette.Dunes(b.worldW, b.worldH, duneCell, b.seed, palette.DefaultDunes))
	b.dunes = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(b.dunes, rl.FilterBilinear)
	b.hasDunes = true
}

// Reseed regenerates the dune overlay, so each session gets new sand.
func (b *BackgroundRenderer) Reseed(seed int64) {
	b.seed = seed
	if b.initialized {
		b.loadDunes()
	}
}

// Draw renders the gradient, then the dunes under the camera.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	if !b.initialized {
		b.Init()
	}

	rl.DrawTexture(b.gradient, 0, 0, rl.White)

	origin := cam.WorldToScreen(worldOrigin)
	src := rl.Rectangle{Width: float32(b.dunes.Width), Height: float32(b.dunes.Height)}
	dst := rl.Rectangle{
		X:      float32(origin.X),
		Y:      float32(origin.Y),
		Width:  float32(cam.Scale(b.worldW)),
		Height: float32(cam.Scale(b.worldH)),
	}
	rl.DrawTexturePro(b.dunes, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if !b.initialized {
		return
	}
	rl.UnloadTexture(b.gradient)
	if b.hasDunes {
		rl.UnloadTexture(b.dunes)
		b.hasDunes = false
	}
	b.initialized = false
}
