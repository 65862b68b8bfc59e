// Package camera provides a 2D camera system for viewport control.
package camera

import (
	"github.com/pthm-cable/werm/geom"
)

// Camera controls the viewport into the bounded game world.
// The game keeps it centred on the player every frame.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom, ZoomStep float64
}

// New creates a camera at the origin with 1:1 zoom.
func New(viewportW, viewportH, minZoom, maxZoom, zoomStep float64) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
		ZoomStep:  zoomStep,
	}
}

// Follow centres the camera on a world position.
func (c *Camera) Follow(p geom.Vec) {
	c.X, c.Y = p.X, p.Y
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Vec) geom.Vec {
	return geom.Vec{
		X: (p.X-c.X)*c.Zoom + c.ViewportW/2,
		Y: (p.Y-c.Y)*c.Zoom + c.ViewportH/2,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(s geom.Vec) geom.Vec {
	return geom.Vec{
		X: (s.X-c.ViewportW/2)/c.Zoom + c.X,
		Y: (s.Y-c.ViewportH/2)/c.Zoom + c.Y,
	}
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(l float64) float64 {
	return l * c.Zoom
}

// IsVisible returns true if a circle at p with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(p geom.Vec, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx >= -halfW && dx <= halfW && dy >= -halfH && dy <= halfH
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = geom.Clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomSteps adjusts zoom by whole steps; positive zooms in. Wheel input maps
// one notch to one step.
func (c *Camera) ZoomSteps(n float64) {
	c.SetZoom(c.Zoom + n*c.ZoomStep)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Reset returns zoom to 1:1.
func (c *Camera) Reset() {
	c.Zoom = 1.0
}
