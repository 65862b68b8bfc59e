package geom

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Box returns the rectangle as a gonum box.
func (r Rect) Box() r2.Box {
	return r2.NewBox(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Center returns the rectangle's centre point.
func (r Rect) Center() Vec {
	return r.Box().Center()
}

// BoundRadius returns the radius of the circle sensors test against:
// half the larger side.
func (r Rect) BoundRadius() float64 {
	return max(r.W, r.H) / 2
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether r and o share any area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
