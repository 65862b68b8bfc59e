// Package geom provides the small amount of 2D math the game needs,
// built on gonum's r2 vectors.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector with value semantics.
type Vec = r2.Vec

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Length returns the magnitude of v.
func Length(v Vec) float64 {
	return r2.Norm(v)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
// r2.Unit yields NaN for zero input, which must never reach positions.
func Normalize(v Vec) Vec {
	if v.X == 0 && v.Y == 0 {
		return Vec{}
	}
	return r2.Unit(v)
}

// Rotate rotates v counter-clockwise by deg degrees about the origin.
func Rotate(v Vec, deg float64) Vec {
	return r2.Rotate(v, deg*math.Pi/180, Vec{})
}

// ClampLength rescales v to exactly max when it is longer, preserving direction.
func ClampLength(v Vec, max float64) Vec {
	l := r2.Norm(v)
	if l > max && l > 0 {
		return r2.Scale(max/l, v)
	}
	return v
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampToBox clamps p into b shrunk by inset on every side.
func ClampToBox(p Vec, b r2.Box, inset float64) Vec {
	return Vec{
		X: Clamp(p.X, b.Min.X+inset, b.Max.X-inset),
		Y: Clamp(p.Y, b.Min.Y+inset, b.Max.Y-inset),
	}
}

// CirclesOverlap reports whether two circles intersect. Touching circles
// (distance exactly ra+rb) do not overlap.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// LerpColor linearly interpolates between two colours; channels truncate
// toward zero. Alpha is taken from a.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: a.A}
}
