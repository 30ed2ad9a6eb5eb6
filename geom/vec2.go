// Package geom holds the small amount of vector math the scene needs.
package geom

import "math"

// Vec2 is a 2D vector in world units. +Y points up.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

// NewVec2 creates a vector from its components
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no finite non-zero length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// ApproxEqual reports whether both components differ by at most eps
func (v Vec2) ApproxEqual(other Vec2, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}
