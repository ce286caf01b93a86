// Package math provides the small vector types used by the mesh builder.
package math

import "math"

// Vec2 is a 2D vector, used for horizontal (XZ plane) positions.
type Vec2 struct {
	X, Y float64
}

// Polar returns the point at the given radius and angle (radians)
// measured from +X toward +Y.
func Polar(radius, angle float64) Vec2 {
	return Vec2{radius * math.Cos(angle), radius * math.Sin(angle)}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
