// Package geom is a 2D computational-geometry kernel: shape primitives
// (vectors, segments, polylines, polygons, circles, axis-aligned rectangles)
// and the distance, collision and intersection queries built on them.
// It contains no external dependencies to keep the math pure and testable.
// All values are plain value types; every operation returns a new value and
// never mutates its inputs, so they are safe to share across goroutines.
package geom

import (
	"fmt"
	"math"
)

// Vector is a 2D point or free direction, used interchangeably.
type Vector struct {
	X, Y float64
}

// V is shorthand for constructing a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product of v and o. Its sign tells
// which side of v the vector o lies on; it is zero for parallel vectors.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to length 1. The zero vector normalizes to
// itself rather than dividing by zero.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Lerp returns the point a fraction t of the way from v to o.
// t is not clamped; values outside [0, 1] extrapolate.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// DistanceTo returns the Euclidean distance from v to o.
func (v Vector) DistanceTo(o Vector) float64 {
	return Distance(v, o)
}

// Equals reports whether both coordinates are exactly equal. There is no
// tolerance; callers needing approximate comparison should test Distance
// against their own epsilon.
func (v Vector) Equals(o Vector) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
