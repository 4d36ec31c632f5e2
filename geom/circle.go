package geom

import "math"

// Circle is a circle described by its center point and radius. A radius
// of 0 degenerates the circle to a point.
type Circle struct {
	Center Vector
	Radius float64
}

// NewCircle creates a circle with the given center and radius. A
// negative radius is normalized to 0.
func NewCircle(center Vector, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{Center: center, Radius: radius}
}

// Area returns the circle's area, pi*r^2.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the circle's circumference, 2*pi*r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Translate returns the circle shifted by d.
func (c Circle) Translate(d Vector) Circle {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

// Scale returns the circle with its radius scaled by f. The center
// stays fixed; a negative result is normalized to 0 like NewCircle.
func (c Circle) Scale(f float64) Circle {
	return NewCircle(c.Center, c.Radius*f)
}

// BoundingBox returns the smallest axis-aligned rectangle containing
// the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}
