package geom

import "math"

// Polar is a point in polar coordinates: a radius and an angle in
// radians measured counter-clockwise from the positive x axis.
type Polar struct {
	R, Phi float64
}

// CartesianToPolar converts a cartesian point to polar coordinates with
// Phi in [0, 2*pi). The x == 0 column cannot go through the arctangent,
// so it maps to pi/2 for positive y and 3*pi/2 otherwise; the origin
// lands on 3*pi/2 by that convention.
func CartesianToPolar(x, y float64) Polar {
	r := math.Hypot(x, y)
	var phi float64
	switch {
	case x == 0 && y > 0:
		phi = math.Pi / 2
	case x == 0:
		phi = 3 * math.Pi / 2
	default:
		phi = math.Atan(y / x)
		if x < 0 {
			phi += math.Pi
		} else if y < 0 {
			phi += 2 * math.Pi
		}
	}
	return Polar{R: r, Phi: phi}
}

// PolarToCartesian converts polar coordinates to a cartesian point.
func PolarToCartesian(r, phi float64) Vector {
	return Vector{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
}

// Vector returns the polar point as a cartesian Vector.
func (p Polar) Vector() Vector {
	return PolarToCartesian(p.R, p.Phi)
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
