package geom

import "math"

// Distance returns the Euclidean distance between two points. It is
// symmetric and never negative.
func Distance(p, q Vector) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// GapToPoint returns the signed distance from p to the circle's
// boundary. Negative means p is strictly inside the circle; zero means
// p lies exactly on the boundary.
func (c Circle) GapToPoint(p Vector) float64 {
	return Distance(p, c.Center) - c.Radius
}

// Gap returns the signed distance between the boundaries of two
// circles. Negative means the circles overlap, including one containing
// the other. This is a gap metric, not a true metric.
func (c Circle) Gap(other Circle) float64 {
	return Distance(c.Center, other.Center) - c.Radius - other.Radius
}
