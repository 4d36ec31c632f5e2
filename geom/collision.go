package geom

// Contains reports whether p lies strictly inside the circle. A point
// exactly on the boundary is not contained; see GapToPoint.
func (c Circle) Contains(p Vector) bool {
	return c.GapToPoint(p) < 0
}

// Overlaps reports whether two circles strictly overlap. Externally
// tangent circles do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return c.Gap(other) < 0
}

// Crosses reports whether two segments cross, shared endpoints
// included. It is shorthand for Intersect(s, other).Intersects.
func (s Segment) Crosses(other Segment) bool {
	return Intersect(s, other).Intersects
}

// OverlapsCircle reports whether the rectangle and the circle strictly
// overlap. The circle's center is clamped to the rectangle to find the
// closest point; overlap means that point is strictly closer than the
// radius, so tangent contact does not count.
func (r Rect) OverlapsCircle(c Circle) bool {
	dx := c.Center.X - Clamp(c.Center.X, r.X, r.Right())
	dy := c.Center.Y - Clamp(c.Center.Y, r.Y, r.Bottom())
	return dx*dx+dy*dy < c.Radius*c.Radius
}
