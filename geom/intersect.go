package geom

// Intersection is the result of intersecting the lines through two
// segments.
type Intersection struct {
	// Parallel is true when the segments' directions have a zero
	// determinant, collinear segments included. No other field is
	// meaningful when it is set.
	Parallel bool

	// Point is where the two infinite lines cross. It is populated
	// whenever Parallel is false, even if the crossing lies outside one
	// or both segments; check Intersects before trusting it as an
	// on-segment location.
	Point Vector

	// T and U are the parametric positions of Point along the first and
	// second segment: 0 at Start, 1 at End.
	T, U float64

	// Intersects is true when the segments themselves cross, that is
	// both T and U lie within the closed interval [0, 1]. Segments
	// sharing only an endpoint count as intersecting.
	Intersects bool
}

// Intersect computes the intersection of the lines through segments a
// and b by solving the parametric system with Cramer's rule. The
// determinant is compared against exactly zero: zero-length segments
// fall into the parallel case naturally, and collinear segments report
// Parallel without checking whether they overlap along the shared line.
func Intersect(a, b Segment) Intersection {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Intersection{Parallel: true}
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / den

	return Intersection{
		Point:      a.Start.Lerp(a.End, t),
		T:          t,
		U:          u,
		Intersects: t >= 0 && t <= 1 && u >= 0 && u <= 1,
	}
}
