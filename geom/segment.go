package geom

// Segment is a straight line segment between two points. Start and End
// may coincide; a zero-length segment is legal.
type Segment struct {
	Start, End Vector
}

// NewSegment creates a segment from start to end.
func NewSegment(start, end Vector) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the distance between the segment's endpoints.
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Direction returns the vector from Start to End. It is not normalized.
func (s Segment) Direction() Vector {
	return s.End.Sub(s.Start)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Vector {
	return s.PointAt(0.5)
}

// PointAt returns the point at parameter t on the segment's line, with
// t == 0 at Start and t == 1 at End. t is not clamped.
func (s Segment) PointAt(t float64) Vector {
	return s.Start.Lerp(s.End, t)
}

// Translate returns the segment shifted by d.
func (s Segment) Translate(d Vector) Segment {
	return Segment{Start: s.Start.Add(d), End: s.End.Add(d)}
}

// Scale returns the segment with its length scaled by f about Start.
// Start stays fixed; End moves along the segment's direction.
func (s Segment) Scale(f float64) Segment {
	return Segment{Start: s.Start, End: s.Start.Add(s.Direction().Scale(f))}
}

// BoundingBox returns the smallest axis-aligned rectangle containing
// the segment.
func (s Segment) BoundingBox() Rect {
	return boundingBox([]Vector{s.Start, s.End})
}
