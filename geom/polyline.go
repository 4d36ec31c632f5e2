package geom

// Polyline is an ordered open chain of vertices. There is no implicit
// closing edge; see Polygon for the closed variant.
type Polyline struct {
	Vertices []Vector
}

// NewPolyline creates a polyline through the given vertices in order.
// The vertices are copied.
func NewPolyline(vertices ...Vector) Polyline {
	return Polyline{Vertices: append([]Vector(nil), vertices...)}
}

// Segments decomposes the polyline into its consecutive edges. A
// polyline with n vertices yields n-1 segments, none if n < 2.
func (p Polyline) Segments() []Segment {
	if len(p.Vertices) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Vertices)-1)
	for i := 1; i < len(p.Vertices); i++ {
		segs = append(segs, Segment{Start: p.Vertices[i-1], End: p.Vertices[i]})
	}
	return segs
}

// Length returns the sum of the polyline's edge lengths.
func (p Polyline) Length() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}

// Translate returns a copy of the polyline shifted by d. The copy's
// vertex slice is freshly allocated and shares nothing with p.
func (p Polyline) Translate(d Vector) Polyline {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(d)
	}
	return Polyline{Vertices: out}
}

// Scale returns a copy of the polyline with every vertex scaled by f
// about the coordinate origin.
func (p Polyline) Scale(f float64) Polyline {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Scale(f)
	}
	return Polyline{Vertices: out}
}

// BoundingBox returns the smallest axis-aligned rectangle containing
// every vertex. An empty polyline yields the zero Rect.
func (p Polyline) BoundingBox() Rect {
	return boundingBox(p.Vertices)
}
