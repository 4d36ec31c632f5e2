package geom

// Polygon is an ordered closed chain of vertices. The closing edge from
// the last vertex back to the first is implicit: it is never stored but
// always included by Segments and Perimeter.
type Polygon struct {
	Vertices []Vector
}

// NewPolygon creates a polygon through the given vertices in order.
// The vertices are copied.
func NewPolygon(vertices ...Vector) Polygon {
	return Polygon{Vertices: append([]Vector(nil), vertices...)}
}

// Segments decomposes the polygon into its edges: the open chain plus
// one closing segment from the last vertex back to the first. A polygon
// with n >= 1 vertices yields n segments; a single vertex yields one
// zero-length segment.
func (p Polygon) Segments() []Segment {
	if len(p.Vertices) == 0 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Vertices))
	for i := 1; i < len(p.Vertices); i++ {
		segs = append(segs, Segment{Start: p.Vertices[i-1], End: p.Vertices[i]})
	}
	last := p.Vertices[len(p.Vertices)-1]
	return append(segs, Segment{Start: last, End: p.Vertices[0]})
}

// Perimeter returns the sum of the polygon's edge lengths, closing edge
// included.
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}

// Centroid returns the average of the polygon's vertices. An empty
// polygon yields the zero Vector.
func (p Polygon) Centroid() Vector {
	if len(p.Vertices) == 0 {
		return Vector{}
	}
	var sum Vector
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.Vertices)))
}

// Contains tests whether the point is inside the polygon using ray
// casting. Polygons with fewer than 3 vertices contain nothing. Points
// exactly on an edge may land on either side depending on rounding.
func (p Polygon) Contains(pt Vector) bool {
	if len(p.Vertices) < 3 {
		return false
	}

	inside := false
	n := len(p.Vertices)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.Vertices[i], p.Vertices[j]

		// Check if a ray from pt going right crosses edge vi-vj
		if ((vi.Y > pt.Y) != (vj.Y > pt.Y)) &&
			(pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X) {
			inside = !inside
		}
	}

	return inside
}

// Translate returns a copy of the polygon shifted by d. The copy's
// vertex slice is freshly allocated and shares nothing with p.
func (p Polygon) Translate(d Vector) Polygon {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(d)
	}
	return Polygon{Vertices: out}
}

// Scale returns a copy of the polygon with every vertex scaled by f
// about the coordinate origin.
func (p Polygon) Scale(f float64) Polygon {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Scale(f)
	}
	return Polygon{Vertices: out}
}

// BoundingBox returns the smallest axis-aligned rectangle containing
// every vertex. An empty polygon yields the zero Rect.
func (p Polygon) BoundingBox() Rect {
	return boundingBox(p.Vertices)
}
