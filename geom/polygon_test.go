package geom

import "testing"

func TestPolygonSegments(t *testing.T) {
	square := NewPolygon(V(0, 0), V(2, 0), V(2, 2), V(0, 2))

	segs := square.Segments()
	if len(segs) != 4 {
		t.Fatalf("Segments() yielded %d segments, expected 4", len(segs))
	}

	// The last segment is the implicit closing edge back to the first vertex.
	closing := segs[3]
	if !closing.Start.Equals(V(0, 2)) || !closing.End.Equals(V(0, 0)) {
		t.Errorf("closing edge = %v, expected (0, 2)-(0, 0)", closing)
	}
}

func TestPolygonSegmentsDegenerate(t *testing.T) {
	if segs := NewPolygon().Segments(); segs != nil {
		t.Errorf("Segments() of empty polygon = %v, expected nil", segs)
	}

	// A single vertex closes onto itself with one zero-length segment.
	segs := NewPolygon(V(1, 1)).Segments()
	if len(segs) != 1 {
		t.Fatalf("Segments() of single vertex yielded %d segments, expected 1", len(segs))
	}
	if segs[0].Length() != 0 {
		t.Errorf("single-vertex segment length = %g, expected 0", segs[0].Length())
	}
}

func TestPolygonPerimeter(t *testing.T) {
	// 2x2 square: four sides of length 2, closing edge included.
	square := NewPolygon(V(0, 0), V(2, 0), V(2, 2), V(0, 2))
	if p := square.Perimeter(); p != 8 {
		t.Errorf("Perimeter() = %g, expected 8", p)
	}

	if p := NewPolygon().Perimeter(); p != 0 {
		t.Errorf("Perimeter() of empty polygon = %g, expected 0", p)
	}
}

func TestPolygonCentroid(t *testing.T) {
	square := NewPolygon(V(0, 0), V(2, 0), V(2, 2), V(0, 2))
	if c := square.Centroid(); !c.Equals(V(1, 1)) {
		t.Errorf("Centroid() = %v, expected (1, 1)", c)
	}

	if c := NewPolygon().Centroid(); !c.Equals(V(0, 0)) {
		t.Errorf("Centroid() of empty polygon = %v, expected (0, 0)", c)
	}
}

func TestPolygonContains(t *testing.T) {
	square := NewPolygon(V(0, 0), V(2, 0), V(2, 2), V(0, 2))
	// L-shaped concave polygon covering all but the top-right 2x2 quadrant.
	lshape := NewPolygon(V(0, 0), V(4, 0), V(4, 2), V(2, 2), V(2, 4), V(0, 4))

	tests := []struct {
		name     string
		p        Polygon
		pt       Vector
		expected bool
	}{
		{"inside square", square, V(1, 1), true},
		{"outside square", square, V(3, 1), false},
		{"left of square", square, V(-1, 1), false},
		{"inside L lower arm", lshape, V(3, 1), true},
		{"inside L upper arm", lshape, V(1, 3), true},
		{"in L notch", lshape, V(3, 3), false},
		{"outside L", lshape, V(5, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Contains(tc.pt); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.pt, got, tc.expected)
			}
		})
	}

	// Fewer than 3 vertices cannot enclose anything.
	if NewPolygon(V(0, 0), V(2, 2)).Contains(V(1, 1)) {
		t.Error("two-vertex polygon should contain nothing")
	}
}

func TestPolygonTranslate(t *testing.T) {
	p := NewPolygon(V(0, 0), V(1, 0), V(0, 1))
	moved := p.Translate(V(2, 3))

	if !moved.Vertices[0].Equals(V(2, 3)) || !moved.Vertices[2].Equals(V(2, 4)) {
		t.Errorf("Translate() = %v", moved.Vertices)
	}

	// The copy must not share backing storage with the original.
	moved.Vertices[0] = V(99, 99)
	if !p.Vertices[0].Equals(V(0, 0)) {
		t.Error("Translate() aliased the original vertex slice")
	}
}

func TestPolygonScale(t *testing.T) {
	p := NewPolygon(V(1, 0), V(0, 1), V(1, 1)).Scale(3)
	if !p.Vertices[0].Equals(V(3, 0)) || !p.Vertices[2].Equals(V(3, 3)) {
		t.Errorf("Scale(3) = %v", p.Vertices)
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewPolygon(V(-1, 2), V(3, 0), V(1, 4))
	expected := Rect{X: -1, Y: 0, Width: 4, Height: 4}
	if b := p.BoundingBox(); b != expected {
		t.Errorf("BoundingBox() = %+v, expected %+v", b, expected)
	}
}
