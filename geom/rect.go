package geom

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64 // Top-left corner position
	Width, Height float64
}

// NewRect creates a rectangle from a corner position and extents.
// Negative extents are normalized the way image.Rect does it: the
// origin shifts so that Width and Height come out non-negative and the
// rectangle covers the same area.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the total edge length, 2*(width+height).
func (r Rect) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Diagonal returns the corner-to-corner distance, sqrt(w^2+h^2).
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width, r.Height)
}

// Contains returns true if the point is inside this rectangle. The left
// and top edges are inclusive, the right and bottom edges exclusive, so
// adjacent rectangles never both contain a shared border point.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; rectangles that only share an
// edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Vector) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Scale returns the rectangle with both extents scaled by f. The
// origin stays fixed; negative factors normalize like NewRect.
func (r Rect) Scale(f float64) Rect {
	return NewRect(r.X, r.Y, r.Width*f, r.Height*f)
}

// Vertices returns the four corners in clockwise order starting from
// the top-left.
func (r Rect) Vertices() []Vector {
	return []Vector{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// Polygon returns the rectangle as a four-vertex polygon.
func (r Rect) Polygon() Polygon {
	return Polygon{Vertices: r.Vertices()}
}

// boundingBox returns the smallest Rect containing all points, or the
// zero Rect when points is empty.
func boundingBox(points []Vector) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
