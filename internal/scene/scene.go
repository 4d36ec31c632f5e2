// Package scene provides YAML-based shape scene definitions for the
// geometry kernel. A scene names a set of shapes and the collision
// checks to run between them; loading validates the definition strictly
// and builds geom values from it.
package scene

import (
	"fmt"

	"github.com/matszach/GMT/geom"
)

// Kind identifies which geometry a Shape holds.
type Kind string

// Shape kinds accepted in scene files.
const (
	KindPoint    Kind = "point"
	KindSegment  Kind = "segment"
	KindPolyline Kind = "polyline"
	KindPolygon  Kind = "polygon"
	KindCircle   Kind = "circle"
	KindRect     Kind = "rect"
)

// ShapeDef is the YAML form of a single shape. Type selects which of
// the remaining fields apply; coordinates are [x, y] pairs.
type ShapeDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	At     []float64   `yaml:"at,omitempty"`     // point position
	From   []float64   `yaml:"from,omitempty"`   // segment start
	To     []float64   `yaml:"to,omitempty"`     // segment end
	Points [][]float64 `yaml:"points,omitempty"` // polyline/polygon vertices
	Center []float64   `yaml:"center,omitempty"` // circle center
	Radius float64     `yaml:"radius,omitempty"` // circle radius
	Origin []float64   `yaml:"origin,omitempty"` // rect top-left corner
	Width  float64     `yaml:"width,omitempty"`  // rect width
	Height float64     `yaml:"height,omitempty"` // rect height
}

// CheckDef names a pair of shapes to test against each other.
type CheckDef struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// sceneDef is the raw YAML document.
type sceneDef struct {
	Name   string     `yaml:"name"`
	Shapes []ShapeDef `yaml:"shapes"`
	Checks []CheckDef `yaml:"checks"`
}

// Shape is a named, built geometry value. Exactly one of the typed
// fields is populated, selected by Kind.
type Shape struct {
	Name string
	Kind Kind

	Point    geom.Vector
	Segment  geom.Segment
	Polyline geom.Polyline
	Polygon  geom.Polygon
	Circle   geom.Circle
	Rect     geom.Rect
}

// Scene is a collection of named shapes with declared collision checks.
type Scene struct {
	Name   string
	Shapes []Shape
	Checks []CheckDef

	index map[string]int
}

// Shape returns the named shape.
func (s *Scene) Shape(name string) (Shape, bool) {
	i, ok := s.index[name]
	if !ok {
		return Shape{}, false
	}
	return s.Shapes[i], true
}

// build validates a raw definition and constructs the scene. Validation
// is strict on purpose: scene files are authored by hand, and silently
// normalizing a typo would hide it. The kernel's own constructors are
// forgiving; this boundary is not.
func build(def sceneDef) (*Scene, error) {
	sc := &Scene{
		Name:   def.Name,
		Checks: def.Checks,
		index:  make(map[string]int, len(def.Shapes)),
	}

	for i, sd := range def.Shapes {
		shape, err := buildShape(sd)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%q): %w", i, sd.Name, err)
		}
		if _, dup := sc.index[shape.Name]; dup {
			return nil, fmt.Errorf("duplicate shape name %q", shape.Name)
		}
		sc.index[shape.Name] = len(sc.Shapes)
		sc.Shapes = append(sc.Shapes, shape)
	}

	for i, c := range def.Checks {
		if _, ok := sc.index[c.A]; !ok {
			return nil, fmt.Errorf("check %d references unknown shape %q", i, c.A)
		}
		if _, ok := sc.index[c.B]; !ok {
			return nil, fmt.Errorf("check %d references unknown shape %q", i, c.B)
		}
	}

	return sc, nil
}

func buildShape(def ShapeDef) (Shape, error) {
	if def.Name == "" {
		return Shape{}, fmt.Errorf("missing name")
	}

	shape := Shape{Name: def.Name, Kind: Kind(def.Type)}

	switch shape.Kind {
	case KindPoint:
		p, err := coord(def.At, "at")
		if err != nil {
			return Shape{}, err
		}
		shape.Point = p

	case KindSegment:
		from, err := coord(def.From, "from")
		if err != nil {
			return Shape{}, err
		}
		to, err := coord(def.To, "to")
		if err != nil {
			return Shape{}, err
		}
		shape.Segment = geom.NewSegment(from, to)

	case KindPolyline:
		vs, err := coords(def.Points)
		if err != nil {
			return Shape{}, err
		}
		if len(vs) < 2 {
			return Shape{}, fmt.Errorf("polyline needs at least 2 points, got %d", len(vs))
		}
		shape.Polyline = geom.NewPolyline(vs...)

	case KindPolygon:
		vs, err := coords(def.Points)
		if err != nil {
			return Shape{}, err
		}
		if len(vs) < 3 {
			return Shape{}, fmt.Errorf("polygon needs at least 3 points, got %d", len(vs))
		}
		shape.Polygon = geom.NewPolygon(vs...)

	case KindCircle:
		center, err := coord(def.Center, "center")
		if err != nil {
			return Shape{}, err
		}
		if def.Radius < 0 {
			return Shape{}, fmt.Errorf("negative radius %g", def.Radius)
		}
		shape.Circle = geom.NewCircle(center, def.Radius)

	case KindRect:
		origin, err := coord(def.Origin, "origin")
		if err != nil {
			return Shape{}, err
		}
		if def.Width < 0 || def.Height < 0 {
			return Shape{}, fmt.Errorf("negative extent %g x %g", def.Width, def.Height)
		}
		shape.Rect = geom.NewRect(origin.X, origin.Y, def.Width, def.Height)

	default:
		return Shape{}, fmt.Errorf("unknown shape type %q", def.Type)
	}

	return shape, nil
}

// coord converts a two-element YAML list into a point.
func coord(v []float64, field string) (geom.Vector, error) {
	if len(v) != 2 {
		return geom.Vector{}, fmt.Errorf("%s must be [x, y], got %d values", field, len(v))
	}
	return geom.V(v[0], v[1]), nil
}

func coords(vs [][]float64) ([]geom.Vector, error) {
	out := make([]geom.Vector, len(vs))
	for i, v := range vs {
		p, err := coord(v, fmt.Sprintf("points[%d]", i))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
