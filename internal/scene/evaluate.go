package scene

import (
	"fmt"

	"github.com/matszach/GMT/geom"
)

// Result is the outcome of evaluating one collision check.
type Result struct {
	A, B string // shape names, in the order they were asked about

	// Supported is false when no predicate exists for this pair of
	// shape kinds; Collides is meaningless then.
	Supported bool
	Collides  bool

	// Detail carries pair-specific findings, like the signed gap for
	// circle pairs or the crossing point for segment pairs. It may be
	// empty.
	Detail string
}

// kindRank fixes a canonical order for shape kind pairs so every
// predicate needs to be registered only once.
var kindRank = map[Kind]int{
	KindPoint:    0,
	KindSegment:  1,
	KindPolyline: 2,
	KindPolygon:  3,
	KindCircle:   4,
	KindRect:     5,
}

// predicates maps a canonical kind pair to its collision test. All
// predicates are strict: tangent or boundary contact is not a
// collision. Pairs without an entry are reported as unsupported.
var predicates = map[[2]Kind]func(a, b Shape) (bool, string){
	{KindPoint, KindPoint}: func(a, b Shape) (bool, string) {
		return a.Point.Equals(b.Point), ""
	},
	{KindPoint, KindPolygon}: func(a, b Shape) (bool, string) {
		return b.Polygon.Contains(a.Point), ""
	},
	{KindPoint, KindCircle}: func(a, b Shape) (bool, string) {
		gap := b.Circle.GapToPoint(a.Point)
		return b.Circle.Contains(a.Point), fmt.Sprintf("gap %g", gap)
	},
	{KindPoint, KindRect}: func(a, b Shape) (bool, string) {
		return b.Rect.Contains(a.Point), ""
	},
	{KindSegment, KindSegment}: func(a, b Shape) (bool, string) {
		res := geom.Intersect(a.Segment, b.Segment)
		switch {
		case res.Parallel:
			return false, "parallel"
		case res.Intersects:
			return true, fmt.Sprintf("cross at %v, t=%g u=%g", res.Point, res.T, res.U)
		default:
			return false, fmt.Sprintf("lines cross off-segment at %v", res.Point)
		}
	},
	{KindCircle, KindCircle}: func(a, b Shape) (bool, string) {
		gap := a.Circle.Gap(b.Circle)
		return a.Circle.Overlaps(b.Circle), fmt.Sprintf("gap %g", gap)
	},
	{KindCircle, KindRect}: func(a, b Shape) (bool, string) {
		return b.Rect.OverlapsCircle(a.Circle), ""
	},
	{KindRect, KindRect}: func(a, b Shape) (bool, string) {
		return a.Rect.Intersects(b.Rect), ""
	},
}

// Evaluate runs the collision predicate for the named pair. The test is
// symmetric: swapping the names never changes the verdict.
func (s *Scene) Evaluate(aName, bName string) (Result, error) {
	a, ok := s.Shape(aName)
	if !ok {
		return Result{}, fmt.Errorf("unknown shape %q", aName)
	}
	b, ok := s.Shape(bName)
	if !ok {
		return Result{}, fmt.Errorf("unknown shape %q", bName)
	}

	res := Result{A: aName, B: bName}

	x, y := a, b
	if kindRank[x.Kind] > kindRank[y.Kind] {
		x, y = y, x
	}
	pred, ok := predicates[[2]Kind{x.Kind, y.Kind}]
	if !ok {
		return res, nil
	}

	res.Supported = true
	res.Collides, res.Detail = pred(x, y)
	return res, nil
}

// EvaluateChecks runs every check declared in the scene, in order.
// Check names were validated at build time.
func (s *Scene) EvaluateChecks() []Result {
	results := make([]Result, 0, len(s.Checks))
	for _, c := range s.Checks {
		res, err := s.Evaluate(c.A, c.B)
		if err != nil {
			res = Result{A: c.A, B: c.B}
		}
		results = append(results, res)
	}
	return results
}

// EvaluatePairs runs every distinct pair of shapes in the scene, in
// declaration order. Unsupported pairs are included so callers can see
// what was skipped.
func (s *Scene) EvaluatePairs() []Result {
	var results []Result
	for i := 0; i < len(s.Shapes); i++ {
		for j := i + 1; j < len(s.Shapes); j++ {
			res, err := s.Evaluate(s.Shapes[i].Name, s.Shapes[j].Name)
			if err != nil {
				continue
			}
			results = append(results, res)
		}
	}
	return results
}
