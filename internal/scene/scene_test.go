package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matszach/GMT/geom"
)

const validDoc = `
name: test
shapes:
  - name: p
    type: point
    at: [1, 2]
  - name: s
    type: segment
    from: [0, 0]
    to: [2, 2]
  - name: chain
    type: polyline
    points: [[0, 0], [1, 0], [1, 1]]
  - name: tri
    type: polygon
    points: [[0, 0], [2, 0], [1, 2]]
  - name: c
    type: circle
    center: [3, 3]
    radius: 1.5
  - name: r
    type: rect
    origin: [0, 0]
    width: 4
    height: 2
checks:
  - { a: p, b: c }
`

func TestParseValid(t *testing.T) {
	sc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if sc.Name != "test" {
		t.Errorf("Name = %q, expected %q", sc.Name, "test")
	}
	if len(sc.Shapes) != 6 {
		t.Fatalf("built %d shapes, expected 6", len(sc.Shapes))
	}
	if len(sc.Checks) != 1 {
		t.Fatalf("kept %d checks, expected 1", len(sc.Checks))
	}

	p, ok := sc.Shape("p")
	if !ok || p.Kind != KindPoint || !p.Point.Equals(geom.V(1, 2)) {
		t.Errorf("shape p = %+v", p)
	}

	s, ok := sc.Shape("s")
	if !ok || s.Kind != KindSegment || !s.Segment.End.Equals(geom.V(2, 2)) {
		t.Errorf("shape s = %+v", s)
	}

	chain, ok := sc.Shape("chain")
	if !ok || chain.Kind != KindPolyline || len(chain.Polyline.Vertices) != 3 {
		t.Errorf("shape chain = %+v", chain)
	}

	tri, ok := sc.Shape("tri")
	if !ok || tri.Kind != KindPolygon || len(tri.Polygon.Segments()) != 3 {
		t.Errorf("shape tri = %+v", tri)
	}

	c, ok := sc.Shape("c")
	if !ok || c.Kind != KindCircle || c.Circle.Radius != 1.5 {
		t.Errorf("shape c = %+v", c)
	}

	r, ok := sc.Shape("r")
	if !ok || r.Kind != KindRect || r.Rect.Width != 4 || r.Rect.Height != 2 {
		t.Errorf("shape r = %+v", r)
	}

	if _, ok := sc.Shape("ghost"); ok {
		t.Error("Shape() returned a shape for an unknown name")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string // substring of the error message
	}{
		{
			name:     "unknown shape type",
			doc:      `shapes: [{name: x, type: blob, at: [0, 0]}]`,
			expected: "unknown shape type",
		},
		{
			name:     "missing shape name",
			doc:      `shapes: [{type: point, at: [0, 0]}]`,
			expected: "missing name",
		},
		{
			name:     "wrong coordinate arity",
			doc:      `shapes: [{name: x, type: point, at: [0, 0, 0]}]`,
			expected: "must be [x, y]",
		},
		{
			name:     "missing segment end",
			doc:      `shapes: [{name: x, type: segment, from: [0, 0]}]`,
			expected: "must be [x, y]",
		},
		{
			name:     "negative radius",
			doc:      `shapes: [{name: x, type: circle, center: [0, 0], radius: -1}]`,
			expected: "negative radius",
		},
		{
			name:     "negative rect extent",
			doc:      `shapes: [{name: x, type: rect, origin: [0, 0], width: -4, height: 2}]`,
			expected: "negative extent",
		},
		{
			name:     "polygon with too few points",
			doc:      `shapes: [{name: x, type: polygon, points: [[0, 0], [1, 1]]}]`,
			expected: "at least 3 points",
		},
		{
			name:     "polyline with too few points",
			doc:      `shapes: [{name: x, type: polyline, points: [[0, 0]]}]`,
			expected: "at least 2 points",
		},
		{
			name: "duplicate shape name",
			doc: `shapes: [{name: x, type: point, at: [0, 0]},
                           {name: x, type: point, at: [1, 1]}]`,
			expected: "duplicate shape name",
		},
		{
			name: "check referencing unknown shape",
			doc: `
shapes: [{name: x, type: point, at: [0, 0]}]
checks: [{a: x, b: ghost}]`,
			expected: "unknown shape",
		},
		{
			name:     "malformed yaml",
			doc:      `shapes: [unclosed`,
			expected: "failed to parse",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatalf("Parse() succeeded, expected error containing %q", tc.expected)
			}
			if !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.expected)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(validDoc), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if sc.Name != "test" || len(sc.Shapes) != 6 {
		t.Errorf("loaded scene = %q with %d shapes", sc.Name, len(sc.Shapes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}

func TestLoadEmptyPathUsesDemo(t *testing.T) {
	sc, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if sc.Name != "demo" {
		t.Errorf("Name = %q, expected %q", sc.Name, "demo")
	}
	if len(sc.Shapes) == 0 || len(sc.Checks) == 0 {
		t.Errorf("demo scene has %d shapes and %d checks", len(sc.Shapes), len(sc.Checks))
	}
}

func TestDemoScene(t *testing.T) {
	sc := Demo()

	results := sc.EvaluateChecks()
	if len(results) != len(sc.Checks) {
		t.Fatalf("EvaluateChecks() returned %d results for %d checks", len(results), len(sc.Checks))
	}
	for _, r := range results {
		if !r.Supported {
			t.Errorf("demo check %s/%s is unsupported", r.A, r.B)
		}
	}

	// The demo's crossing diagonals are its known collision.
	res, err := sc.Evaluate("diag-up", "diag-down")
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	if !res.Collides {
		t.Error("demo diagonals should collide")
	}
}
