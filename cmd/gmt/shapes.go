package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matszach/GMT/geom"
	"github.com/matszach/GMT/internal/scene"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [scene.yaml]",
	Short: "List the shapes in a scene",
	Long: `Shows every shape in a scene together with its derived metrics:
lengths, areas, perimeters, centers and bounding boxes.

Without an argument the embedded demo scene is shown.

Examples:
  gmt shapes
  gmt shapes scenes/level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	sc := loadScene(args)
	styles := outputStyles()

	if len(sc.Shapes) == 0 {
		fmt.Println("The scene contains no shapes.")
		return
	}

	fmt.Printf("Scene: %s\n\n", sc.Name)

	// Calculate column widths
	maxName, maxKind := len("NAME"), len("TYPE")
	for _, sh := range sc.Shapes {
		if len(sh.Name) > maxName {
			maxName = len(sh.Name)
		}
		if len(sh.Kind) > maxKind {
			maxKind = len(sh.Kind)
		}
	}

	fmt.Printf("  %s  %s  %s\n",
		styles.Header.Render(pad("NAME", maxName)),
		styles.Header.Render(pad("TYPE", maxKind)),
		styles.Header.Render("METRICS"))

	for _, sh := range sc.Shapes {
		fmt.Printf("  %s  %s  %s\n",
			styles.ShapeName.Render(pad(sh.Name, maxName)),
			pad(string(sh.Kind), maxKind),
			describe(sh))
	}

	fmt.Println()
	fmt.Println("Run 'gmt check' to evaluate the scene's collision checks.")
}

// describe formats the derived metrics for one shape.
func describe(sh scene.Shape) string {
	switch sh.Kind {
	case scene.KindPoint:
		return fmt.Sprintf("at %v", sh.Point)
	case scene.KindSegment:
		s := sh.Segment
		return fmt.Sprintf("%v to %v, length %.4g, midpoint %v",
			s.Start, s.End, s.Length(), s.Midpoint())
	case scene.KindPolyline:
		p := sh.Polyline
		return fmt.Sprintf("%d vertices, length %.4g, bbox %s",
			len(p.Vertices), p.Length(), bbox(p.BoundingBox()))
	case scene.KindPolygon:
		p := sh.Polygon
		return fmt.Sprintf("%d vertices, perimeter %.4g, centroid %v",
			len(p.Vertices), p.Perimeter(), p.Centroid())
	case scene.KindCircle:
		c := sh.Circle
		return fmt.Sprintf("center %v, radius %g, area %.4g, circumference %.4g",
			c.Center, c.Radius, c.Area(), c.Circumference())
	case scene.KindRect:
		r := sh.Rect
		return fmt.Sprintf("%s, area %.4g, diagonal %.4g",
			bbox(r), r.Area(), r.Diagonal())
	default:
		return ""
	}
}

// bbox formats a rectangle compactly as extents at a corner.
func bbox(r geom.Rect) string {
	return fmt.Sprintf("%g x %g at (%g, %g)", r.Width, r.Height, r.X, r.Y)
}
