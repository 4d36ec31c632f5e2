package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matszach/GMT/geom"
)

var probeCmd = &cobra.Command{
	Use:   "probe <x1,y1> <x2,y2> <x3,y3> <x4,y4>",
	Short: "Intersect two segments given on the command line",
	Long: `Builds segment A from the first two points and segment B from the
last two, then reports where their carrier lines cross and whether the
crossing lies on both segments.

Examples:
  gmt probe 0,0 2,2 0,2 2,0
  gmt probe 0,0 4,0 1,1 3,1`,
	Args: cobra.ExactArgs(4),
	Run:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) {
	styles := outputStyles()

	points := make([]geom.Vector, 4)
	for i, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			logger.Error("bad point", "arg", arg, "error", err)
			os.Exit(1)
		}
		points[i] = p
	}

	a := geom.NewSegment(points[0], points[1])
	b := geom.NewSegment(points[2], points[3])

	fmt.Printf("Segment A: %v to %v (length %.4g)\n", a.Start, a.End, a.Length())
	fmt.Printf("Segment B: %v to %v (length %.4g)\n\n", b.Start, b.End, b.Length())

	res := geom.Intersect(a, b)
	if res.Parallel {
		fmt.Println(styles.Skip.Render("The segments are parallel; no crossing point exists."))
		return
	}

	fmt.Printf("Lines cross at %v (t=%g, u=%g)\n", res.Point, res.T, res.U)
	if res.Intersects {
		fmt.Println(styles.Hit.Render("The segments intersect."))
	} else {
		fmt.Println(styles.Miss.Render("The crossing lies outside at least one segment."))
	}
}

// parsePoint reads a "x,y" pair into a vector.
func parsePoint(s string) (geom.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Vector{}, fmt.Errorf("expected x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("bad y: %w", err)
	}
	return geom.V(x, y), nil
}
