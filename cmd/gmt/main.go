// gmt is a command-line workbench for the GMT 2D geometry kernel.
//
// Usage:
//
//	gmt shapes [scene.yaml]                    - List the shapes in a scene
//	gmt check [scene.yaml]                     - Run a scene's collision checks
//	gmt probe <x1,y1> <x2,y2> <x3,y3> <x4,y4>  - Intersect two segments
//
// Global flags:
//
//	--scene <path>  - Default scene file (falls back to the embedded demo)
//	--verbose       - Enable debug logging
//	--no-color      - Disable colored output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matszach/GMT/internal/scene"
)

var (
	// Global flags
	flagScene   string
	flagVerbose bool
	flagNoColor bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gmt",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gmt",
	Short: "GMT - a 2D geometry and collision workbench",
	Long: `GMT inspects 2D shape scenes and answers geometry questions about
them: which shapes collide, where segments cross, and what the derived
metrics of each shape are.

Scenes are YAML files naming points, segments, polylines, polygons,
circles and rectangles, plus the collision checks to run between them.
Without a scene argument the embedded demo scene is used.

Available commands:
  shapes   - List the shapes in a scene with their derived metrics
  check    - Run the collision checks declared in a scene
  probe    - Intersect two ad-hoc segments

Examples:
  gmt shapes
  gmt check scenes/level.yaml
  gmt check --all
  gmt probe 0,0 2,2 0,2 2,0`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", "", "Scene file to use when no argument is given")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(probeCmd)
}

// loadScene resolves the scene for a command: the positional argument
// wins, then --scene, then the embedded demo. Load failures are fatal.
func loadScene(args []string) *scene.Scene {
	path := flagScene
	if len(args) > 0 {
		path = args[0]
	}

	sc, err := scene.Load(path)
	if err != nil {
		logger.Error("scene load failed", "error", err)
		os.Exit(1)
	}

	logger.Debug("scene loaded",
		"name", sc.Name,
		"shapes", len(sc.Shapes),
		"checks", len(sc.Checks))
	return sc
}

// pad left-justifies s in a field of width w. Styling is applied after
// padding so ANSI escape codes never skew the column widths.
func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}
