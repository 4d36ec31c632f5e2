package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matszach/GMT/internal/scene"
)

var checkCmd = &cobra.Command{
	Use:   "check [scene.yaml]",
	Short: "Run a scene's collision checks",
	Long: `Evaluates the collision checks declared in a scene and prints a
verdict for each pair.

With --all, every supported shape pair in the scene is tested instead of
just the declared checks.

The command exits non-zero when any declared check reports a collision,
so it can gate scripts. Exploratory --all runs always exit zero.

Examples:
  gmt check
  gmt check scenes/level.yaml
  gmt check --all scenes/level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

var flagAll bool

func init() {
	checkCmd.Flags().BoolVar(&flagAll, "all", false, "Test every shape pair, not just the declared checks")
}

func runCheck(cmd *cobra.Command, args []string) {
	sc := loadScene(args)
	styles := outputStyles()

	var results []scene.Result
	if flagAll {
		results = sc.EvaluatePairs()
	} else {
		results = sc.EvaluateChecks()
	}

	if len(results) == 0 {
		fmt.Println("No checks to run.")
		fmt.Println("Declare checks in the scene file, or pass --all to test every pair.")
		return
	}

	fmt.Printf("Scene: %s\n\n", sc.Name)

	// Calculate column widths
	maxA, maxB := len("A"), len("B")
	for _, r := range results {
		if len(r.A) > maxA {
			maxA = len(r.A)
		}
		if len(r.B) > maxB {
			maxB = len(r.B)
		}
	}
	const verdictWidth = len("collision")

	fmt.Printf("  %s  %s  %s  %s\n",
		styles.Header.Render(pad("A", maxA)),
		styles.Header.Render(pad("B", maxB)),
		styles.Header.Render(pad("VERDICT", verdictWidth)),
		styles.Header.Render("DETAIL"))

	collisions := 0
	for _, r := range results {
		var verdict string
		switch {
		case !r.Supported:
			verdict = styles.Skip.Render(pad("skip", verdictWidth))
		case r.Collides:
			verdict = styles.Hit.Render(pad("collision", verdictWidth))
			collisions++
		default:
			verdict = styles.Miss.Render(pad("clear", verdictWidth))
		}

		fmt.Printf("  %s  %s  %s  %s\n",
			pad(r.A, maxA),
			pad(r.B, maxB),
			verdict,
			styles.Detail.Render(r.Detail))
	}

	fmt.Println()
	if collisions == 0 {
		fmt.Printf("All %d checks clear.\n", len(results))
		return
	}

	fmt.Printf("%d of %d checks collided.\n", collisions, len(results))
	if !flagAll {
		os.Exit(1)
	}
}
