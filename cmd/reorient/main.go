package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/mesh"
	"github.com/Gabrielgerez/mesh-reorienter/pkg/orient"
	"github.com/Gabrielgerez/mesh-reorienter/version"
	"github.com/spf13/cobra"
)

var workers int

var rootCmd = &cobra.Command{
	Use:   "reorient <input> <output> [precision]",
	Short: "Rewind mesh triangles so every face normal points outward",
	Long: `reorient reads a triangular surface mesh in a plain point/connectivity
text format, flips every triangle whose winding faces the interior of the
mesh, and writes the corrected mesh in the same format.

The format is line-oriented:

  <number of points>
  <x> <y> <z>          one line per point
  <number of triangles>
  <i0> <i1> <i2>       one line per triangle, indexing the point list

The optional precision argument is the number of decimal digits used for
the output coordinates (default 1).

The test for "outward" compares each face normal against the centroid of
all points, which is assumed to lie inside the closed surface.`,
	Version: version.GetFullVersion(),
	Args:    cobra.RangeArgs(2, 3),
	Run:     runReorient,
}

func init() {
	rootCmd.Flags().IntVarP(&workers, "workers", "j", 1, "Number of goroutines for the orientation pass")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReorient(cmd *cobra.Command, args []string) {
	inputPath := args[0]
	outputPath := args[1]

	precision := 1
	if len(args) == 3 {
		p, err := strconv.Atoi(args[2])
		if err != nil || p < 0 {
			fmt.Fprintf(os.Stderr, "Error: precision must be a non-negative integer, got %q\n", args[2])
			os.Exit(1)
		}
		precision = p
	}

	m, err := mesh.Parse(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	if err := orient.CorrectParallel(m, workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error orienting mesh: %v\n", err)
		os.Exit(1)
	}

	if err := mesh.WriteFile(outputPath, m, precision); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mesh: %v\n", err)
		os.Exit(1)
	}
}
