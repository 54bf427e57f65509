package main

import (
	"fmt"
	"os"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/analysis"
	"github.com/Gabrielgerez/mesh-reorienter/pkg/mesh"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a mesh file",
	Long:  "Show vertex and triangle counts, bounding box, surface area, and how many triangles currently wind outward versus inward. The file is not modified.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := mesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result, err := analysis.AnalyzeMesh(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Points: %d\n", result.VertexCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Printf("  Centroid: %s\n\n", analysis.FormatVector(result.Centroid))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Winding:")
	fmt.Printf("  Outward: %d\n", result.OutwardCount)
	fmt.Printf("  Inward or degenerate: %d\n", result.InwardCount)
}
