package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteFile writes the mesh to filename in the same text format Parse reads,
// with vertex coordinates formatted to the given number of decimal digits.
func WriteFile(filename string, m *Mesh, precision int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return Encode(file, m, precision)
}

// Encode writes the mesh to a writer. Coordinates use fixed decimal
// notation, never exponents; indices are written as plain integers.
func Encode(w io.Writer, m *Mesh, precision int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(m.Vertices))
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%.*f %.*f %.*f\n", precision, v.X, precision, v.Y, precision, v.Z)
	}

	fmt.Fprintf(bw, "%d\n", len(m.Triangles))
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "%d %d %d\n", t[0], t[1], t[2])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write mesh: %w", err)
	}
	return nil
}
