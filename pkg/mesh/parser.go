package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/geometry"
)

// ParseError reports a malformed line in a mesh description.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads a point/connectivity mesh file and returns a Mesh.
// The format is line-oriented:
//
//	<number of points>
//	<x> <y> <z>        one line per point
//	<number of triangles>
//	<i0> <i1> <i2>     one line per triangle, indexing the point list
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses a mesh description from a reader.
// Exactly as many point lines as the point count declares are consumed;
// every line after the triangle count is consumed as a triangle, whether or
// not the declared triangle count matches. On any malformed line the whole
// decode fails with a ParseError and no Mesh is returned.
func Decode(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	lineNo := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return scanner.Text(), true
	}

	text, ok := nextLine()
	if !ok {
		return nil, scanError(scanner, 1, "missing point count")
	}
	pointCount, err := parseCount(text)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid point count: %v", err)}
	}

	m := &Mesh{Vertices: make([]geometry.Vector3, 0, pointCount)}
	for i := 0; i < pointCount; i++ {
		text, ok := nextLine()
		if !ok {
			return nil, scanError(scanner, lineNo+1,
				fmt.Sprintf("expected %d point lines, found %d", pointCount, i))
		}
		vertex, err := parseVertex(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		m.Vertices = append(m.Vertices, vertex)
	}

	text, ok = nextLine()
	if !ok {
		return nil, scanError(scanner, lineNo+1, "missing triangle count")
	}
	triangleCount, err := parseCount(text)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid triangle count: %v", err)}
	}
	m.Triangles = make([]Triangle, 0, triangleCount)

	// All remaining lines are triangles, regardless of the declared count.
	for {
		text, ok := nextLine()
		if !ok {
			break
		}
		triangle, err := parseTriangle(text, pointCount)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		m.Triangles = append(m.Triangles, triangle)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	return m, nil
}

// scanError distinguishes a truncated input from a read failure
func scanError(scanner *bufio.Scanner, line int, msg string) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read mesh: %w", err)
	}
	return &ParseError{Line: line, Msg: msg}
}

func parseCount(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%q is not a non-negative integer", strings.TrimSpace(text))
	}
	return count, nil
}

// parseVertex reads the first three fields of a point line as coordinates.
// Extra fields are ignored.
func parseVertex(text string) (geometry.Vector3, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, found %d", len(fields))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q", fields[i])
		}
		coords[i] = value
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

// parseTriangle reads the first three fields of a triangle line as vertex
// indices and checks them against the point count. Extra fields are ignored.
func parseTriangle(text string, pointCount int) (Triangle, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return Triangle{}, fmt.Errorf("expected 3 vertex indices, found %d", len(fields))
	}

	var triangle Triangle
	for i := 0; i < 3; i++ {
		index, err := strconv.Atoi(fields[i])
		if err != nil || index < 0 {
			return Triangle{}, fmt.Errorf("invalid vertex index %q", fields[i])
		}
		if index >= pointCount {
			return Triangle{}, fmt.Errorf("vertex index %d out of range (%d points)", index, pointCount)
		}
		triangle[i] = index
	}
	return triangle, nil
}
