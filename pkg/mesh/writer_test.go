package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/geometry"
)

func TestEncode(t *testing.T) {
	m := &Mesh{
		Vertices: []geometry.Vector3{
			geometry.NewVector3(0, 0.25, 1),
			geometry.NewVector3(-1.5, 2, 0.125),
		},
		Triangles: []Triangle{{0, 1, 0}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m, 2); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "2\n0.00 0.25 1.00\n-1.50 2.00 0.12\n1\n0 1 0\n"
	if buf.String() != expected {
		t.Errorf("Encode failed:\nexpected %q\ngot      %q", expected, buf.String())
	}
}

func TestEncodeZeroPrecision(t *testing.T) {
	m := &Mesh{
		Vertices:  []geometry.Vector3{geometry.NewVector3(1.4, 2.6, -0.4)},
		Triangles: []Triangle{},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m, 0); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "1\n1 3 -0\n0\n"
	if buf.String() != expected {
		t.Errorf("Encode failed:\nexpected %q\ngot      %q", expected, buf.String())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := tetrahedron()

	var buf bytes.Buffer
	if err := Encode(&buf, original, 3); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	reloaded, err := Decode(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if reloaded.VertexCount() != original.VertexCount() {
		t.Errorf("vertex count changed: expected %d, got %d",
			original.VertexCount(), reloaded.VertexCount())
	}
	if reloaded.TriangleCount() != original.TriangleCount() {
		t.Errorf("triangle count changed: expected %d, got %d",
			original.TriangleCount(), reloaded.TriangleCount())
	}
	for i := range original.Triangles {
		if reloaded.Triangles[i] != original.Triangles[i] {
			t.Errorf("triangle %d changed: expected %v, got %v",
				i, original.Triangles[i], reloaded.Triangles[i])
		}
	}
	for i := range original.Vertices {
		if reloaded.Vertices[i] != original.Vertices[i] {
			t.Errorf("vertex %d changed: expected %v, got %v",
				i, original.Vertices[i], reloaded.Vertices[i])
		}
	}
}
