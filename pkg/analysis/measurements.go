package analysis

import (
	"fmt"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/geometry"
	"github.com/Gabrielgerez/mesh-reorienter/pkg/mesh"
	"github.com/Gabrielgerez/mesh-reorienter/pkg/orient"
)

// Result contains various measurements of a mesh
type Result struct {
	VertexCount   int
	TriangleCount int
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	Centroid      geometry.Vector3
	OutwardCount  int
	InwardCount   int
}

// AnalyzeMesh measures a mesh and tallies how many triangles already wind
// outward with respect to the centroid and how many do not.
// Fails with mesh.ErrDegenerateMesh when the mesh has no vertices.
func AnalyzeMesh(m *mesh.Mesh) (*Result, error) {
	centroid, err := m.Centroid()
	if err != nil {
		return nil, err
	}

	result := &Result{
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		Centroid:      centroid,
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, t := range m.Triangles {
		if orient.Outward(m, t, centroid) {
			result.OutwardCount++
		} else {
			result.InwardCount++
		}
	}

	return result, nil
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
