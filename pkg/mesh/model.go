package mesh

import (
	"errors"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/geometry"
)

// ErrDegenerateMesh is returned when an operation needs at least one vertex
// but the mesh has none, e.g. the centroid of an empty mesh is undefined.
var ErrDegenerateMesh = errors.New("degenerate mesh: no vertices")

// Triangle is an ordered triple of indices into the vertex list of a Mesh.
// The order is significant: it defines the winding, and with it the side the
// face normal points to (right-hand rule).
type Triangle [3]int

// Flip reverses the winding by swapping the second and third vertex index.
// The triangle covers the same surface afterwards, with the normal reversed.
func (t *Triangle) Flip() {
	t[1], t[2] = t[2], t[1]
}

// Mesh is a triangular surface mesh: a list of vertex positions and a list
// of triangles indexing into it.
type Mesh struct {
	Vertices  []geometry.Vector3
	Triangles []Triangle
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Centroid returns the arithmetic mean of all vertex positions.
// It fails with ErrDegenerateMesh when the mesh has no vertices.
func (m *Mesh) Centroid() (geometry.Vector3, error) {
	if len(m.Vertices) == 0 {
		return geometry.Vector3{}, ErrDegenerateMesh
	}

	sum := geometry.Vector3{}
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(m.Vertices))), nil
}

// TriangleNormal computes the (unnormalized) face normal of a triangle as
// the cross product of its first two edges
func (m *Mesh) TriangleNormal(t Triangle) geometry.Vector3 {
	edge1 := m.Vertices[t[1]].Sub(m.Vertices[t[0]])
	edge2 := m.Vertices[t[2]].Sub(m.Vertices[t[0]])
	return edge1.Cross(edge2)
}

// TriangleArea returns the surface area of a triangle
func (m *Mesh) TriangleArea(t Triangle) float64 {
	return m.TriangleNormal(t).Length() / 2.0
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for _, t := range m.Triangles {
		totalArea += m.TriangleArea(t)
	}
	return totalArea
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
