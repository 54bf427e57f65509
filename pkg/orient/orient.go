// Package orient makes the winding order of every triangle in a mesh
// consistent with an outward-pointing face normal. The reference for
// "outward" is the centroid of all vertices, which is assumed to lie inside
// the closed surface; the assumption is not verified.
package orient

import (
	"sync"

	"github.com/Gabrielgerez/mesh-reorienter/pkg/geometry"
	"github.com/Gabrielgerez/mesh-reorienter/pkg/mesh"
)

// Correct flips every triangle whose normal does not point away from the
// mesh centroid. Triangles are modified in place; vertices are untouched.
// Fails with mesh.ErrDegenerateMesh when the mesh has no vertices.
func Correct(m *mesh.Mesh) error {
	centroid, err := m.Centroid()
	if err != nil {
		return err
	}

	for i := range m.Triangles {
		if !Outward(m, m.Triangles[i], centroid) {
			m.Triangles[i].Flip()
		}
	}
	return nil
}

// CorrectParallel is Correct with the per-triangle test fanned out across
// the given number of goroutines. Each triangle depends only on its own
// vertices and the shared centroid, so the workers need no synchronization
// beyond the final wait. workers <= 1 runs the serial pass.
func CorrectParallel(m *mesh.Mesh, workers int) error {
	if workers <= 1 {
		return Correct(m)
	}

	centroid, err := m.Centroid()
	if err != nil {
		return err
	}

	chunk := (len(m.Triangles) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(m.Triangles); start += chunk {
		end := min(start+chunk, len(m.Triangles))
		wg.Add(1)
		go func(triangles []mesh.Triangle) {
			defer wg.Done()
			for i := range triangles {
				if !Outward(m, triangles[i], centroid) {
					triangles[i].Flip()
				}
			}
		}(m.Triangles[start:end])
	}
	wg.Wait()
	return nil
}

// Outward reports whether the triangle's normal points away from the
// centroid: the dot product of the face normal with the vector from the
// centroid to the triangle's first vertex must be strictly positive.
// A dot product of exactly zero (degenerate triangle, or normal
// perpendicular to the reference vector) counts as not outward, so such
// triangles are flipped on every pass.
func Outward(m *mesh.Mesh, t mesh.Triangle, centroid geometry.Vector3) bool {
	normal := m.TriangleNormal(t)
	toTriangle := m.Vertices[t[0]].Sub(centroid)
	return normal.Dot(toTriangle) > 0
}
