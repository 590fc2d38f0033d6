package geometry

import (
	"fmt"
	"sort"

	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/loaders"
)

// Mesh is a fixed list of triangles loaded from an external file.
// Intersection is a nearest-triangle test; normals are flat.
type Mesh struct {
	triangles []*Triangle
	bbox      core.AABB
}

// NewMesh loads a mesh from an OBJ file
func NewMesh(path string) (*Mesh, error) {
	data, err := loaders.LoadOBJ(path)
	if err != nil {
		return nil, err
	}

	triangles := make([]*Triangle, 0, len(data.Faces)/3)
	for i := 0; i+2 < len(data.Faces); i += 3 {
		v0 := data.Vertices[data.Faces[i]]
		v1 := data.Vertices[data.Faces[i+1]]
		v2 := data.Vertices[data.Faces[i+2]]
		tri, err := NewTriangle(v0, v1, v2)
		if err != nil {
			// Degenerate faces show up in real OBJ exports; skip them
			continue
		}
		triangles = append(triangles, tri)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %q contains no usable triangles", path)
	}
	return NewMeshFromTriangles(triangles)
}

// NewMeshFromTriangles creates a mesh from an existing triangle list
func NewMeshFromTriangles(triangles []*Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, core.NewConstructionError("mesh", "triangle list is empty")
	}
	bbox := triangles[0].Bounds()
	for _, tri := range triangles[1:] {
		bbox = bbox.Union(tri.Bounds())
	}
	return &Mesh{triangles: triangles, bbox: bbox}, nil
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Intersect tests the ray against every triangle
func (m *Mesh) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	if !m.bbox.Hit(ray, tMin, tMax) {
		return nil
	}

	var hits []Hit
	for _, tri := range m.triangles {
		hits = append(hits, tri.Intersect(ray, tMin, tMax)...)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

// Bounds returns the axis-aligned bounding box for this mesh
func (m *Mesh) Bounds() core.AABB {
	return m.bbox
}
