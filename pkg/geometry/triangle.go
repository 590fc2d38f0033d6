package geometry

import (
	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The normal is the flat plane normal; no smoothing.
type Triangle struct {
	V0, V1, V2 core.Point3
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point3) (*Triangle, error) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	normal, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return nil, core.NewConstructionError("triangle", "vertices are collinear")
	}
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: normal,
		bbox:   core.NewAABBFromPoints(v0, v1, v2),
	}, nil
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm
func (tr *Triangle) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	const epsilon = 1e-12

	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if a > -epsilon && a < epsilon {
		return nil
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * edge2.Dot(q)
	if t <= tMin || t >= tMax {
		return nil
	}

	return []Hit{{T: t, Point: ray.At(t), Normal: tr.normal}}
}

// Bounds returns the axis-aligned bounding box for this triangle
func (tr *Triangle) Bounds() core.AABB {
	return tr.bbox
}

// Normal returns the triangle's flat normal
func (tr *Triangle) Normal() core.Vec3 {
	return tr.normal
}
