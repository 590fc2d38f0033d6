// Package geometry implements the local-space primitive set of the scene
// kernel. Shapes know nothing about transforms or materials; those live on
// the scene node that references the shape.
package geometry

import "github.com/adamkw/go-scene-kernel/pkg/core"

// Hit is a single ray-surface intersection in the shape's local space.
// Normals are outward surface normals; they are not flipped toward the
// incoming ray.
type Hit struct {
	T      float64     // Parameter t along the ray
	Point  core.Point3 // Point of intersection
	Normal core.Vec3   // Unit surface normal at the intersection
}

// Shape is a geometric primitive intersectable in its own local space.
//
// Intersect returns every intersection with tMin < t < tMax, sorted
// ascending by t; an empty slice is a miss. tMin doubles as the
// self-intersection epsilon. Shapes are immutable after construction and
// safe for concurrent use.
type Shape interface {
	Intersect(ray core.Ray, tMin, tMax float64) []Hit
	Bounds() core.AABB
}
