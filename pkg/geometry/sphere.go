package geometry

import (
	"math"

	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, core.NewConstructionError("sphere", "radius must be positive")
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// NewSphereUnit creates a unit sphere at the origin
func NewSphereUnit() *Sphere {
	return &Sphere{Center: core.NewPoint3(0, 0, 0), Radius: 1}
}

// Intersect tests the ray against the sphere's quadratic
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	oc := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	var hits []Hit
	for _, t := range solver.Quadratic(a, b, c) {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		normal := point.Sub(s.Center).Multiply(1.0 / s.Radius)
		hits = append(hits, Hit{T: t, Point: point, Normal: normal})
	}
	return hits
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Add(r.Negate()), s.Center.Add(r))
}

// raySphereInterval returns the parameter interval a ray spends inside a
// sphere of the given radius centered at the origin. Used by the implicit
// surfaces to clip their root search to the bounding ball.
func raySphereInterval(ray core.Ray, radius float64) (float64, float64, bool) {
	oc := ray.Origin.AsVec3()
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)
	return (-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a), true
}
