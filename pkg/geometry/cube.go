package geometry

import (
	"math"

	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// Cube represents the unit cube: axis-aligned, centered at the origin,
// spanning [-1, 1] on every axis.
type Cube struct{}

// NewCubeUnit creates the unit cube
func NewCubeUnit() *Cube {
	return &Cube{}
}

// Intersect tests the ray against the cube using the slab method,
// reporting both the entry and exit intersections
func (c *Cube) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	min := core.NewPoint3(-1, -1, -1)
	max := core.NewPoint3(1, 1, 1)
	return intersectBox(ray, min, max, tMin, tMax)
}

// Bounds returns the axis-aligned bounding box for this cube
func (c *Cube) Bounds() core.AABB {
	return core.NewAABB(core.NewPoint3(-1, -1, -1), core.NewPoint3(1, 1, 1))
}

// intersectBox runs the slab method against an arbitrary axis-aligned box
// and reports the entry and exit hits with their face normals. It is
// shared by the cube and the gnomon arms.
func intersectBox(ray core.Ray, min, max core.Point3, tMin, tMax float64) []Hit {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	enterAxis, exitAxis := -1, -1
	enterSign, exitSign := 0.0, 0.0

	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, direction float64
		switch axis {
		case 0:
			lo, hi = min.X, max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi = min.Y, max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			lo, hi = min.Z, max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return nil
			}
			continue
		}

		t1 := (lo - origin) / direction
		t2 := (hi - origin) / direction
		// sign of the outward normal on the face hit first along this axis
		sign := -1.0
		if direction < 0 {
			sign = 1.0
		}

		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
			enterAxis = axis
			enterSign = sign
		}
		if t2 < tExit {
			tExit = t2
			exitAxis = axis
			exitSign = -sign
		}
		if tEnter > tExit {
			return nil
		}
	}

	var hits []Hit
	if enterAxis >= 0 && tEnter > tMin && tEnter < tMax {
		hits = append(hits, Hit{T: tEnter, Point: ray.At(tEnter), Normal: axisNormal(enterAxis, enterSign)})
	}
	// An edge or corner graze has tEnter == tExit; report the single
	// tangent contact once
	if exitAxis >= 0 && tExit > tMin && tExit < tMax && tExit != tEnter {
		hits = append(hits, Hit{T: tExit, Point: ray.At(tExit), Normal: axisNormal(exitAxis, exitSign)})
	}
	return hits
}

func axisNormal(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
