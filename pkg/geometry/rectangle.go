package geometry

import (
	"math"

	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// Rectangle represents the unit rectangle: a 2x2 patch of the XZ plane
// centered at the origin with its normal along +Y.
type Rectangle struct{}

// NewRectangleUnit creates the unit rectangle
func NewRectangleUnit() *Rectangle {
	return &Rectangle{}
}

// Intersect tests the ray against the rectangle's plane and bounds
func (r *Rectangle) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	// Parallel rays never cross the plane
	if math.Abs(ray.Direction.Y) < 1e-12 {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	if t <= tMin || t >= tMax {
		return nil
	}

	point := ray.At(t)
	if point.X < -1 || point.X > 1 || point.Z < -1 || point.Z > 1 {
		return nil
	}

	return []Hit{{T: t, Point: point, Normal: core.NewVec3(0, 1, 0)}}
}

// Bounds returns the axis-aligned bounding box for this rectangle.
// The box is padded slightly along Y so it has non-zero thickness.
func (r *Rectangle) Bounds() core.AABB {
	const pad = 1e-6
	return core.NewAABB(core.NewPoint3(-1, -pad, -1), core.NewPoint3(1, pad, 1))
}
