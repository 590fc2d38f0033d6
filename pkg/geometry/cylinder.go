package geometry

import (
	"math"
	"sort"

	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// Cylinder represents a capped cylinder centered at the origin with its
// axis along Y, spanning y in [-Height/2, Height/2].
type Cylinder struct {
	Height float64
	Radius float64
}

// NewCylinder creates a new cylinder
func NewCylinder(height, radius float64) (*Cylinder, error) {
	if height <= 0 || radius <= 0 {
		return nil, core.NewConstructionError("cylinder", "height and radius must be positive")
	}
	return &Cylinder{Height: height, Radius: radius}, nil
}

// Intersect tests the ray against the cylinder's side quadratic and both
// cap discs
func (c *Cylinder) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	halfH := c.Height / 2
	var hits []Hit

	// Side: project onto the XZ plane
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	b := 2 * (ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z)
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - c.Radius*c.Radius

	for _, t := range solver.Quadratic(a, b, cc) {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		if point.Y < -halfH || point.Y > halfH {
			continue
		}
		normal := core.NewVec3(point.X/c.Radius, 0, point.Z/c.Radius)
		hits = append(hits, Hit{T: t, Point: point, Normal: normal})
	}

	// Caps at y = ±halfH
	if math.Abs(ray.Direction.Y) > 1e-12 {
		for _, cap := range []struct{ y, ny float64 }{{-halfH, -1}, {halfH, 1}} {
			t := (cap.y - ray.Origin.Y) / ray.Direction.Y
			if t <= tMin || t >= tMax {
				continue
			}
			point := ray.At(t)
			if point.X*point.X+point.Z*point.Z > c.Radius*c.Radius {
				continue
			}
			hits = append(hits, Hit{T: t, Point: point, Normal: core.NewVec3(0, cap.ny, 0)})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

// Bounds returns the axis-aligned bounding box for this cylinder
func (c *Cylinder) Bounds() core.AABB {
	halfH := c.Height / 2
	return core.NewAABB(
		core.NewPoint3(-c.Radius, -halfH, -c.Radius),
		core.NewPoint3(c.Radius, halfH, c.Radius),
	)
}
