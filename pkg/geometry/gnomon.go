package geometry

import (
	"sort"

	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// gnomonArmWidth is the half-thickness of each axis arm
const gnomonArmWidth = 0.05

// Gnomon is a debug triad: three thin unit-length boxes along the positive
// X, Y and Z axes, used to visualize a node's local frame.
type Gnomon struct {
	arms [3]core.AABB
}

// NewGnomon creates a new gnomon
func NewGnomon() *Gnomon {
	w := gnomonArmWidth
	return &Gnomon{
		arms: [3]core.AABB{
			core.NewAABB(core.NewPoint3(0, -w, -w), core.NewPoint3(1, w, w)),
			core.NewAABB(core.NewPoint3(-w, 0, -w), core.NewPoint3(w, 1, w)),
			core.NewAABB(core.NewPoint3(-w, -w, 0), core.NewPoint3(w, w, 1)),
		},
	}
}

// Intersect tests the ray against all three arms
func (g *Gnomon) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	var hits []Hit
	for _, arm := range g.arms {
		hits = append(hits, intersectBox(ray, arm.Min, arm.Max, tMin, tMax)...)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

// Bounds returns the axis-aligned bounding box for this gnomon
func (g *Gnomon) Bounds() core.AABB {
	return g.arms[0].Union(g.arms[1]).Union(g.arms[2])
}
