package geometry

import (
	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// Torus represents a torus centered at the origin around the Z axis,
// defined by the implicit surface
//
//	(x² + y² + z² + R² − r²)² − 4R²(x² + y²) = 0
//
// where R is the major (outer) radius of the center circle and r the minor
// (inner) tube radius. The ray substitution yields a quartic in t which is
// handed to the general polynomial root finder.
type Torus struct {
	Inner float64 // minor (tube) radius r
	Outer float64 // major radius R
}

// NewTorus creates a new torus
func NewTorus(innerRadius, outerRadius float64) (*Torus, error) {
	if innerRadius <= 0 || outerRadius <= 0 {
		return nil, core.NewConstructionError("torus", "radii must be positive")
	}
	if innerRadius >= outerRadius {
		return nil, core.NewConstructionError("torus", "inner radius must be smaller than outer radius")
	}
	return &Torus{Inner: innerRadius, Outer: outerRadius}, nil
}

// Intersect substitutes the ray into the torus quartic and keeps the real
// roots inside (tMin, tMax). Root extraction failures degrade to a miss.
func (tor *Torus) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	o := ray.Origin.AsVec3()
	d := ray.Direction

	R2 := tor.Outer * tor.Outer
	r2 := tor.Inner * tor.Inner

	// u(t) = |P(t)|² + R² − r² = alpha·t² + beta·t + delta
	alpha := d.Dot(d)
	beta := 2 * o.Dot(d)
	delta := o.Dot(o) + R2 - r2

	// w(t) = x(t)² + y(t)² = a2·t² + a1·t + a0
	a2 := d.X*d.X + d.Y*d.Y
	a1 := 2 * (o.X*d.X + o.Y*d.Y)
	a0 := o.X*o.X + o.Y*o.Y

	// f(t) = u(t)² − 4R²·w(t)
	coeffs := []float64{
		delta*delta - 4*R2*a0,
		2*beta*delta - 4*R2*a1,
		beta*beta + 2*alpha*delta - 4*R2*a2,
		2 * alpha * beta,
		alpha * alpha,
	}

	roots, err := solver.PolynomialRoots(coeffs)
	if err != nil {
		return nil
	}

	var hits []Hit
	for _, t := range roots {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		u := point.X*point.X + point.Y*point.Y + point.Z*point.Z + R2 - r2
		gradient := core.NewVec3(
			4*point.X*u-8*R2*point.X,
			4*point.Y*u-8*R2*point.Y,
			4*point.Z*u,
		)
		normal, err := gradient.Normalize()
		if err != nil {
			continue
		}
		hits = append(hits, Hit{T: t, Point: point, Normal: normal})
	}
	return hits
}

// Bounds returns the axis-aligned bounding box for this torus
func (tor *Torus) Bounds() core.AABB {
	extent := tor.Outer + tor.Inner
	return core.NewAABB(
		core.NewPoint3(-extent, -extent, -tor.Inner),
		core.NewPoint3(extent, extent, tor.Inner),
	)
}
