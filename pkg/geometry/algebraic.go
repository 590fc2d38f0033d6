package geometry

import (
	"math"

	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// ImplicitSurface is a primitive defined by a polynomial equation
// F(x,y,z) = 0 rather than a parametric map. The classical immersions of
// the real projective plane (Steiner, cross-cap, Roman) live here: they
// self-intersect, so parametric sampling produces artifacts at the
// self-intersection loci and intersection must go through the implicit
// equation instead.
//
// A ray is first clipped against the surface's bounding sphere; rays that
// miss the bound never reach the root finder. Inside the bound the scalar
// function f(t) = F(P(t)) is handed to the bracketed Newton/bisection
// search, and the surface normal at each root is the normalized gradient
// ∇F at the hit point. A vanishing gradient (a pinch point of the
// immersion) discards that root.
type ImplicitSurface struct {
	name     string
	bound    float64 // radius of the bounding sphere around the origin
	value    func(x, y, z float64) float64
	gradient func(x, y, z float64) core.Vec3
	opts     solver.Options
}

// SetSolverOptions overrides the root-finder budget for this surface.
// Construction-phase only, like every other mutation in the kernel.
func (s *ImplicitSurface) SetSolverOptions(opts solver.Options) {
	s.opts = opts
}

// Name returns the surface's kind, e.g. "steiner" or "crosscap2"
func (s *ImplicitSurface) Name() string {
	return s.name
}

// BoundingRadius returns the radius of the surface's bounding sphere
func (s *ImplicitSurface) BoundingRadius() float64 {
	return s.bound
}

// Evaluate returns F at the given point
func (s *ImplicitSurface) Evaluate(p core.Point3) float64 {
	return s.value(p.X, p.Y, p.Z)
}

// Intersect finds the ray's crossings of F(x,y,z) = 0 inside the bounding
// sphere
func (s *ImplicitSurface) Intersect(ray core.Ray, tMin, tMax float64) []Hit {
	t0, t1, ok := raySphereInterval(ray, s.bound)
	if !ok {
		return nil
	}
	t0 = math.Max(t0, tMin)
	t1 = math.Min(t1, tMax)
	if t0 >= t1 {
		return nil
	}

	f := func(t float64) float64 {
		p := ray.At(t)
		return s.value(p.X, p.Y, p.Z)
	}
	df := func(t float64) float64 {
		p := ray.At(t)
		return s.gradient(p.X, p.Y, p.Z).Dot(ray.Direction)
	}

	var hits []Hit
	for _, t := range solver.BracketedRoots(f, df, t0, t1, s.opts) {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		normal, err := s.gradient(point.X, point.Y, point.Z).Normalize()
		if err != nil {
			continue
		}
		hits = append(hits, Hit{T: t, Point: point, Normal: normal})
	}
	return hits
}

// Bounds returns the bounding sphere's enclosing box
func (s *ImplicitSurface) Bounds() core.AABB {
	return core.NewAABB(
		core.NewPoint3(-s.bound, -s.bound, -s.bound),
		core.NewPoint3(s.bound, s.bound, s.bound),
	)
}

// NewSteiner creates the Steiner surface
//
//	x²y² + y²z² + z²x² + xyz = 0
func NewSteiner() *ImplicitSurface {
	return &ImplicitSurface{
		name:  "steiner",
		bound: 1,
		value: func(x, y, z float64) float64 {
			return x*x*y*y + y*y*z*z + z*z*x*x + x*y*z
		},
		gradient: func(x, y, z float64) core.Vec3 {
			return core.NewVec3(
				2*x*y*y+2*x*z*z+y*z,
				2*x*x*y+2*y*z*z+x*z,
				2*y*y*z+2*x*x*z+x*y,
			)
		},
		opts: solver.DefaultOptions(),
	}
}

// NewSteiner2 creates the cubic Steiner variant
//
//	x²y + xyz + xy + yz = 0
//
// clipped to the unit ball (the cubic itself is unbounded).
func NewSteiner2() *ImplicitSurface {
	return &ImplicitSurface{
		name:  "steiner2",
		bound: 1,
		value: func(x, y, z float64) float64 {
			return x*x*y + x*y*z + x*y + y*z
		},
		gradient: func(x, y, z float64) core.Vec3 {
			return core.NewVec3(
				2*x*y+y*z+y,
				x*x+x*z+x+z,
				x*y+y,
			)
		},
		opts: solver.DefaultOptions(),
	}
}

// NewCrossCap creates the cross-cap surface
//
//	4x²(x² + y² + z² + z) + y²(y² + z² − 1) = 0
func NewCrossCap() *ImplicitSurface {
	return &ImplicitSurface{
		name:  "crosscap",
		bound: 1.5,
		value: func(x, y, z float64) float64 {
			return 4*x*x*(x*x+y*y+z*z+z) + y*y*(y*y+z*z-1)
		},
		gradient: func(x, y, z float64) core.Vec3 {
			return core.NewVec3(
				8*x*(x*x+y*y+z*z+z)+8*x*x*x,
				8*x*x*y+4*y*y*y+2*y*z*z-2*y,
				4*x*x*(2*z+1)+2*y*y*z,
			)
		},
		opts: solver.DefaultOptions(),
	}
}

// NewCrossCap2 creates the parameterized cross-cap
//
//	4x²(x² + y² + z² + p·z) + y²(y² + z² − q) = 0
//
// with shape parameters p, q in (0, 1).
func NewCrossCap2(p, q float64) (*ImplicitSurface, error) {
	if p <= 0 || p >= 1 || q <= 0 || q >= 1 {
		return nil, core.NewConstructionError("crosscap2", "shape parameters p, q must lie in (0, 1)")
	}
	return &ImplicitSurface{
		name:  "crosscap2",
		bound: 1.5,
		value: func(x, y, z float64) float64 {
			return 4*x*x*(x*x+y*y+z*z+p*z) + y*y*(y*y+z*z-q)
		},
		gradient: func(x, y, z float64) core.Vec3 {
			return core.NewVec3(
				8*x*(x*x+y*y+z*z+p*z)+8*x*x*x,
				8*x*x*y+4*y*y*y+2*y*z*z-2*q*y,
				4*x*x*(2*z+p)+2*y*y*z,
			)
		},
		opts: solver.DefaultOptions(),
	}, nil
}

// NewRoman creates Steiner's Roman surface
//
//	x²y² + y²z² + z²x² − 2k·xyz = 0
//
// with size parameter k in (0, 1]. The farthest point of the bounded
// component is the symmetric vertex (2k/3, 2k/3, 2k/3) at distance
// 2k/sqrt(3), so the clip sphere is sized just past that.
func NewRoman(k float64) (*ImplicitSurface, error) {
	if k <= 0 || k > 1 {
		return nil, core.NewConstructionError("roman", "size parameter k must lie in (0, 1]")
	}
	return &ImplicitSurface{
		name:  "roman",
		bound: k * 1.2,
		value: func(x, y, z float64) float64 {
			return x*x*y*y + y*y*z*z + z*z*x*x - 2*k*x*y*z
		},
		gradient: func(x, y, z float64) core.Vec3 {
			return core.NewVec3(
				2*x*y*y+2*x*z*z-2*k*y*z,
				2*x*x*y+2*y*z*z-2*k*x*z,
				2*y*y*z+2*x*x*z-2*k*x*y,
			)
		},
		opts: solver.DefaultOptions(),
	}, nil
}
