package scene

import "github.com/adamkw/go-scene-kernel/pkg/core"

// Camera holds an eye/lookAt/up triple and the orthonormal view basis
// derived from it, used by the renderer for ray generation.
type Camera struct {
	Eye    core.Point3
	LookAt core.Point3
	Up     core.Vec3

	forward core.Vec3
	right   core.Vec3
	up      core.Vec3 // recomputed true up, orthogonal to forward and right
}

// NewCamera creates a camera. A zero view vector (eye == lookAt) or an up
// vector parallel to the view direction leaves the basis undefined and is
// rejected.
func NewCamera(eye, lookAt core.Point3, up core.Vec3) (*Camera, error) {
	forward, err := lookAt.Sub(eye).Normalize()
	if err != nil {
		return nil, core.NewConstructionError("camera", "eye and lookAt coincide")
	}
	right, err := forward.Cross(up).Normalize()
	if err != nil {
		return nil, core.NewConstructionError("camera", "up vector is parallel to the view direction")
	}
	return &Camera{
		Eye:     eye,
		LookAt:  lookAt,
		Up:      up,
		forward: forward,
		right:   right,
		up:      right.Cross(forward),
	}, nil
}

// Basis returns the orthonormal view basis (forward, right, up)
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	return c.forward, c.right, c.up
}

// Ray generates a view ray through viewport coordinates (s, t) in [0,1]²,
// on a 2x2 viewport at focal length 1
func (c *Camera) Ray(s, t float64) core.Ray {
	direction := c.forward.
		Add(c.right.Multiply(2*s - 1)).
		Add(c.up.Multiply(2*t - 1))
	return core.NewRay(c.Eye, direction)
}
