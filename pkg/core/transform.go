package core

import "math"

// Transform is a composable affine map built from scale, rotation and
// translation calls. It caches both the forward matrix and its inverse;
// the inverse is accumulated per elementary operation so no general matrix
// inversion is ever needed.
//
// Each mutating call composes the new elementary transform on the world
// side (M = E * M), so later calls apply outside earlier ones:
// translate-after-rotate moves the already-rotated object.
type Transform struct {
	m   Mat4
	inv Mat4
}

// NewTransform returns the identity transform
func NewTransform() *Transform {
	return &Transform{m: Mat4Identity(), inv: Mat4Identity()}
}

func (t *Transform) compose(e, eInv Mat4) {
	t.m = e.Mul(t.m)
	t.inv = t.inv.Mul(eInv)
}

// Scale composes a non-uniform scale. A zero scale on any axis would make
// the transform singular and is rejected at the call.
func (t *Transform) Scale(sx, sy, sz float64) error {
	if sx == 0 || sy == 0 || sz == 0 {
		return NewConstructionError("transform", "degenerate scale: all axes must be non-zero")
	}
	t.compose(Mat4Scale(sx, sy, sz), Mat4Scale(1/sx, 1/sy, 1/sz))
	return nil
}

// Rotate composes rotations about X, then Y, then Z, in degrees
func (t *Transform) Rotate(degX, degY, degZ float64) {
	rx := degX * math.Pi / 180.0
	ry := degY * math.Pi / 180.0
	rz := degZ * math.Pi / 180.0
	e := Mat4RotationZ(rz).Mul(Mat4RotationY(ry)).Mul(Mat4RotationX(rx))
	eInv := Mat4RotationX(-rx).Mul(Mat4RotationY(-ry)).Mul(Mat4RotationZ(-rz))
	t.compose(e, eInv)
}

// RotateX composes a rotation about the X axis, in degrees
func (t *Transform) RotateX(deg float64) { t.Rotate(deg, 0, 0) }

// RotateY composes a rotation about the Y axis, in degrees
func (t *Transform) RotateY(deg float64) { t.Rotate(0, deg, 0) }

// RotateZ composes a rotation about the Z axis, in degrees
func (t *Transform) RotateZ(deg float64) { t.Rotate(0, 0, deg) }

// Translate composes a translation
func (t *Transform) Translate(dx, dy, dz float64) {
	t.compose(Mat4Translation(dx, dy, dz), Mat4Translation(-dx, -dy, -dz))
}

// Apply maps a point from local to world space
func (t *Transform) Apply(p Point3) Point3 {
	return t.m.ApplyPoint(p)
}

// ApplyVec maps a vector from local to world space, ignoring translation
func (t *Transform) ApplyVec(v Vec3) Vec3 {
	return t.m.ApplyVec(v)
}

// ApplyInverse maps a point from world to local space
func (t *Transform) ApplyInverse(p Point3) Point3 {
	return t.inv.ApplyPoint(p)
}

// ApplyInverseVec maps a vector from world to local space
func (t *Transform) ApplyInverseVec(v Vec3) Vec3 {
	return t.inv.ApplyVec(v)
}

// ApplyInverseRay maps a world ray into local space. The direction is not
// renormalized, so a parameter t names the same point on both rays.
func (t *Transform) ApplyInverseRay(r Ray) Ray {
	return Ray{
		Origin:    t.inv.ApplyPoint(r.Origin),
		Direction: t.inv.ApplyVec(r.Direction),
	}
}

// ApplyNormal maps a surface normal from local to world space using the
// inverse-transpose of the linear block, renormalized. Transforming a
// normal by the forward matrix is incorrect under non-uniform scale.
func (t *Transform) ApplyNormal(n Vec3) (Vec3, error) {
	return t.inv.ApplyVecTransposed(n).Normalize()
}

// Matrix returns the forward matrix
func (t *Transform) Matrix() Mat4 {
	return t.m
}

// InverseMatrix returns the inverse matrix
func (t *Transform) InverseMatrix() Mat4 {
	return t.inv
}
