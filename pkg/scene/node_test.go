package scene

import (
	"math"
	"testing"

	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/geometry"
)

func checkHitVec(t *testing.T, what string, got, expected core.Vec3, tolerance float64) {
	t.Helper()
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %s %v, got %v", what, expected, got)
	}
}

func checkHitPoint(t *testing.T, what string, got, expected core.Point3, tolerance float64) {
	t.Helper()
	if got.Sub(expected).Length() > tolerance {
		t.Errorf("Expected %s %v, got %v", what, expected, got)
	}
}

func TestNewNode_NilShape(t *testing.T) {
	node := NewNode(nil, nil)
	if node.Err() == nil {
		t.Fatal("Expected error for nil shape, got nil")
	}
	if _, ok := node.Intersect(core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000.0); ok {
		t.Error("Expected a failed node to report miss")
	}
}

func TestNewNode_DefaultMaterial(t *testing.T) {
	node := NewNode(geometry.NewSphereUnit(), nil)
	if node.Material() != DefaultMaterial() {
		t.Error("Expected nil material to bind the shared default")
	}
}

func TestNode_Scale_RecordsError(t *testing.T) {
	node := NewNode(geometry.NewSphereUnit(), nil).Scale(0, 1, 1)
	if node.Err() == nil {
		t.Fatal("Expected recorded error for zero scale, got nil")
	}
}

func TestNode_Err_SurfacesChildError(t *testing.T) {
	child := NewNode(nil, nil)
	parent := NewNode(geometry.NewSphereUnit(), nil).AddChild(child)
	if parent.Err() == nil {
		t.Fatal("Expected child error to surface through the parent")
	}
}

func TestNode_Intersect_Translated(t *testing.T) {
	node := NewNode(geometry.NewSphereUnit(), nil).Translate(0, 0, 1)
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := node.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-3) > tolerance {
		t.Errorf("Expected t=3, got t=%f", hit.T)
	}
	checkHitPoint(t, "point", hit.Point, core.NewPoint3(0, 0, 2), tolerance)
	checkHitVec(t, "normal", hit.Normal, core.NewVec3(0, 0, 1), tolerance)
}

func TestNode_Intersect_NonUniformScaleNormal(t *testing.T) {
	// Ellipsoid from a (2,1,1)-scaled unit sphere. The world normal must
	// come from the inverse-transpose; mapping the local normal through the
	// forward matrix would give roughly (0.756, 0, 0.655).
	node := NewNode(geometry.NewSphereUnit(), nil).Scale(2, 1, 1)
	ray := core.NewRay(core.NewPoint3(1, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := node.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	const tolerance = 1e-6
	if math.Abs(hit.T-(5-math.Sqrt(3)/2)) > tolerance {
		t.Errorf("Expected t=%f, got t=%f", 5-math.Sqrt(3)/2, hit.T)
	}
	checkHitPoint(t, "point", hit.Point, core.NewPoint3(1, 0, math.Sqrt(3)/2), tolerance)
	checkHitVec(t, "normal", hit.Normal, core.NewVec3(0.2773500981, 0, 0.9607689228), tolerance)
}

func TestNode_Intersect_TransformOrder(t *testing.T) {
	// Scale, then rotate the long axis onto Y, then lift: the ellipsoid
	// ends up spanning y in [1, 5] around (0, 3, 0).
	node := NewNode(geometry.NewSphereUnit(), nil).
		Scale(2, 1, 1).
		Rotate(0, 0, 90).
		Translate(0, 3, 0)
	ray := core.NewRay(core.NewPoint3(0, 10, 0), core.NewVec3(0, -1, 0))

	hit, ok := node.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-5) > tolerance {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	checkHitPoint(t, "point", hit.Point, core.NewPoint3(0, 5, 0), tolerance)
	checkHitVec(t, "normal", hit.Normal, core.NewVec3(0, 1, 0), tolerance)
}

func TestNode_Intersect_InactiveSubtree(t *testing.T) {
	child := NewNode(geometry.NewSphereUnit(), nil)
	parent := NewNode(geometry.NewSphereUnit(), nil).
		AddChild(child).
		SetActive(false)

	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, ok := parent.Intersect(ray, 0.001, 1000.0); ok {
		t.Error("Expected inactive parent to hide the whole subtree")
	}
}

func TestNode_Intersect_InactiveChildOnly(t *testing.T) {
	child := NewNode(geometry.NewSphereUnit(), nil).
		Translate(0, 0, 3).
		SetActive(false)
	parent := NewNode(geometry.NewSphereUnit(), nil).AddChild(child)

	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := parent.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit on the parent, got miss")
	}
	// The closer, inactive child is skipped; the parent sphere wins
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
}

func TestNode_Intersect_ChildComposesParentTransform(t *testing.T) {
	// Parent and child each translate by one unit along Z; the child's
	// sphere ends up centered at world (0, 0, 2).
	childMat := MaterialRed()
	child := NewNode(geometry.NewSphereUnit(), childMat).Translate(0, 0, 1)
	parent := NewNode(geometry.NewSphereUnit(), MaterialBlue()).
		Translate(0, 0, 1).
		AddChild(child)

	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := parent.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-2) > tolerance {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	checkHitPoint(t, "point", hit.Point, core.NewPoint3(0, 0, 3), tolerance)
	if hit.Material != childMat {
		t.Error("Expected the child's material on the winning hit")
	}
}

func TestNode_Intersect_NearestAcrossChildren(t *testing.T) {
	nearMat := MaterialGreen()
	near := NewNode(geometry.NewSphereUnit(), nearMat).Translate(0, 0, 3)
	far := NewNode(geometry.NewSphereUnit(), MaterialMagenta()).Translate(0, 0, -3)
	parent := NewNode(geometry.NewSphereUnit(), MaterialBlue()).
		AddChild(far).
		AddChild(near)

	ray := core.NewRay(core.NewPoint3(0, 0, 10), core.NewVec3(0, 0, -1))
	hit, ok := parent.Intersect(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected t=6, got t=%f", hit.T)
	}
	if hit.Material != nearMat {
		t.Error("Expected the nearest child's material")
	}
}
