package scene

import (
	"github.com/adamkw/go-scene-kernel/pkg/core"
	"github.com/adamkw/go-scene-kernel/pkg/geometry"
	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// Intersection is a world-space hit: the nearest intersection of a ray
// with a node tree, carrying the material of the node that was hit.
type Intersection struct {
	T        float64
	Point    core.Point3
	Normal   core.Vec3
	Material *Material
}

// Node binds one shape to one material under a local transform, with an
// active flag and an ordered list of child nodes whose transforms compose
// relative to this node's frame.
//
// Mutators are fluent to match the scripted call chains
// (Node(...).Scale(...).Rotate(...).Translate(...)); the first
// construction error they encounter is recorded and surfaced via Err and
// Scene.AddNode. Nodes are construction-phase mutable only: once
// registered in a scene they are frozen for the render pass.
type Node struct {
	shape     geometry.Shape
	material  *Material
	transform *core.Transform
	children  []*Node
	active    bool
	err       error
}

// NewNode creates a node for a shape. A nil material binds the shared
// default material.
func NewNode(shape geometry.Shape, material *Material) *Node {
	n := &Node{
		shape:     shape,
		material:  material,
		transform: core.NewTransform(),
		active:    true,
	}
	if shape == nil {
		n.err = core.NewConstructionError("node", "shape must not be nil")
	}
	if material == nil {
		n.material = DefaultMaterial()
	}
	return n
}

// Scale composes a non-uniform scale onto the node's transform
func (n *Node) Scale(x, y, z float64) *Node {
	if err := n.transform.Scale(x, y, z); err != nil && n.err == nil {
		n.err = err
	}
	return n
}

// Rotate composes rotations about X, then Y, then Z, in degrees
func (n *Node) Rotate(degX, degY, degZ float64) *Node {
	n.transform.Rotate(degX, degY, degZ)
	return n
}

// Translate composes a translation onto the node's transform
func (n *Node) Translate(x, y, z float64) *Node {
	n.transform.Translate(x, y, z)
	return n
}

// SetActive toggles the node; an inactive node and its entire subtree are
// excluded from intersection
func (n *Node) SetActive(active bool) *Node {
	n.active = active
	return n
}

// AddChild appends a child node whose transform is relative to this node
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// Err returns the first construction error recorded by a fluent mutator
func (n *Node) Err() error {
	if n.err != nil {
		return n.err
	}
	for _, child := range n.children {
		if err := child.Err(); err != nil {
			return err
		}
	}
	return nil
}

// applySolverOptions pushes the kernel's root-finder budget to every shape
// in the subtree that runs a numeric root search
func (n *Node) applySolverOptions(opts solver.Options) {
	if shape, ok := n.shape.(interface{ SetSolverOptions(solver.Options) }); ok {
		shape.SetSolverOptions(opts)
	}
	for _, child := range n.children {
		child.applySolverOptions(opts)
	}
}

// IsActive reports whether the node participates in rendering
func (n *Node) IsActive() bool { return n.active }

// Shape returns the node's shape
func (n *Node) Shape() geometry.Shape { return n.shape }

// Material returns the node's material
func (n *Node) Material() *Material { return n.material }

// Transform returns the node's local transform
func (n *Node) Transform() *core.Transform { return n.transform }

// Children returns the node's children
func (n *Node) Children() []*Node { return n.children }

// Intersect returns the nearest hit of a world ray against this node and
// its active descendants
func (n *Node) Intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	return n.intersect(ray, tMin, tMax)
}

// intersect works in the caller's space: the incoming ray is expressed in
// the parent's local frame and the returned hit is mapped back into it.
// Because ray directions are never renormalized, the parameter t is
// directly comparable across the whole tree.
func (n *Node) intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	if !n.active || n.err != nil {
		return nil, false
	}

	local := n.transform.ApplyInverseRay(ray)

	var best *Intersection
	if hits := n.shape.Intersect(local, tMin, tMax); len(hits) > 0 {
		best = &Intersection{
			T:        hits[0].T,
			Point:    hits[0].Point,
			Normal:   hits[0].Normal,
			Material: n.material,
		}
		tMax = best.T
	}

	// Children receive the ray in this node's local frame
	for _, child := range n.children {
		if hit, ok := child.intersect(local, tMin, tMax); ok {
			best = hit
			tMax = hit.T
		}
	}

	if best == nil {
		return nil, false
	}

	best.Point = n.transform.Apply(best.Point)
	normal, err := n.transform.ApplyNormal(best.Normal)
	if err != nil {
		return nil, false
	}
	best.Normal = normal
	return best, true
}
