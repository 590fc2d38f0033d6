// Package scene implements the scene-graph container the renderer queries:
// named registries of cameras, lights, materials and nodes, plus the node
// tree that composes shapes with transforms and materials.
package scene

import "github.com/adamkw/go-scene-kernel/pkg/core"

// Material is a pure parameter bundle: diffuse, specular and reflective
// colors plus a shininess exponent. It has no behavior of its own; the
// renderer interprets the parameters. Materials are shared by pointer
// across many nodes.
type Material struct {
	Diffuse    core.Vec3
	Specular   core.Vec3
	Reflective core.Vec3
	Shininess  float64
}

// NewMaterial creates a new material
func NewMaterial(diffuse, specular, reflective core.Vec3, shininess float64) *Material {
	return &Material{
		Diffuse:    diffuse,
		Specular:   specular,
		Reflective: reflective,
		Shininess:  shininess,
	}
}

var defaultMaterial = NewMaterial(
	core.NewVec3(0.5, 0.5, 0.5),
	core.NewVec3(0.5, 0.5, 0.5),
	core.NewVec3(0, 0, 0),
	0.5,
)

// DefaultMaterial returns the shared material bound to nodes constructed
// without one
func DefaultMaterial() *Material {
	return defaultMaterial
}

// MaterialRed returns a red preset
func MaterialRed() *Material {
	return NewMaterial(core.NewVec3(0.8, 0.0, 0.3), core.NewVec3(0.8, 0.3, 0.0), core.NewVec3(0, 0, 0), 0.5)
}

// MaterialBlue returns a blue preset
func MaterialBlue() *Material {
	return NewMaterial(core.NewVec3(0.0, 0.3, 0.6), core.NewVec3(0.3, 0.0, 0.6), core.NewVec3(0, 0, 0), 0.5)
}

// MaterialGreen returns a green preset
func MaterialGreen() *Material {
	return NewMaterial(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), 0.5)
}

// MaterialMagenta returns a magenta preset
func MaterialMagenta() *Material {
	return NewMaterial(core.NewVec3(1, 0, 1), core.NewVec3(1, 0, 1), core.NewVec3(0, 0, 0), 0.5)
}

// MaterialTurquoise returns a turquoise preset
func MaterialTurquoise() *Material {
	return NewMaterial(core.NewVec3(0.25, 0.3, 0.7), core.NewVec3(0.25, 0.3, 0.7), core.NewVec3(0, 0, 0), 0.5)
}
