package scene

import (
	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// Scene owns four independent name-keyed registries: cameras, lights,
// materials and root nodes. Registration is register-or-replace with no
// error on duplicates; iteration follows insertion order.
//
// A scene is built single-threaded. Once construction is finished it is
// read-only and safe for concurrent, lock-free access from any number of
// render workers.
type Scene struct {
	cfg       core.Config
	cameras   registry[*Camera]
	lights    registry[Light]
	materials registry[*Material]
	nodes     registry[*Node]
}

// NewScene creates an empty scene with the default kernel configuration
func NewScene() *Scene {
	return NewSceneWithConfig(core.DefaultConfig())
}

// NewSceneWithConfig creates an empty scene with an explicit configuration
func NewSceneWithConfig(cfg core.Config) *Scene {
	return &Scene{
		cfg:       cfg,
		cameras:   newRegistry[*Camera](),
		lights:    newRegistry[Light](),
		materials: newRegistry[*Material](),
		nodes:     newRegistry[*Node](),
	}
}

// Config returns the scene's kernel configuration
func (s *Scene) Config() core.Config { return s.cfg }

// AddCamera registers or replaces a camera by name
func (s *Scene) AddCamera(name string, camera *Camera) {
	s.cameras.add(name, camera)
}

// AddLight registers or replaces a light by name
func (s *Scene) AddLight(name string, light Light) {
	s.lights.add(name, light)
}

// AddMaterial registers or replaces a material by name
func (s *Scene) AddMaterial(name string, material *Material) {
	s.materials.add(name, material)
}

// AddNode registers or replaces a root node by name, surfacing any
// construction error recorded by the node's fluent mutators. Registration
// pushes the scene's root-finder budget down to shapes that solve
// numerically, so the configured iteration and sampling limits take effect.
func (s *Scene) AddNode(name string, node *Node) error {
	if err := node.Err(); err != nil {
		return err
	}
	node.applySolverOptions(s.cfg.SolverOptions())
	s.nodes.add(name, node)
	return nil
}

// Camera looks up a camera by name
func (s *Scene) Camera(name string) (*Camera, bool) { return s.cameras.get(name) }

// Light looks up a light by name
func (s *Scene) Light(name string) (Light, bool) { return s.lights.get(name) }

// Material looks up a material by name
func (s *Scene) Material(name string) (*Material, bool) { return s.materials.get(name) }

// Node looks up a root node by name
func (s *Scene) Node(name string) (*Node, bool) { return s.nodes.get(name) }

// Cameras returns all cameras in insertion order
func (s *Scene) Cameras() []*Camera { return s.cameras.items() }

// Lights returns all lights in insertion order
func (s *Scene) Lights() []Light { return s.lights.items() }

// Materials returns all materials in insertion order
func (s *Scene) Materials() []*Material { return s.materials.items() }

// Nodes returns all root nodes in insertion order
func (s *Scene) Nodes() []*Node { return s.nodes.items() }

// CameraNames returns the camera names in insertion order
func (s *Scene) CameraNames() []string { return s.cameras.names() }

// LightNames returns the light names in insertion order
func (s *Scene) LightNames() []string { return s.lights.names() }

// MaterialNames returns the material names in insertion order
func (s *Scene) MaterialNames() []string { return s.materials.names() }

// NodeNames returns the node names in insertion order
func (s *Scene) NodeNames() []string { return s.nodes.names() }

// Intersect returns the nearest hit of a world ray across all active root
// nodes, using the configured epsilon and distance cap
func (s *Scene) Intersect(ray core.Ray) (*Intersection, bool) {
	var best *Intersection
	tMax := s.cfg.MaxDistance

	for _, node := range s.nodes.items() {
		if hit, ok := node.Intersect(ray, s.cfg.Epsilon, tMax); ok {
			best = hit
			tMax = hit.T
		}
	}

	return best, best != nil
}
