package scene

import "github.com/adamkw/go-scene-kernel/pkg/core"

// Light is either a positional point light with quadratic falloff or an
// ambient light. The active flag stays mutable after construction so
// scripts can toggle lights without removing them from the scene.
type Light interface {
	Color() core.Vec3
	IsActive() bool
	SetActive(active bool)
}

// PointLight is a positional light with quadratic distance attenuation
type PointLight struct {
	Position core.Point3
	color    core.Vec3
	falloff  core.Vec3 // attenuation coefficients (constant, linear, quadratic)
	active   bool
}

// NewLight creates a point light. Falloff holds the quadratic attenuation
// coefficients (a, b, c); all-zero falloff would divide by zero at shading
// time and is rejected here.
func NewLight(position core.Point3, color, falloff core.Vec3) (*PointLight, error) {
	if falloff.X == 0 && falloff.Y == 0 && falloff.Z == 0 {
		return nil, core.NewConstructionError("light", "falloff coefficients must not all be zero")
	}
	return &PointLight{Position: position, color: color, falloff: falloff, active: true}, nil
}

// Color returns the light's color
func (l *PointLight) Color() core.Vec3 { return l.color }

// Falloff returns the quadratic attenuation coefficients
func (l *PointLight) Falloff() core.Vec3 { return l.falloff }

// IsActive reports whether the light participates in rendering
func (l *PointLight) IsActive() bool { return l.active }

// SetActive toggles the light
func (l *PointLight) SetActive(active bool) { l.active = active }

// Attenuation returns the intensity factor 1/(a + b·d + c·d²) at the
// given distance; non-positive denominators yield zero contribution
func (l *PointLight) Attenuation(distance float64) float64 {
	denom := l.falloff.X + l.falloff.Y*distance + l.falloff.Z*distance*distance
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

// AmbientLight contributes a constant color independent of position
type AmbientLight struct {
	color  core.Vec3
	active bool
}

// NewAmbient creates an ambient light
func NewAmbient(color core.Vec3) *AmbientLight {
	return &AmbientLight{color: color, active: true}
}

// Color returns the light's color
func (l *AmbientLight) Color() core.Vec3 { return l.color }

// IsActive reports whether the light participates in rendering
func (l *AmbientLight) IsActive() bool { return l.active }

// SetActive toggles the light
func (l *AmbientLight) SetActive(active bool) { l.active = active }
