package core

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/adamkw/go-scene-kernel/pkg/solver"
)

// Config holds the numeric knobs of the intersection kernel.
// Epsilon is the self-intersection guard applied as the lower t bound of
// every intersection query; the root-finder fields bound the numeric work
// done for the implicit algebraic surfaces.
type Config struct {
	Epsilon        float64 `envconfig:"KERNEL_EPSILON" default:"1e-4"`
	MaxDistance    float64 `envconfig:"KERNEL_MAX_DISTANCE" default:"1e12"`
	RootIterations int     `envconfig:"KERNEL_ROOT_ITERATIONS" default:"64"`
	BracketSamples int     `envconfig:"KERNEL_BRACKET_SAMPLES" default:"128"`
	RootTolerance  float64 `envconfig:"KERNEL_ROOT_TOLERANCE" default:"1e-9"`
}

// DefaultConfig returns the recognized kernel defaults
func DefaultConfig() Config {
	return Config{
		Epsilon:        1e-4,
		MaxDistance:    1e12,
		RootIterations: 64,
		BracketSamples: 128,
		RootTolerance:  1e-9,
	}
}

// SolverOptions returns the root-finder budget this configuration
// describes, in the form the numeric solver consumes
func (c Config) SolverOptions() solver.Options {
	return solver.Options{
		Samples:       c.BracketSamples,
		MaxIterations: c.RootIterations,
		Tolerance:     c.RootTolerance,
	}
}

// LoadConfig reads the kernel configuration from the environment,
// falling back to the defaults for unset variables
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
