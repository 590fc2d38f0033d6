package core

import "fmt"

// ConstructionError reports an invalid argument to a constructor or
// transform mutator. Construction errors are fatal to scene setup and are
// raised at the offending call, never deferred to render time.
type ConstructionError struct {
	Entity string // what was being constructed, e.g. "camera" or "torus"
	Reason string
}

// NewConstructionError creates a ConstructionError for the given entity
func NewConstructionError(entity, reason string) *ConstructionError {
	return &ConstructionError{Entity: entity, Reason: reason}
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

// ErrZeroVector is returned when normalizing a zero-length vector
var ErrZeroVector = NewConstructionError("vec3", "cannot normalize zero-length vector")
