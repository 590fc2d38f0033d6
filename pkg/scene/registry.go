package scene

// registry is an insertion-ordered, name-keyed collection.
// Re-registering an existing name replaces the value and keeps the name's
// original position: the scripts that populate scenes register the same
// name more than once, and last write wins by design.
type registry[T any] struct {
	order  []string
	values map[string]T
}

func newRegistry[T any]() registry[T] {
	return registry[T]{values: make(map[string]T)}
}

func (r *registry[T]) add(name string, value T) {
	if _, exists := r.values[name]; !exists {
		r.order = append(r.order, name)
	}
	r.values[name] = value
}

func (r *registry[T]) get(name string) (T, bool) {
	value, ok := r.values[name]
	return value, ok
}

func (r *registry[T]) names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *registry[T]) items() []T {
	out := make([]T, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.values[name])
	}
	return out
}
