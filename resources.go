package boson

// Resources is a small singleton bag passed to every system alongside the
// World, for values that belong to the simulation as a whole rather than to
// any entity — a delta-time clock, an input snapshot, a random source. It is
// deliberately just a map keyed by ComponentTypeID: no change detection, no
// dependency injection, no per-resource locking (see SPEC_FULL.md's Non-goals
// — a full resource table is explicitly out of scope).
type Resources struct {
	values map[ComponentTypeID]any
}

// NewResources returns an empty Resources bag.
func NewResources() *Resources {
	return &Resources{values: make(map[ComponentTypeID]any)}
}

// SetResource installs value as the singleton instance of T.
func SetResource[T any](r *Resources, value T) {
	r.values[ComponentID[T]()] = value
}

// GetResource returns the singleton instance of T, if one has been set.
func GetResource[T any](r *Resources) (T, bool) {
	var zero T
	v, ok := r.values[ComponentID[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}
