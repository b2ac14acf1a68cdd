package boson

// factory implements the factory pattern for boson's top-level constructors.
type factory struct{}

// Factory is the global factory instance for creating worlds, resource bags,
// and schedules.
var Factory factory

// NewWorld creates a new, empty World.
func (f factory) NewWorld() *World {
	return NewWorld()
}

// NewResources creates a new, empty Resources bag.
func (f factory) NewResources() *Resources {
	return NewResources()
}

// NewSchedule creates a new, empty Schedule.
func (f factory) NewSchedule() *Schedule {
	return NewSchedule()
}

// FactoryNewSystem creates a System that runs fn once per row matching Q.
// A free function, like FactoryNewCursor below it: Go methods cannot
// carry their own type parameters, so the generic constructors live beside
// Factory rather than on it.
func FactoryNewSystem[Q QueryParam](fn func(w *World, e Entity, q Q, res *Resources)) *FuncSystem[Q] {
	return NewSystem[Q](fn)
}

// FactoryNewCursor creates a Cursor over w for query shape Q.
func FactoryNewCursor[Q QueryParam](w *World) *Cursor[Q] {
	return NewCursor[Q](w)
}
