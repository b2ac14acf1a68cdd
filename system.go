package boson

// System is one unit of scheduled work: it fetches the rows its Query
// matches, calls its function once per row, and exposes the write set a
// Stage uses to detect conflicts before running a parallel group.
//
// Grounded on original_source's stubbed System/IntoSystem/FunctionSystem
// traits (ecs.rs), which boson's source language never filled in (they are
// bare todo!() bodies) — the fetch/call contract implemented here is the
// concrete design decision resolving that gap, following the fetch-locks,
// call-iterates, release-unlocks shape a Cursor already establishes.
type System interface {
	run(w *World, res *Resources)
	writeSet() []ComponentTypeID
	readSet() []ComponentTypeID
}

// FuncSystem adapts a plain function into a System: one call per row matched
// by Q, each receiving the owning World (for structural mutations, queued
// until the enclosing Cursor releases its lock), the row's Entity, Q itself,
// and the shared Resources.
type FuncSystem[Q QueryParam] struct {
	fn func(w *World, e Entity, q Q, res *Resources)
}

// NewSystem builds a FuncSystem over query shape Q.
func NewSystem[Q QueryParam](fn func(w *World, e Entity, q Q, res *Resources)) *FuncSystem[Q] {
	return &FuncSystem[Q]{fn: fn}
}

func (s *FuncSystem[Q]) run(w *World, res *Resources) {
	c := NewCursor[Q](w)
	for c.Next() {
		s.fn(w, c.Entity(), c.Get(), res)
	}
}

func (s *FuncSystem[Q]) writeSet() []ComponentTypeID { return writeIDsOf[Q]() }
func (s *FuncSystem[Q]) readSet() []ComponentTypeID  { return readIDsOf[Q]() }

// FuncSystem0 adapts a function that takes no query — a system driven purely
// by Resources (a clock tick, an end-of-frame cleanup) rather than by
// iterating entities.
type FuncSystem0 struct {
	fn func(w *World, res *Resources)
}

// NewSystem0 builds a FuncSystem0 with an empty read/write set: it never
// conflicts with another system over component access, since it declares
// none.
func NewSystem0(fn func(w *World, res *Resources)) *FuncSystem0 {
	return &FuncSystem0{fn: fn}
}

func (s *FuncSystem0) run(w *World, res *Resources)    { s.fn(w, res) }
func (s *FuncSystem0) writeSet() []ComponentTypeID     { return nil }
func (s *FuncSystem0) readSet() []ComponentTypeID      { return nil }
