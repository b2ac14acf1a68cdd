package boson

// QueryParam is the shape of one query parameter: a single component access
// (Read[T], Write[T]), the entity id itself (Entity), or a composite tuple of
// other QueryParams (Query2, Query3, Query4). It is a closed set — callers
// outside this package build queries out of the provided constructors rather
// than implementing the interface themselves.
//
// Grounded on arche's generic.go arity family (Add2..Add5, Assign2..Assign5):
// rather than a runtime type-switch dispatcher, each shape is its own
// generic type and the read/write sets and row fetch are resolved at compile
// time through normal generic instantiation.
type QueryParam interface {
	appendReadIDs(ids []ComponentTypeID) []ComponentTypeID
	appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID
	fetch(s *Storage, row int) QueryParam
}

func (e Entity) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID  { return ids }
func (e Entity) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID { return ids }
func (e Entity) fetch(s *Storage, row int) QueryParam                  { return s.EntityAt(row) }

// Read fetches a copy of component T for the current row. Its presence in a
// Query adds T to that query's read set (and, via Stage's conflict check,
// means a parallel stage may run it alongside any other system that only
// reads T).
type Read[T any] struct {
	Value T
}

func (Read[T]) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID {
	return append(ids, ComponentID[T]())
}

func (Read[T]) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID { return ids }

func (Read[T]) fetch(s *Storage, row int) QueryParam {
	i, _ := s.Archetype().IndexOf(ComponentID[T]())
	offset := s.Archetype().OffsetOf(i)
	return Read[T]{Value: *bytesAsPointer[T](s.RowAddr(row, offset))}
}

// Write fetches a live pointer into component T's bytes for the current row,
// valid until the next structural mutation of that row's Storage. Its
// presence in a Query adds T to that query's write set, which Stage.Run uses
// to reject a parallel stage where two systems would write the same
// component concurrently.
type Write[T any] struct {
	Value *T
}

func (Write[T]) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID {
	return append(ids, ComponentID[T]())
}

func (Write[T]) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID {
	return append(ids, ComponentID[T]())
}

func (Write[T]) fetch(s *Storage, row int) QueryParam {
	i, _ := s.Archetype().IndexOf(ComponentID[T]())
	offset := s.Archetype().OffsetOf(i)
	return Write[T]{Value: bytesAsPointer[T](s.RowAddr(row, offset))}
}

// Query2 composes two QueryParams into one, matching rows that satisfy both.
type Query2[A, B QueryParam] struct {
	A A
	B B
}

func (Query2[A, B]) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	ids = a.appendReadIDs(ids)
	ids = b.appendReadIDs(ids)
	return ids
}

func (Query2[A, B]) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	ids = a.appendWriteIDs(ids)
	ids = b.appendWriteIDs(ids)
	return ids
}

func (Query2[A, B]) fetch(s *Storage, row int) QueryParam {
	var a A
	var b B
	return Query2[A, B]{A: a.fetch(s, row).(A), B: b.fetch(s, row).(B)}
}

// Query3 composes three QueryParams into one.
type Query3[A, B, C QueryParam] struct {
	A A
	B B
	C C
}

func (Query3[A, B, C]) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	var c C
	ids = a.appendReadIDs(ids)
	ids = b.appendReadIDs(ids)
	ids = c.appendReadIDs(ids)
	return ids
}

func (Query3[A, B, C]) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	var c C
	ids = a.appendWriteIDs(ids)
	ids = b.appendWriteIDs(ids)
	ids = c.appendWriteIDs(ids)
	return ids
}

func (Query3[A, B, C]) fetch(s *Storage, row int) QueryParam {
	var a A
	var b B
	var c C
	return Query3[A, B, C]{A: a.fetch(s, row).(A), B: b.fetch(s, row).(B), C: c.fetch(s, row).(C)}
}

// Query4 composes four QueryParams into one.
type Query4[A, B, C, D QueryParam] struct {
	A A
	B B
	C C
	D D
}

func (Query4[A, B, C, D]) appendReadIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	var c C
	var d D
	ids = a.appendReadIDs(ids)
	ids = b.appendReadIDs(ids)
	ids = c.appendReadIDs(ids)
	ids = d.appendReadIDs(ids)
	return ids
}

func (Query4[A, B, C, D]) appendWriteIDs(ids []ComponentTypeID) []ComponentTypeID {
	var a A
	var b B
	var c C
	var d D
	ids = a.appendWriteIDs(ids)
	ids = b.appendWriteIDs(ids)
	ids = c.appendWriteIDs(ids)
	ids = d.appendWriteIDs(ids)
	return ids
}

func (Query4[A, B, C, D]) fetch(s *Storage, row int) QueryParam {
	var a A
	var b B
	var c C
	var d D
	return Query4[A, B, C, D]{
		A: a.fetch(s, row).(A),
		B: b.fetch(s, row).(B),
		C: c.fetch(s, row).(C),
		D: d.fetch(s, row).(D),
	}
}

// readIDsOf and writeIDsOf let callers outside this file (cursor.go,
// system.go) derive a
// Query's read/write sets from its type alone, without constructing a Cursor.
func readIDsOf[Q QueryParam]() []ComponentTypeID {
	var q Q
	return q.appendReadIDs(nil)
}

func writeIDsOf[Q QueryParam]() []ComponentTypeID {
	var q Q
	return q.appendWriteIDs(nil)
}
