package boson

import "sort"

// Archetype is the sorted set of component types an entity currently has. Its
// identity (equality/hashing) depends only on the sorted id sequence; the
// parallel size/destructor slices are derived bookkeeping, not part of the
// key.
//
// The empty Archetype (len() == 0) is the canonical "no components" state: it
// is never given a Storage, and an entity with the empty Archetype carries no
// row and no arena address.
type Archetype struct {
	ids         []ComponentTypeID
	sizes       []int
	destructors []destructor
}

// key is the comparable value used to look an Archetype's Storage up in
// World.storages. Archetype itself holds a slice and so cannot be a map key.
type archetypeKey string

func (a *Archetype) key() archetypeKey {
	buf := make([]byte, 0, len(a.ids)*8)
	for _, id := range a.ids {
		buf = append(buf,
			byte(id), byte(id>>8), byte(id>>16), byte(id>>24),
			byte(id>>32), byte(id>>40), byte(id>>48), byte(id>>56),
		)
	}
	return archetypeKey(buf)
}

// emptyArchetype returns the canonical zero-component Archetype.
func emptyArchetype() Archetype {
	return Archetype{}
}

// indexOf performs a binary search for id over the sorted id sequence.
func (a *Archetype) indexOf(id ComponentTypeID) (int, bool) {
	i := sort.Search(len(a.ids), func(i int) bool { return a.ids[i] >= id })
	if i < len(a.ids) && a.ids[i] == id {
		return i, true
	}
	return i, false
}

// IndexOf is the exported form of indexOf, used by callers (e.g. Cursor) that
// need a component's row position within an Archetype's Storage.
func (a *Archetype) IndexOf(id ComponentTypeID) (int, bool) {
	return a.indexOf(id)
}

// add inserts (id, size, destructor) keeping ids sorted, returning
// ErrDuplicateComponent if id is already present.
func (a *Archetype) add(id ComponentTypeID, size int, dtor destructor) error {
	i, found := a.indexOf(id)
	if found {
		return ErrDuplicateComponent{ComponentTypeID: id}
	}
	a.ids = insertAt(a.ids, i, id)
	a.sizes = insertAt(a.sizes, i, size)
	a.destructors = insertAt(a.destructors, i, dtor)
	return nil
}

// remove deletes the slot for id, returning ErrUnknownComponent if absent.
func (a *Archetype) remove(id ComponentTypeID) error {
	i, found := a.indexOf(id)
	if !found {
		return ErrUnknownComponent{ComponentTypeID: id}
	}
	a.ids = removeAt(a.ids, i)
	a.sizes = removeAt(a.sizes, i)
	a.destructors = removeAt(a.destructors, i)
	return nil
}

// OffsetOf returns the byte offset of component slot i: the prefix sum of
// sizes[0:i].
func (a *Archetype) OffsetOf(i int) int {
	offset := 0
	for _, s := range a.sizes[:i] {
		offset += s
	}
	return offset
}

// RowStride returns the total byte width of one row in this Archetype.
func (a *Archetype) RowStride() int {
	total := 0
	for _, s := range a.sizes {
		total += s
	}
	return total
}

// Len returns the number of component types in this Archetype.
func (a *Archetype) Len() int {
	return len(a.ids)
}

// IsEmpty reports whether this Archetype carries zero component types.
func (a *Archetype) IsEmpty() bool {
	return len(a.ids) == 0
}

// IDs returns the sorted component type ids, for callers that need to test
// containment or enumerate an Archetype's shape (e.g. the query vocabulary).
func (a *Archetype) IDs() []ComponentTypeID {
	return a.ids
}

// Contains reports whether id is one of this Archetype's component types.
func (a *Archetype) Contains(id ComponentTypeID) bool {
	_, found := a.indexOf(id)
	return found
}

// clone returns a deep-enough copy of a for use as the basis of a new
// Insertion/Removal (the slices are not shared with the original so later
// add/remove calls don't alias it).
func (a *Archetype) clone() Archetype {
	return Archetype{
		ids:         append([]ComponentTypeID(nil), a.ids...),
		sizes:       append([]int(nil), a.sizes...),
		destructors: append([]destructor(nil), a.destructors...),
	}
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
