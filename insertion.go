package boson

import "reflect"

// insertion stages a new row for an archetype before it is appended to a
// Storage. It holds the archetype the row will belong to, the entity the row
// is for, and the row's raw bytes so far; after every call the byte buffer's
// length equals the archetype's row stride, per the spec invariant.
//
// Grounded directly on original_source's Insertion (ecs.rs): add<T> extends
// the archetype by T, computes T's sorted position and byte offset, and
// splices value's bytes into the buffer at that offset, relinquishing the
// caller's ownership of value without running its destructor (value's bytes
// are now owned by the insertion, and ultimately by the Storage it is
// inserted into).
type insertion struct {
	archetype Archetype
	entity    Entity
	data      []byte
}

// newInsertion starts an insertion from an existing (archetype, data) pair —
// used when migrating an entity's current row (via removal) into a grown or
// shrunk archetype, as opposed to building a row from nothing.
func newInsertion(entity Entity, archetype Archetype, data []byte) insertion {
	return insertion{entity: entity, archetype: archetype, data: data}
}

// add splices value's bytes into the insertion's buffer at the sorted
// position for T's ComponentTypeID, extending the archetype. Returns
// ErrDuplicateComponent if the archetype already carries T.
func insertionAdd[T any](ins *insertion, value T) error {
	id := ComponentID[T]()
	size := sizeOf(reflect.TypeFor[T]())
	dtor := destructorFor[T](id)

	if err := ins.archetype.add(id, size, dtor); err != nil {
		return err
	}
	i, _ := ins.archetype.indexOf(id)
	offset := ins.archetype.OffsetOf(i)

	bytes := valueToBytes(value)
	buf := make([]byte, 0, len(ins.data)+len(bytes))
	buf = append(buf, ins.data[:offset]...)
	buf = append(buf, bytes...)
	buf = append(buf, ins.data[offset:]...)
	ins.data = buf
	return nil
}
