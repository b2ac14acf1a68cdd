package boson

// removal is produced by Storage.SwapRemove: it carries the archetype of the
// extracted row, the row's raw bytes, and the moved descriptor reporting
// which other entity (if any) was relocated to fill the vacated slot.
//
// Grounded on original_source's Removal/Swap (ecs.rs): remove(id) splices the
// bytes of one component out of the buffer and shrinks the archetype, for
// callers that want the departing component in isolation (World.Remove[T]).
type removal struct {
	archetype Archetype
	data      []byte
	moved     moved
}

// remove splices the bytes belonging to id out of r's buffer, shrinking the
// archetype, and returns those bytes. Returns an error if id is not present.
func (r *removal) remove(id ComponentTypeID) ([]byte, error) {
	i, found := r.archetype.indexOf(id)
	if !found {
		return nil, ErrUnknownComponent{ComponentTypeID: id}
	}
	offset := r.archetype.OffsetOf(i)
	size := r.archetype.sizes[i]

	bytes := make([]byte, size)
	copy(bytes, r.data[offset:offset+size])

	if err := r.archetype.remove(id); err != nil {
		return nil, err
	}
	r.data = append(r.data[:offset], r.data[offset+size:]...)
	return bytes, nil
}
