package boson

import "sync"

// World owns one entity table and the mapping from Archetype to Storage. It
// is the public orchestration point for the migration algorithm described in
// SPEC_FULL.md §4.4: Add/Remove swap a row out of its source Storage, extend
// or shrink it via an insertion/removal builder, and insert it into the
// destination Storage, fixing up both the migrated entity's slot and any
// entity relocated by the source swap-remove.
//
// A World is single-threaded by contract (§5): every method below assumes
// exclusive access. The Lock/Unlock pair exists only to support the
// fetch-then-call discipline a Cursor-driven system needs (see cursor.go,
// stage.go) — mutations attempted while the world is locked are queued and
// replayed once the last lock is released, mirroring the teacher's
// per-Storage lock bitmask generalized to one lock count per World (since a
// single migration can touch two archetypes' storages at once).
type World struct {
	entities entityTable
	storages map[archetypeKey]*Storage
	order    []*Storage

	lockMu    sync.Mutex
	lockCount int
	queue     []entityOperation
}

// NewWorld constructs an empty World.
func NewWorld() *World {
	return &World{storages: make(map[archetypeKey]*Storage)}
}

// Spawn allocates a new Entity with no components (the empty Archetype). It
// never touches a Storage, so — unlike Add/Remove/Despawn — it is never
// deferred by a world lock.
func (w *World) Spawn() Entity {
	return w.entities.spawn()
}

// Alive reports whether e currently refers to a live entity.
func (w *World) Alive(e Entity) bool {
	_, ok := w.entities.get(e)
	return ok
}

// Despawn clears e's slot and pushes e onto the free list, then runs every
// destructor in its drop-table against the row's current bytes before the row
// is swap-removed. Despawning an unknown or already-despawned entity is
// a silent no-op, per the spec's Open Question resolution.
func (w *World) Despawn(e Entity) {
	if w.locked() {
		w.enqueue(despawnOperation{entity: e})
		return
	}
	w.despawnImmediate(e)
}

func (w *World) despawnImmediate(e Entity) {
	slot, ok := w.entities.despawn(e)
	if !ok {
		return
	}
	if slot.storage == nil {
		return
	}

	arch := slot.storage.Archetype()
	for i, dtor := range arch.destructors {
		if dtor == nil {
			continue
		}
		offset := arch.OffsetOf(i)
		addr := slot.storage.RowAddr(slot.row, offset)
		dtor(addr)
	}

	removedRow := slot.row
	_, mv := slot.storage.SwapRemove(removedRow)
	w.fixupMoved(mv, removedRow)
}

// Close despawns every still-live entity, running all destructors, so a
// World that is released without explicit per-entity despawn still frees
// every component resource — mirroring the original Rust core's `Drop for
// World` implementation.
func (w *World) Close() {
	for _, e := range w.entities.liveEntities() {
		w.despawnImmediate(e)
	}
}

// Add attaches value as a component of type T to e. It is a no-op if e is
// unknown or despawned, and returns ErrDuplicateComponent if e already
// carries a T (see DESIGN.md for why this implementation rejects rather than
// overwrites or replaces).
func Add[T any](w *World, e Entity, value T) error {
	if w.locked() {
		w.enqueue(addOperation[T]{entity: e, value: value})
		return nil
	}
	return addImmediate(w, e, value)
}

func addImmediate[T any](w *World, e Entity, value T) error {
	slot, ok := w.entities.get(e)
	if !ok {
		return nil
	}
	id := ComponentID[T]()

	if slot.storage == nil {
		ins := newInsertion(e, emptyArchetype(), nil)
		if err := insertionAdd(&ins, value); err != nil {
			return err
		}
		sto := w.storageFor(ins.archetype)
		row := sto.Insert(ins.data, e)
		slot.storage = sto
		slot.row = row
		return nil
	}

	if slot.storage.Archetype().Contains(id) {
		return ErrDuplicateComponent{ComponentTypeID: id}
	}

	oldRow := slot.row
	oldStorage := slot.storage
	data, mv := oldStorage.SwapRemove(oldRow)
	w.fixupMoved(mv, oldRow)

	ins := newInsertion(e, oldStorage.archetype.clone(), data)
	if err := insertionAdd(&ins, value); err != nil {
		// Structural: we already checked for the duplicate above, so this
		// can only happen if the archetype was corrupted elsewhere.
		panic(err)
	}

	newStorage := w.storageFor(ins.archetype)
	newRow := newStorage.Insert(ins.data, e)
	slot.storage = newStorage
	slot.row = newRow
	return nil
}

// Remove detaches the component of type T from e, if present, returning it
// and true. It is a no-op returning (zero, false) if e is unknown, despawned,
// or does not currently carry a T.
func Remove[T any](w *World, e Entity) (T, bool) {
	var zero T
	if w.locked() {
		w.enqueue(removeOperation[T]{entity: e})
		return zero, false
	}
	return removeImmediate[T](w, e)
}

func removeImmediate[T any](w *World, e Entity) (T, bool) {
	var zero T
	slot, ok := w.entities.get(e)
	if !ok || slot.storage == nil {
		return zero, false
	}
	id := ComponentID[T]()
	if !slot.storage.Archetype().Contains(id) {
		return zero, false
	}

	oldRow := slot.row
	oldStorage := slot.storage
	data, mv := oldStorage.SwapRemove(oldRow)
	w.fixupMoved(mv, oldRow)

	rem := removal{archetype: oldStorage.archetype.clone(), data: data, moved: mv}
	bytes, err := rem.remove(id)
	if err != nil {
		panic(err)
	}

	if rem.archetype.IsEmpty() {
		slot.storage = nil
		slot.row = 0
	} else {
		ins := newInsertion(e, rem.archetype, rem.data)
		newStorage := w.storageFor(ins.archetype)
		newRow := newStorage.Insert(ins.data, e)
		slot.storage = newStorage
		slot.row = newRow
	}

	return bytesToValue[T](bytes), true
}

// fixupMoved updates the relocated entity's slot after a SwapRemove(row)
// call: if mv.Entity is non-zero, that entity's data now lives at `row`
// (the index SwapRemove was called with), having been copied there from
// mv.FromRow.
func (w *World) fixupMoved(mv moved, row int) {
	if mv.Entity == 0 {
		return
	}
	if s, ok := w.entities.get(mv.Entity); ok {
		s.row = row
	}
}

// storageFor returns the Storage for archetype, creating it (with the
// configured default StorageEvents hook) on first use. archetype must not be
// empty — the empty archetype never has a Storage.
func (w *World) storageFor(archetype Archetype) *Storage {
	if archetype.IsEmpty() {
		panic("boson: attempted to create a Storage for the empty archetype")
	}
	key := archetype.key()
	if sto, ok := w.storages[key]; ok {
		return sto
	}
	sto := newStorage(archetype)
	sto.SetEvents(Config.defaultStorageEvents)
	w.storages[key] = sto
	w.order = append(w.order, sto)
	return sto
}

// SetStorageEvents installs events on the Storage backing archetype, creating
// that Storage (empty) if it does not exist yet.
func (w *World) SetStorageEvents(archetype Archetype, events StorageEvents) {
	w.storageFor(archetype).SetEvents(events)
}

// Storages returns every Storage this World has created, in creation order.
// Used by Cursor to enumerate archetypes matching a query.
func (w *World) Storages() []*Storage {
	return w.order
}

func (w *World) locked() bool {
	w.lockMu.Lock()
	defer w.lockMu.Unlock()
	return w.lockCount > 0
}

// Lock marks the World as under exclusive iteration (e.g. by a Cursor) so
// that structural mutations (Add/Remove/Despawn) issued while it is held are
// deferred instead of invalidating in-flight row addresses. Lock/Unlock
// nest: the queue only drains when the last Unlock brings the count to zero.
// A system's whole run holds one such lock for its entire duration (see
// Cursor.Initialize/Reset), so concurrent systems in a parallel Stage each
// contribute their own nested lock rather than racing on the count.
func (w *World) Lock() {
	w.lockMu.Lock()
	w.lockCount++
	w.lockMu.Unlock()
}

// Unlock releases one Lock. If this was the last outstanding lock, every
// deferred mutation runs now, in the order it was queued.
func (w *World) Unlock() {
	w.lockMu.Lock()
	if w.lockCount == 0 {
		w.lockMu.Unlock()
		panic("boson: World.Unlock called without a matching Lock")
	}
	w.lockCount--
	drain := w.lockCount == 0
	w.lockMu.Unlock()
	if drain {
		w.drainQueue()
	}
}

func (w *World) enqueue(op entityOperation) {
	w.lockMu.Lock()
	w.queue = append(w.queue, op)
	w.lockMu.Unlock()
}

// drainQueue runs every deferred mutation queued while the World was locked.
// Called only by the Unlock that brings the lock count to zero, after
// releasing lockMu: each op.apply runs unlocked, exactly as if the caller
// had invoked it directly once no Cursor held the World open.
func (w *World) drainQueue() {
	w.lockMu.Lock()
	ops := w.queue
	w.queue = nil
	w.lockMu.Unlock()
	for _, op := range ops {
		op.apply(w)
	}
}
