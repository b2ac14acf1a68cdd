package boson

// entityOperation is a deferred structural mutation, queued by Add/Remove/
// Despawn when issued against a locked World (one under Cursor iteration) and
// replayed in order once the last lock releases.
//
// Grounded on the teacher's EntityOperation/EntityOperationsQueue
// (operation_queue.go, storage.go): a world-level queue of small command
// values, applied in FIFO order once the owning lock is released, generalized
// here to work against World.storageFor's archetype-keyed registry rather
// than a single Storage's lock bitmask.
type entityOperation interface {
	apply(w *World)
}

// addOperation defers the free function Add[T].
type addOperation[T any] struct {
	entity Entity
	value  T
}

func (op addOperation[T]) apply(w *World) {
	_ = addImmediate(w, op.entity, op.value)
}

// removeOperation defers the free function Remove[T]. The deferred form
// discards the removed value — a caller that needs it must call Remove[T]
// while the world is unlocked.
type removeOperation[T any] struct {
	entity Entity
}

func (op removeOperation[T]) apply(w *World) {
	_, _ = removeImmediate[T](w, op.entity)
}

// despawnOperation defers World.Despawn.
type despawnOperation struct {
	entity Entity
}

func (op despawnOperation) apply(w *World) {
	w.despawnImmediate(op.entity)
}
