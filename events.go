package boson

// StorageEvents is the ambient hook surface an external collaborator (the
// rendering layer, the scene graph) registers against one Storage to observe
// row insert/remove/move without polling the arena. It generalizes the
// teacher's single process-global Config.tableEvents (one event struct
// threaded into every table.Table) into a per-Storage hook, since a caller
// usually only cares about the one archetype backing its renderable entities,
// not a global stream covering every archetype in the World.
//
// All methods are called synchronously, on the goroutine performing the
// mutation, before the mutating World call returns.
type StorageEvents interface {
	// OnInsert fires after a row is appended at index row for entity.
	OnInsert(archetype *Archetype, row int, entity Entity)

	// OnSwapRemove fires after row is removed. If relocated.Entity is
	// non-zero, the entity that used to own relocated.FromRow now owns row.
	OnSwapRemove(archetype *Archetype, row int, removed Entity, relocated moved)
}

// NopStorageEvents implements StorageEvents with no-op methods, for callers
// that want to satisfy the interface without handling every event.
type NopStorageEvents struct{}

func (NopStorageEvents) OnInsert(*Archetype, int, Entity)                {}
func (NopStorageEvents) OnSwapRemove(*Archetype, int, Entity, moved) {}
