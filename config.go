package boson

// Config holds process-wide default configuration, mirroring the teacher's
// global Config used to thread table.TableEvents into every newly built
// table.Table. Here the one ambient knob is the default StorageEvents a
// World installs on each Storage it lazily creates, so a collaborator that
// wants to observe every archetype's row movement doesn't have to reach into
// World internals to register itself against each Storage individually.
var Config config

type config struct {
	defaultStorageEvents StorageEvents
}

// SetDefaultStorageEvents configures the StorageEvents hook installed on
// every Storage a World creates from this point forward. It does not affect
// Storages already created; use World.SetStorageEvents for that.
func (c *config) SetDefaultStorageEvents(events StorageEvents) {
	c.defaultStorageEvents = events
}
