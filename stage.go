package boson

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// stageMode selects how a Stage runs its systems.
type stageMode int

const (
	stageSerial stageMode = iota
	stageParallel
)

// Stage is an ordered (serial) or concurrent (parallel) group of systems run
// together within one Schedule step.
//
// Grounded on original_source's stubbed Stage::serial/Stage::parallel
// (ecs.rs) and, for the concurrency mechanism itself, on the errgroup
// fan-out/join pattern used elsewhere in the retrieved corpus for running a
// fixed set of independent workers and collecting the first error. A
// parallel Stage's conflict check resolves the spec's Open Question toward
// detection: Run returns ErrConflictingWriteSet before any system executes
// if two systems would touch the same component with at least one write.
type Stage struct {
	mode    stageMode
	systems []System
}

// SerialStage returns a Stage whose systems run one after another, in the
// order they were added.
func SerialStage() *Stage {
	return &Stage{mode: stageSerial}
}

// ParallelStage returns a Stage whose systems run concurrently. Run checks
// for write-set conflicts among them before starting any goroutine.
func ParallelStage() *Stage {
	return &Stage{mode: stageParallel}
}

// AddSystem appends sys to the stage and returns the stage, for chaining.
func (s *Stage) AddSystem(sys System) *Stage {
	s.systems = append(s.systems, sys)
	return s
}

// Run executes every system in the stage against w and res. For a parallel
// stage, Run first checks every pair of systems for a write conflict and
// returns ErrConflictingWriteSet without running anything if one exists.
func (s *Stage) Run(w *World, res *Resources) error {
	if s.mode == stageSerial {
		for _, sys := range s.systems {
			sys.run(w, res)
		}
		return nil
	}

	if err := s.checkConflicts(); err != nil {
		return err
	}

	// Hold one World lock across the whole fan-out so the lock count cannot
	// reach zero (and the deferred queue cannot drain) while a sibling system
	// is still fetching or iterating; queued mutations run after every system
	// has joined.
	w.Lock()
	defer w.Unlock()

	g, _ := errgroup.WithContext(context.Background())
	for _, sys := range s.systems {
		sys := sys
		g.Go(func() error {
			sys.run(w, res)
			return nil
		})
	}
	return g.Wait()
}

// checkConflicts reports a conflict for any component that at least one
// system writes and more than one system (read or write) touches — a
// write/write or read/write race once those systems run as goroutines.
func (s *Stage) checkConflicts() error {
	writers := make(map[ComponentTypeID]bool)
	for _, sys := range s.systems {
		for _, id := range sys.writeSet() {
			writers[id] = true
		}
	}

	touchedBy := make(map[ComponentTypeID]int)
	for _, sys := range s.systems {
		touched := make(map[ComponentTypeID]bool)
		for _, id := range sys.readSet() {
			touched[id] = true
		}
		for _, id := range sys.writeSet() {
			touched[id] = true
		}
		for id := range touched {
			if writers[id] {
				touchedBy[id]++
			}
		}
	}

	for id, count := range touchedBy {
		if count > 1 {
			return ErrConflictingWriteSet{ComponentTypeID: id}
		}
	}
	return nil
}
