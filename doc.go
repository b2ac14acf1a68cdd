/*
Package boson provides an archetype-based Entity-Component-System (ECS) data
substrate for games and simulations, plus a skeletal system scheduler.

Entities are dense integer identifiers. Components are grouped by Archetype —
the sorted set of component types an entity currently carries — and each
Archetype's rows live in one contiguous Storage. Adding or removing a
component migrates the entity's row from its old Archetype's Storage to its
new one.

Core Concepts:

  - Entity: a dense integer identifier for a single simulated object.
  - Component: any Go type attached to an entity via Add[T].
  - Archetype: the sorted set of component types currently attached to a
    group of entities, keying which Storage holds their rows.
  - World: owns the entity table and the Archetype-to-Storage registry, and
    performs the Add/Remove/Despawn migration algorithm.
  - Query / Cursor: Read[T], Write[T], and Entity compose into a query shape;
    a Cursor walks every row across every Storage matching that shape.
  - System / Stage / Schedule: a System runs a function once per row a Query
    matches; a Stage runs a group of Systems serially or in parallel; a
    Schedule runs an ordered list of Stages.

Basic Usage:

	world := boson.Factory.NewWorld()
	defer world.Close()

	e := world.Spawn()
	_ = boson.Add(world, e, Position{X: 1, Y: 2})
	_ = boson.Add(world, e, Velocity{X: 1, Y: 0})

	move := boson.FactoryNewSystem(func(w *boson.World, e boson.Entity, q boson.Query2[boson.Write[Position], boson.Read[Velocity]], res *boson.Resources) {
		q.A.Value.X += q.B.Value.X
		q.A.Value.Y += q.B.Value.Y
	})

	schedule := boson.Factory.NewSchedule()
	schedule.AddStage(boson.SerialStage().AddSystem(move))

	resources := boson.Factory.NewResources()
	_ = schedule.Run(world, resources)

boson is a standalone data substrate: it does not render, persist, replay, or
network anything. See SPEC_FULL.md for the full contract and its Non-goals.
*/
package boson
