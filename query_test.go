package boson

import "testing"

func TestCursorSingleComponentMatchesOnlyOwningArchetype(t *testing.T) {
	w := NewWorld()
	ePos := w.Spawn()
	eBoth := w.Spawn()
	eNeither := w.Spawn()

	if err := Add(w, ePos, Position{X: 1, Y: 1}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if err := Add(w, eBoth, Position{X: 2, Y: 2}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if err := Add(w, eBoth, Velocity{X: 5, Y: 5}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	_ = eNeither

	seen := map[Entity]float64{}
	c := NewCursor[Read[Position]](w)
	for c.Next() {
		seen[c.Entity()] = c.Get().Value.X
	}

	if len(seen) != 2 {
		t.Fatalf("matched %d entities, want 2 (ePos and eBoth)", len(seen))
	}
	if seen[ePos] != 1 || seen[eBoth] != 2 {
		t.Errorf("matched values = %v, want {ePos:1, eBoth:2}", seen)
	}
	if _, ok := seen[eNeither]; ok {
		t.Errorf("entity with no Position should not match Read[Position]")
	}
}

func TestCursorWriteMutatesRowInPlace(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if err := Add(w, e, Position{X: 1, Y: 1}); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	c := NewCursor[Write[Position]](w)
	for c.Next() {
		c.Get().Value.X = 100
	}

	verify := NewCursor[Read[Position]](w)
	if !verify.Next() {
		t.Fatalf("expected one matching row")
	}
	if verify.Get().Value.X != 100 {
		t.Errorf("Position.X after Write mutation = %v, want 100", verify.Get().Value.X)
	}
}

func TestCursorQuery2JoinsAcrossTwoComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if err := Add(w, e, Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if err := Add(w, e, Velocity{X: 1, Y: 2}); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	c := NewCursor[Query2[Write[Position], Read[Velocity]]](w)
	moved := 0
	for c.Next() {
		q := c.Get()
		q.A.Value.X += q.B.Value.X
		q.A.Value.Y += q.B.Value.Y
		moved++
	}
	if moved != 1 {
		t.Fatalf("Query2 matched %d rows, want 1", moved)
	}

	verify := NewCursor[Read[Position]](w)
	verify.Next()
	if got := verify.Get().Value; got != (Position{X: 1, Y: 2}) {
		t.Errorf("Position after one move step = %v, want {1 2}", got)
	}
}

func TestCursorQuery3IncludesEntity(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if err := Add(w, e, Position{X: 3, Y: 4}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if err := Add(w, e, Health{Current: 10, Max: 10}); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	c := NewCursor[Query3[Entity, Read[Position], Read[Health]]](w)
	if !c.Next() {
		t.Fatalf("expected one matching row")
	}
	q := c.Get()
	if q.A != e {
		t.Errorf("Query3.A (Entity) = %v, want %v", q.A, e)
	}
	if q.B.Value.X != 3 {
		t.Errorf("Query3.B (Position) = %v, want X=3", q.B.Value)
	}
	if q.C.Value.Max != 10 {
		t.Errorf("Query3.C (Health) = %v, want Max=10", q.C.Value)
	}
}

func TestCursorNoMatchesYieldsNoRows(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if err := Add(w, e, Velocity{X: 1, Y: 1}); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	c := NewCursor[Read[Position]](w)
	if c.Next() {
		t.Fatalf("expected no matches when no entity carries Position")
	}
}
