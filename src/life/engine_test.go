package life

import "testing"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNeighboursProperties(t *testing.T) {
	for _, c := range []Coordinate{{0, 0}, {5, -3}, {-7, -7}, {1000000, -1000000}} {
		nbrs := neighbours(c)
		if len(nbrs) != 8 {
			t.Fatalf("neighbours(%v): got %v cells, want 8", c, len(nbrs))
		}
		seen := NewCellSet(nbrs...)
		if seen.Len() != 8 {
			t.Fatalf("neighbours(%v): duplicates in %v", c, nbrs)
		}
		if seen.Contains(c) {
			t.Fatalf("neighbours(%v) contains the cell itself", c)
		}
		for _, n := range nbrs {
			dx, dy := abs(n.X-c.X), abs(n.Y-c.Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Fatalf("neighbours(%v): %v is not at king-move distance 1", c, n)
			}
		}
	}
}

func TestEmptyGameStaysEmpty(t *testing.T) {
	e := NewEngine(nil)
	if e.String() != "{}" {
		t.Fatalf("empty set renders as %q, want {}", e.String())
	}
	for i := 0; i < 5; i++ {
		e.AdvanceOne()
	}
	if e.LiveCellCount() != 0 {
		t.Fatalf("spontaneous birth from nothing: %v", e)
	}
	if e.Generation() != 5 {
		t.Fatalf("generation = %v, want 5", e.Generation())
	}
}

func TestLonelyPairDies(t *testing.T) {
	e := NewEngine([]Coordinate{{0, 0}, {1, 1}})
	e.AdvanceOne()
	if e.LiveCellCount() != 0 {
		t.Fatalf("cells with one live neighbour must die, got %v", e)
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	//the origin has 4 live neighbours
	e := NewEngine([]Coordinate{{0, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}})
	e.AdvanceOne()
	set := NewCellSet(e.LiveCells()...)
	if set.Contains(Coordinate{0, 0}) {
		t.Fatalf("origin with 4 live neighbours must die, got %v", e)
	}
}

func TestCellWithTwoNeighboursSurvives(t *testing.T) {
	e := NewEngine([]Coordinate{{0, 0}, {1, 1}, {1, 0}})
	e.AdvanceOne()
	set := NewCellSet(e.LiveCells()...)
	if !set.Contains(Coordinate{0, 0}) {
		t.Fatalf("origin with 2 live neighbours must survive, got %v", e)
	}
}

func TestDeadCellWithThreeNeighboursIsBorn(t *testing.T) {
	//the origin is dead but has exactly 3 live neighbours
	e := NewEngine([]Coordinate{{1, 0}, {-1, 0}, {0, 1}})
	e.AdvanceOne()
	set := NewCellSet(e.LiveCells()...)
	if !set.Contains(Coordinate{0, 0}) {
		t.Fatalf("dead origin with 3 live neighbours must be born, got %v", e)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := []Coordinate{{0, 0}, {1, 0}, {-1, 0}}
	vertical := NewCellSet(Coordinate{0, 0}, Coordinate{0, 1}, Coordinate{0, -1})

	e := NewEngine(horizontal)

	e.AdvanceOne()
	if !NewCellSet(e.LiveCells()...).Equal(vertical) {
		t.Fatalf("after one step blinker = %v, want vertical line", e)
	}

	e.AdvanceOne()
	if !NewCellSet(e.LiveCells()...).Equal(NewCellSet(horizontal...)) {
		t.Fatalf("after two steps blinker = %v, want the initial horizontal line", e)
	}
	if e.Generation() != 2 {
		t.Fatalf("generation = %v, want 2", e.Generation())
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	e := NewEngine(block)
	e.AdvanceTo(10)
	if !NewCellSet(e.LiveCells()...).Equal(NewCellSet(block...)) {
		t.Fatalf("block must never change, got %v", e)
	}
}

func TestAdvanceToIsIdempotent(t *testing.T) {
	e := NewEngine([]Coordinate{{0, 0}, {1, 0}, {-1, 0}})
	e.AdvanceTo(3)
	want := e.LiveCells()

	e.AdvanceTo(3) //target already reached, must be a no-op
	if e.Generation() != 3 {
		t.Fatalf("generation = %v, want 3", e.Generation())
	}
	if !coordsEqual(e.LiveCells(), want) {
		t.Fatalf("second AdvanceTo changed the live set")
	}

	e.AdvanceTo(1) //never runs backwards
	if e.Generation() != 3 {
		t.Fatalf("AdvanceTo a passed generation moved the counter to %v", e.Generation())
	}
}

func TestDeterminism(t *testing.T) {
	seed := []Coordinate{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}
	a := NewEngine(seed)
	b := NewEngine(seed)

	a.AdvanceTo(25)
	b.AdvanceTo(25)

	if a.Generation() != b.Generation() {
		t.Fatalf("generations diverged: %v vs %v", a.Generation(), b.Generation())
	}
	if !coordsEqual(a.LiveCells(), b.LiveCells()) {
		t.Fatalf("live sets diverged:\n%v\n%v", a, b)
	}
}

func TestDuplicateSeedsCollapse(t *testing.T) {
	e := NewEngine([]Coordinate{{0, 0}, {0, 0}, {0, 0}, {1, 0}})
	if e.LiveCellCount() != 2 {
		t.Fatalf("duplicate seeds must collapse, got %v cells", e.LiveCellCount())
	}
}

func TestStringRendering(t *testing.T) {
	e := NewEngine([]Coordinate{{1, 0}, {-1, 0}, {0, 1}})
	want := "{(-1,0) , (0,1) , (1,0)}"
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLiveCellsIsASnapshot(t *testing.T) {
	e := NewEngine([]Coordinate{{0, 0}, {1, 0}, {-1, 0}})
	snap := e.LiveCells()
	snap[0] = Coordinate{99, 99} //mutating the snapshot must not reach the engine

	set := NewCellSet(e.LiveCells()...)
	if set.Contains(Coordinate{99, 99}) {
		t.Fatalf("snapshot aliases the internal set")
	}
}
