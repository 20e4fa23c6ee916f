package life

import (
	"strings"
	"sync"
	"time"
)

//Status represents the engine state at a concrete moment
type Status struct {
	Generation uint
	LiveCells  int
	StepTime   time.Duration //duration of the last AdvanceOne
}

//Engine owns the live cell set of the current generation and the
//generation counter. The plane is unbounded: cost of a step is
//proportional to the live population, never to any grid area.
//All methods are safe for concurrent use, a single mutex makes every
//advance exclusive with respect to other advances and reads.
type Engine struct {
	mu       sync.Mutex
	live     CellSet
	gen      uint
	stepTime time.Duration
}

//NewEngine creates an engine at generation 0, seeded with the initial
//live cells. Duplicate coordinates collapse to one cell. The engine
//copies the input, callers keep no handle on the internal set.
func NewEngine(initial []Coordinate) *Engine {
	return &Engine{live: NewCellSet(initial...)}
}

//allDeadNeighbours returns every dead cell adjacent to at least one
//live cell: the union of the neighbourhoods of all live cells, minus
//the live cells themselves. Only these candidates can be born next
//generation, so the unbounded plane is never scanned.
func allDeadNeighbours(live CellSet) CellSet {
	dn := NewCellSet()
	for _, c := range live.cells {
		dn = dn.Union(NewCellSet(neighbours(c)...))
	}
	return dn.Diff(live)
}

//liveNeighbourCount returns how many of the 8 neighbours of c are live
func liveNeighbourCount(c Coordinate, live CellSet) int {
	return NewCellSet(neighbours(c)...).Intersect(live).Len()
}

//births returns the dead cells that come alive next generation:
//exactly 3 live neighbours (the B3 part of B3/S2,3)
func births(live CellSet) CellSet {
	born := NewCellSet()
	for _, c := range allDeadNeighbours(live).cells {
		if liveNeighbourCount(c, live) == 3 {
			born.Insert(c)
		}
	}
	return born
}

//survivals returns the live cells that stay alive next generation:
//2 or 3 live neighbours (the S2,3 part of B3/S2,3)
func survivals(live CellSet) CellSet {
	kept := NewCellSet()
	for _, c := range live.cells {
		if n := liveNeighbourCount(c, live); n == 2 || n == 3 {
			kept.Insert(c)
		}
	}
	return kept
}

//AdvanceOne advances the simulation by exactly one generation.
//The whole next set is computed from a fixed snapshot of the current
//one (births and survivals read the same set), then swapped in at once:
//all cells transition simultaneously.
func (e *Engine) AdvanceOne() {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	e.live = births(e.live).Union(survivals(e.live))
	e.gen++
	e.stepTime = time.Since(start)
}

//AdvanceTo advances until the generation counter reaches n
//a no-op when n is the current generation or already passed
func (e *Engine) AdvanceTo(n uint) {
	for e.Generation() < n {
		e.AdvanceOne()
	}
}

//Generation returns the current generation counter
func (e *Engine) Generation() uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

//LiveCellCount returns the number of live cells in the current generation
func (e *Engine) LiveCellCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live.Len()
}

//LiveCells returns a snapshot of the current live cells in ascending
//lexicographic order
func (e *Engine) LiveCells() []Coordinate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live.Cells()
}

//Status returns the engine status at this moment
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{Generation: e.gen, LiveCells: e.live.Len(), StepTime: e.stepTime}
}

//String renders the live set as "{(x1,y1) , (x2,y2) , ... , (xn,yn)}"
//in ascending lexicographic order, the empty set renders as "{}"
func (e *Engine) String() string {
	cells := e.LiveCells()
	if len(cells) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, c := range cells {
		if i != 0 {
			b.WriteString(" , ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("}")
	return b.String()
}
