package life

import "fmt"

//Coordinate identifies a single cell on the unbounded plane
//it is a plain value type: compare with ==, order with Less
type Coordinate struct {
	X, Y int
}

//Less reports whether c precedes o in lexicographic order (X first, then Y)
//this ordering is what the merge based set operations in CellSet rely on,
//so it must stay total and consistent with ==
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

//String renders the coordinate as "(x,y)"
func (c Coordinate) String() string {
	return fmt.Sprintf("(%v,%v)", c.X, c.Y)
}

//neighbours returns the eight cells at king-move distance 1 from c
//the result is already in lexicographic order
func neighbours(c Coordinate) []Coordinate {
	return []Coordinate{
		{c.X - 1, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X - 1, c.Y + 1},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
	}
}
