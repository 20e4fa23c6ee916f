package life

import "sort"

//CellSet is an ordered set of coordinates, the sparse representation of
//one generation: only live cells are stored, the plane itself is unbounded.
//The backing slice is kept sorted (Coordinate.Less) and free of duplicates,
//so iteration in display order is just a walk over the slice and the
//set algebra below runs as linear merges.
type CellSet struct {
	cells []Coordinate
}

//NewCellSet builds a set from arbitrary coordinates
//duplicates collapse to a single entry, order of the input is irrelevant
func NewCellSet(cells ...Coordinate) CellSet {
	s := CellSet{cells: make([]Coordinate, len(cells))}
	copy(s.cells, cells)
	sort.Slice(s.cells, func(i, j int) bool { return s.cells[i].Less(s.cells[j]) })
	s.cells = dedupe(s.cells)
	return s
}

//dedupe removes adjacent duplicates from a sorted slice, in place
func dedupe(cells []Coordinate) []Coordinate {
	out := cells[:0]
	for i, c := range cells {
		if i == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

//search returns the insertion index of c
func (s CellSet) search(c Coordinate) int {
	return sort.Search(len(s.cells), func(i int) bool { return !s.cells[i].Less(c) })
}

//Contains reports whether c is in the set
func (s CellSet) Contains(c Coordinate) bool {
	i := s.search(c)
	return i < len(s.cells) && s.cells[i] == c
}

//Insert adds c keeping the slice sorted, no-op if already present
func (s *CellSet) Insert(c Coordinate) {
	i := s.search(c)
	if i < len(s.cells) && s.cells[i] == c {
		return
	}
	s.cells = append(s.cells, Coordinate{})
	copy(s.cells[i+1:], s.cells[i:])
	s.cells[i] = c
}

//Len returns the number of cells in the set
func (s CellSet) Len() int {
	return len(s.cells)
}

//Cells returns a copy of the cells in ascending lexicographic order
func (s CellSet) Cells() []Coordinate {
	out := make([]Coordinate, len(s.cells))
	copy(out, s.cells)
	return out
}

//Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(o CellSet) bool {
	if len(s.cells) != len(o.cells) {
		return false
	}
	for i, c := range s.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

//Union returns the cells present in s, in o, or in both
func (s CellSet) Union(o CellSet) CellSet {
	out := make([]Coordinate, 0, len(s.cells)+len(o.cells))
	i, j := 0, 0
	for i < len(s.cells) && j < len(o.cells) {
		switch {
		case s.cells[i].Less(o.cells[j]):
			out = append(out, s.cells[i])
			i++
		case o.cells[j].Less(s.cells[i]):
			out = append(out, o.cells[j])
			j++
		default:
			out = append(out, s.cells[i])
			i++
			j++
		}
	}
	out = append(out, s.cells[i:]...)
	out = append(out, o.cells[j:]...)
	return CellSet{cells: out}
}

//Diff returns the cells present in s but not in o
func (s CellSet) Diff(o CellSet) CellSet {
	out := make([]Coordinate, 0, len(s.cells))
	i, j := 0, 0
	for i < len(s.cells) && j < len(o.cells) {
		switch {
		case s.cells[i].Less(o.cells[j]):
			out = append(out, s.cells[i])
			i++
		case o.cells[j].Less(s.cells[i]):
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, s.cells[i:]...)
	return CellSet{cells: out}
}

//Intersect returns the cells present in both s and o
func (s CellSet) Intersect(o CellSet) CellSet {
	out := make([]Coordinate, 0)
	i, j := 0, 0
	for i < len(s.cells) && j < len(o.cells) {
		switch {
		case s.cells[i].Less(o.cells[j]):
			i++
		case o.cells[j].Less(s.cells[i]):
			j++
		default:
			out = append(out, s.cells[i])
			i++
			j++
		}
	}
	return CellSet{cells: out}
}
