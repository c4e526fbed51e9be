// Package shape grows connected groups of mesh cells into logo shapes.
//
// A Grower owns the run's random source and grows shapes outward from a seed
// cell with a breadth-first expansion biased by a desirability score. Shapes
// are connected by construction: every cell after the seed is added only when
// it shares an edge with a cell already in the shape.
package shape

import (
	"slices"
)

// Shape is an insertion-ordered, duplicate-free set of cell ids with a fill.
type Shape struct {
	Cells   []int
	Color   string
	Opacity float64

	index map[int]struct{}
}

// New returns an empty shape.
func New(color string, opacity float64) *Shape {
	return &Shape{Color: color, Opacity: opacity, index: make(map[int]struct{})}
}

// reindex rebuilds the lookup table when Cells was assigned directly.
func (s *Shape) reindex() {
	if s.index != nil && len(s.index) == len(s.Cells) {
		return
	}
	s.index = make(map[int]struct{}, len(s.Cells))
	for _, id := range s.Cells {
		s.index[id] = struct{}{}
	}
}

// Add appends id unless it is already present. It reports whether the cell
// was added.
func (s *Shape) Add(id int) bool {
	s.reindex()
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.Cells = append(s.Cells, id)
	return true
}

// Contains reports whether id is part of the shape.
func (s *Shape) Contains(id int) bool {
	s.reindex()
	_, ok := s.index[id]
	return ok
}

// Len returns the number of cells.
func (s *Shape) Len() int { return len(s.Cells) }

// Set returns an immutable snapshot of the shape's cells.
func (s *Shape) Set() CellSet { return NewCellSet(s.Cells...) }

// Intersect returns the cells present in both shapes, in s's order.
func (s *Shape) Intersect(other *Shape) []int {
	var out []int
	for _, id := range s.Cells {
		if other.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// Without returns a copy of s minus the given cells, keeping order and fill.
func (s *Shape) Without(cells CellSet) *Shape {
	out := New(s.Color, s.Opacity)
	for _, id := range s.Cells {
		if !cells.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Clone returns a deep copy.
func (s *Shape) Clone() *Shape {
	out := New(s.Color, s.Opacity)
	for _, id := range s.Cells {
		out.Add(id)
	}
	return out
}

// CellSet is an immutable snapshot of cell ids. The zero value is empty.
type CellSet struct {
	ids map[int]struct{}
}

// NewCellSet returns a set holding ids.
func NewCellSet(ids ...int) CellSet {
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return CellSet{ids: m}
}

// Has reports whether id is in the set.
func (c CellSet) Has(id int) bool {
	_, ok := c.ids[id]
	return ok
}

// Len returns the number of ids.
func (c CellSet) Len() int { return len(c.ids) }

// Union returns a new set holding c's ids and ids. c is left untouched.
func (c CellSet) Union(ids ...int) CellSet {
	m := make(map[int]struct{}, len(c.ids)+len(ids))
	for id := range c.ids {
		m[id] = struct{}{}
	}
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return CellSet{ids: m}
}

// IDs returns the ids in ascending order.
func (c CellSet) IDs() []int {
	out := make([]int, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
