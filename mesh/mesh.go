// Package mesh builds the triangular lattice a logo is drawn on: a regular
// hexagon split into equiangular cells with stable integer ids and a
// precomputed shared-edge adjacency.
//
// A Mesh is immutable once Build returns and may be shared freely between
// goroutines.
package mesh

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/hexlogo/geom"
)

// Density bounds. Build clamps into this range.
const (
	MinDensity = 2
	MaxDensity = 8
)

// ErrInvalidDensity is returned by ValidateDensity for densities outside
// [MinDensity, MaxDensity].
var ErrInvalidDensity = errors.New("mesh: invalid density")

// Cell is one triangular element of the mesh.
type Cell struct {
	ID       int
	Vertices [3]geom.Point
	Centroid geom.Point
}

// Triangle returns the cell's vertices as a geom.Triangle.
func (c Cell) Triangle() geom.Triangle {
	return geom.Triangle(c.Vertices)
}

// ContainsPoint reports whether p lies inside the cell or on its boundary.
func (c Cell) ContainsPoint(p geom.Point) bool {
	return c.Triangle().ContainsPoint(p)
}

// IsAdjacent reports whether c and other share exactly one edge.
func (c Cell) IsAdjacent(other Cell) bool {
	return geom.Adjacent(c.Triangle(), other.Triangle())
}

// Mesh is a hexagon subdivided into triangular cells.
type Mesh struct {
	Size     float64
	Density  int
	Center   geom.Point
	Vertices [6]geom.Point

	layout    Layout
	cells     []Cell
	adjacency [][]int
	edge      float64
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	center geom.Point
}

// WithCenter places the hexagon center at c instead of the origin.
func WithCenter(c geom.Point) Option {
	return func(o *buildOptions) {
		o.center = c
	}
}

// ClampDensity restricts d to [MinDensity, MaxDensity].
func ClampDensity(d int) int {
	return min(max(d, MinDensity), MaxDensity)
}

// ValidateDensity returns ErrInvalidDensity when d is out of range. Build
// never rejects; this is for callers that prefer to fail loudly.
func ValidateDensity(d int) error {
	if d < MinDensity || d > MaxDensity {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidDensity, d, MinDensity, MaxDensity)
	}
	return nil
}

// Build constructs the hexagon of circumradius size and subdivides it at the
// given density. Out-of-range densities are clamped.
func Build(size float64, density int, opts ...Option) *Mesh {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	layout := LayoutFor(density)
	m := &Mesh{
		Size:    size,
		Density: layout.Density(),
		Center:  o.center,
		layout:  layout,
	}
	for i := 0; i < 6; i++ {
		m.Vertices[i] = geom.Polar(o.center, size, float64(i)*math.Pi/3)
	}

	tris := layout.triangles(m.Center, size, m.Vertices)
	m.cells = make([]Cell, len(tris))
	var edgeSum float64
	for i, t := range tris {
		m.cells[i] = Cell{ID: i, Vertices: t, Centroid: t.Centroid()}
		for _, e := range t.Edges() {
			edgeSum += e[0].Distance(e[1])
		}
	}
	if len(tris) > 0 {
		m.edge = edgeSum / float64(3*len(tris))
	}
	m.adjacency = buildAdjacency(m.cells)
	return m
}

// buildAdjacency compares every pair of cells once. The mesh is static, so
// this is paid a single time per Build.
func buildAdjacency(cells []Cell) [][]int {
	adj := make([][]int, len(cells))
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			if cells[i].IsAdjacent(cells[j]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	return adj
}

// Layout returns the subdivision variant used for this mesh.
func (m *Mesh) Layout() Layout { return m.layout }

// ExpectedCellCount returns the cell count implied by the layout.
func (m *Mesh) ExpectedCellCount() int { return m.layout.ExpectedCellCount() }

// CellCount returns the number of cells.
func (m *Mesh) CellCount() int { return len(m.cells) }

// Cells returns the cells in id order. The slice must not be modified.
func (m *Mesh) Cells() []Cell { return m.cells }

// Cell returns the cell with the given id.
func (m *Mesh) Cell(id int) (Cell, bool) {
	if id < 0 || id >= len(m.cells) {
		return Cell{}, false
	}
	return m.cells[id], true
}

// Centroid returns the centroid of the cell with the given id.
func (m *Mesh) Centroid(id int) (geom.Point, bool) {
	c, ok := m.Cell(id)
	return c.Centroid, ok
}

// Adjacent returns the ids of cells sharing an edge with id, ascending.
// Unknown ids have no neighbors. The slice must not be modified.
func (m *Mesh) Adjacent(id int) []int {
	if id < 0 || id >= len(m.adjacency) {
		return nil
	}
	return m.adjacency[id]
}

// AreAdjacent reports whether cells a and b share an edge.
func (m *Mesh) AreAdjacent(a, b int) bool {
	for _, n := range m.Adjacent(a) {
		if n == b {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether p lies within the hexagon boundary.
func (m *Mesh) ContainsPoint(p geom.Point) bool {
	return geom.PolygonContainsPoint(m.Vertices[:], p)
}

// CellsByDistance returns all cell ids ordered by centroid distance from p,
// nearest first. Ties keep id order.
func (m *Mesh) CellsByDistance(p geom.Point) []int {
	ids := make([]int, len(m.cells))
	dist := make([]float64, len(m.cells))
	for i, c := range m.cells {
		ids[i] = i
		dist[i] = c.Centroid.Distance(p)
	}
	slices.SortStableFunc(ids, func(a, b int) int {
		return cmp.Compare(dist[a], dist[b])
	})
	return ids
}

// EdgeLength returns the mean edge length over all cells. Growth heuristics
// use it as their unit of distance.
func (m *Mesh) EdgeLength() float64 { return m.edge }
