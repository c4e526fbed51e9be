package shape

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/hexlogo/mesh"
)

// Mode selects where a shape is seeded and which cells it may claim.
type Mode uint8

const (
	// SeedCenter starts at the cell nearest the mesh center and ignores the
	// used set.
	SeedCenter Mode = iota

	// SeedBoundary starts at the most central free cell touching the used
	// set, so the new shape borders earlier ones. Used cells are excluded.
	SeedBoundary

	// SeedAvoiding starts at the most central free cell. Used cells are
	// excluded.
	SeedAvoiding
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case SeedCenter:
		return "center"
	case SeedBoundary:
		return "boundary"
	case SeedAvoiding:
		return "avoiding"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Request describes one shape to grow.
type Request struct {
	Mode    Mode
	Used    CellSet
	Target  int
	Color   string
	Opacity float64
}

// Grower grows shapes on a mesh. It is not safe for concurrent use: the
// random source belongs to a single generation run.
type Grower struct {
	mesh     *mesh.Mesh
	rng      *rand.Rand
	params   Params
	byCenter []int
	spacing  float64
}

// NewGrower returns a Grower for m drawing randomness from rng.
func NewGrower(m *mesh.Mesh, rng *rand.Rand, opts ...Option) *Grower {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return &Grower{
		mesh:     m,
		rng:      rng,
		params:   p,
		byCenter: m.CellsByDistance(m.Center),
		// Centroids of edge-adjacent equilateral cells sit edge/√3 apart.
		spacing: m.EdgeLength() / math.Sqrt(3),
	}
}

// Mesh returns the mesh shapes are grown on.
func (g *Grower) Mesh() *mesh.Mesh { return g.mesh }

// Params returns the active parameters.
func (g *Grower) Params() Params { return g.params }

// SeedCell picks the first cell of a shape for the given mode. It reports
// false when no eligible cell exists.
func (g *Grower) SeedCell(mode Mode, used CellSet) (int, bool) {
	if len(g.byCenter) == 0 {
		return 0, false
	}

	switch mode {
	case SeedCenter:
		return g.byCenter[0], true
	case SeedBoundary:
		if id, ok := g.boundarySeed(used); ok {
			return id, true
		}
	}

	for _, id := range g.byCenter {
		if !used.Has(id) {
			return id, true
		}
	}
	return 0, false
}

// boundarySeed returns the most central free cell adjacent to a used cell.
func (g *Grower) boundarySeed(used CellSet) (int, bool) {
	for _, id := range g.byCenter {
		if used.Has(id) {
			continue
		}
		for _, n := range g.mesh.Adjacent(id) {
			if used.Has(n) {
				return id, true
			}
		}
	}
	return 0, false
}

// Grow grows a single shape. The result never exceeds req.Target cells and
// is empty when the mesh has no cells, the target is not positive, or no
// seed is available.
func (g *Grower) Grow(req Request) *Shape {
	s := New(req.Color, req.Opacity)
	if g.mesh.CellCount() == 0 || req.Target <= 0 {
		return s
	}

	seed, ok := g.SeedCell(req.Mode, req.Used)
	if !ok {
		return s
	}

	var excluded CellSet
	if req.Mode != SeedCenter {
		excluded = req.Used
	}

	s.Add(seed)
	g.expand(s, req.Target, excluded)

	if s.Len() >= 3 && s.Len() < req.Target && g.rng.Float64() < g.params.SmoothProbability {
		g.Smooth(s, req.Target, excluded)
	}
	return s
}

// expand runs the layered breadth-first growth from the cells already in s.
// Each pop of the frontier counts against a budget of 3×target attempts.
func (g *Grower) expand(s *Shape, target int, excluded CellSet) {
	queue := append([]int(nil), s.Cells...)
	budget := 3 * target

	for attempts := 0; s.Len() < target && len(queue) > 0 && attempts < budget; attempts++ {
		cell := queue[0]
		queue = queue[1:]

		eligible := g.eligibleNeighbors(s, cell, excluded)
		if len(eligible) == 0 {
			continue
		}
		g.rank(s, eligible)

		deferred := false
		for i, n := range eligible {
			if s.Len() >= target {
				break
			}
			if i > 0 && g.rng.Float64() >= g.params.Admit {
				deferred = true
				continue
			}
			s.Add(n)
			queue = append(queue, n)
		}
		if deferred {
			queue = append(queue, cell)
		}
	}
}

// eligibleNeighbors returns the neighbors of cell that s may still claim.
func (g *Grower) eligibleNeighbors(s *Shape, cell int, excluded CellSet) []int {
	var out []int
	for _, n := range g.mesh.Adjacent(cell) {
		if s.Contains(n) || excluded.Has(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}
