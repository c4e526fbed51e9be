package shape

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/hexlogo/geom"
)

// RadiusFactor scales sqrt(cells) into the expected shape radius, measured
// in centroid spacings.
const RadiusFactor = 1.2

// adjacencyTerm rewards candidates that would close a smooth edge.
func adjacencyTerm(neighbors int) float64 {
	switch neighbors {
	case 0:
		return 0
	case 1:
		return 0.5
	case 2:
		return 1
	default:
		return 0.7
	}
}

// centroid returns the mean of the centroids of s's cells.
func (g *Grower) centroid(s *Shape) geom.Point {
	var sum geom.Point
	n := 0
	for _, id := range s.Cells {
		if c, ok := g.mesh.Centroid(id); ok {
			sum = sum.Add(c)
			n++
		}
	}
	if n == 0 {
		return g.mesh.Center
	}
	return sum.Div(float64(n))
}

// expectedRadius is sqrt(size)·RadiusFactor centroid spacings.
func (g *Grower) expectedRadius(size int) float64 {
	r := math.Sqrt(float64(max(size, 1))) * RadiusFactor * g.spacing
	if r <= 0 {
		return 1
	}
	return r
}

// Score returns the desirability of adding candidate to s, in [0, 1] when the
// weights sum to one. It is deterministic.
func (g *Grower) Score(s *Shape, candidate int) float64 {
	p, ok := g.mesh.Centroid(candidate)
	if !ok {
		return 0
	}

	neighbors := 0
	for _, n := range g.mesh.Adjacent(candidate) {
		if s.Contains(n) {
			neighbors++
		}
	}

	size := s.Len()
	radial, balance := 1.0, 1.0
	if size > 0 {
		center := g.centroid(s)
		r := g.expectedRadius(size)

		d := p.Distance(center)
		radial = 1 / (1 + math.Abs(d-r)/r)

		moved := center.Mul(float64(size)).Add(p).Div(float64(size + 1))
		balance = 1 - min(1, moved.Distance(center)/r)
	}

	w := g.params.Weights
	return w.Adjacency*adjacencyTerm(neighbors) + w.Radial*radial + w.Balance*balance
}

// rank orders candidates by score plus uniform noise, best first.
func (g *Grower) rank(s *Shape, candidates []int) {
	keys := make(map[int]float64, len(candidates))
	for _, c := range candidates {
		keys[c] = g.Score(s, c) + g.params.Randomness*g.rng.Float64()
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		return cmp.Compare(keys[b], keys[a])
	})
}

// Smooth fills concave notches along the boundary of s. A notch is a free
// cell wedged between two or more boundary cells of s. Notches are ranked by
// desirability and a random-length prefix of them is admitted, never
// exceeding target.
func (g *Grower) Smooth(s *Shape, target int, excluded CellSet) {
	if s.Len() < 3 || s.Len() >= target {
		return
	}

	boundary := g.boundaryCells(s)
	var notches []int
	seen := make(map[int]struct{})
	for _, id := range s.Cells {
		if _, ok := boundary[id]; !ok {
			continue
		}
		for _, ext := range g.mesh.Adjacent(id) {
			if _, dup := seen[ext]; dup || s.Contains(ext) || excluded.Has(ext) {
				continue
			}
			seen[ext] = struct{}{}
			touching := 0
			for _, n := range g.mesh.Adjacent(ext) {
				if _, ok := boundary[n]; ok {
					touching++
				}
			}
			if touching >= 2 {
				notches = append(notches, ext)
			}
		}
	}
	if len(notches) == 0 {
		return
	}

	scores := make(map[int]float64, len(notches))
	for _, c := range notches {
		scores[c] = g.Score(s, c)
	}
	slices.SortStableFunc(notches, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	take := 1 + g.rng.IntN(len(notches))
	for _, c := range notches[:take] {
		if s.Len() >= target {
			break
		}
		s.Add(c)
	}
}

// boundaryCells returns the cells of s with fewer than three neighbors
// inside s.
func (g *Grower) boundaryCells(s *Shape) map[int]struct{} {
	out := make(map[int]struct{})
	for _, id := range s.Cells {
		inside := 0
		for _, n := range g.mesh.Adjacent(id) {
			if s.Contains(n) {
				inside++
			}
		}
		if inside < 3 {
			out[id] = struct{}{}
		}
	}
	return out
}
