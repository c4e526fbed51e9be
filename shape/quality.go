package shape

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/hexlogo/geom"
	"github.com/gogpu/hexlogo/mesh"
)

// Quality weights.
const (
	CompactnessWeight = 0.4
	SmoothnessWeight  = 0.4
	BalanceWeight     = 0.2
)

// Quality holds the aesthetic metrics of a grown shape. Every field is in
// [0, 1]; higher is better.
type Quality struct {
	// Compactness is 4π·area / perimeter², the isoperimetric quotient.
	Compactness float64
	// Smoothness is the fraction of boundary cells not bordering a notch,
	// a free cell wedged between two or more shape cells.
	Smoothness float64
	// Balance is 1 minus the normalized variance of cell distances from the
	// shape centroid.
	Balance float64
	// Total is the weighted sum of the three metrics.
	Total float64
}

// Evaluate scores s on m. An empty shape scores zero.
func Evaluate(m *mesh.Mesh, s *Shape) Quality {
	if s.Len() == 0 {
		return Quality{}
	}
	q := Quality{
		Compactness: compactness(m, s),
		Smoothness:  smoothness(m, s),
		Balance:     balance(m, s),
	}
	q.Total = CompactnessWeight*q.Compactness + SmoothnessWeight*q.Smoothness + BalanceWeight*q.Balance
	return q
}

func compactness(m *mesh.Mesh, s *Shape) float64 {
	var area, perimeter float64
	for _, id := range s.Cells {
		c, ok := m.Cell(id)
		if !ok {
			continue
		}
		tri := c.Triangle()
		area += tri.Area()
		for _, e := range tri.Edges() {
			perimeter += e[0].Distance(e[1])
		}
		for _, n := range m.Adjacent(id) {
			if !s.Contains(n) {
				continue
			}
			other, _ := m.Cell(n)
			perimeter -= sharedEdgeLength(tri, other.Triangle())
		}
	}
	if perimeter <= 0 {
		return 0
	}
	return min(1, 4*math.Pi*area/(perimeter*perimeter))
}

// sharedEdgeLength returns the length of the edge a and b have in common, or
// zero.
func sharedEdgeLength(a, b geom.Triangle) float64 {
	var shared []geom.Point
	for _, v := range a {
		for _, w := range b {
			if v.Equal(w) {
				shared = append(shared, v)
				break
			}
		}
	}
	if len(shared) != 2 {
		return 0
	}
	return shared[0].Distance(shared[1])
}

func smoothness(m *mesh.Mesh, s *Shape) float64 {
	boundary := 0
	notched := 0
	for _, id := range s.Cells {
		adj := m.Adjacent(id)
		inside := 0
		for _, n := range adj {
			if s.Contains(n) {
				inside++
			}
		}
		if inside == 3 {
			continue
		}
		boundary++
		for _, n := range adj {
			if !s.Contains(n) && shapeNeighbors(m, s, n) >= 2 {
				notched++
				break
			}
		}
	}
	if boundary == 0 {
		return 1
	}
	return 1 - float64(notched)/float64(boundary)
}

func shapeNeighbors(m *mesh.Mesh, s *Shape, id int) int {
	n := 0
	for _, adj := range m.Adjacent(id) {
		if s.Contains(adj) {
			n++
		}
	}
	return n
}

func balance(m *mesh.Mesh, s *Shape) float64 {
	pts := make([]geom.Point, 0, s.Len())
	for _, id := range s.Cells {
		if c, ok := m.Centroid(id); ok {
			pts = append(pts, c)
		}
	}
	if len(pts) < 2 {
		return 1
	}
	center := geom.Mean(pts...)

	var sum, sumSq float64
	for _, p := range pts {
		d := p.Distance(center)
		sum += d
		sumSq += d * d
	}
	n := float64(len(pts))
	mean := sum / n
	if mean == 0 {
		return 1
	}
	variance := sumSq/n - mean*mean
	return 1 - min(1, max(variance, 0)/(mean*mean))
}

// SelectBest returns the index of the candidate with the highest score after
// adding uniform noise in [-jitter, jitter] drawn from rng. A nil rng or zero
// jitter selects greedily; ties keep the earliest candidate. It returns -1
// for an empty slice.
func SelectBest[T any](candidates []T, score func(T) float64, rng *rand.Rand, jitter float64) int {
	best := -1
	bestScore := math.Inf(-1)
	for i, c := range candidates {
		v := score(c)
		if rng != nil && jitter > 0 {
			v += (rng.Float64()*2 - 1) * jitter
		}
		if v > bestScore {
			best, bestScore = i, v
		}
	}
	return best
}
