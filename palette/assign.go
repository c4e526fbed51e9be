package palette

import (
	"slices"

	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/shape"
)

// ShapeGraph returns, for each shape, the sorted indices of the shapes it
// touches. Two shapes touch when a cell of one is adjacent to, or is the same
// as, a cell of the other.
func ShapeGraph(m *mesh.Mesh, shapes []*shape.Shape) [][]int {
	owners := make(map[int][]int)
	for i, s := range shapes {
		for _, c := range s.Cells {
			owners[c] = append(owners[c], i)
		}
	}

	graph := make([][]int, len(shapes))
	for i, s := range shapes {
		seen := make(map[int]bool)
		link := func(cell int) {
			for _, j := range owners[cell] {
				if j != i && !seen[j] {
					seen[j] = true
					graph[i] = append(graph[i], j)
				}
			}
		}
		for _, c := range s.Cells {
			link(c)
			for _, n := range m.Adjacent(c) {
				link(n)
			}
		}
		slices.Sort(graph[i])
	}
	return graph
}

// Assigner colors shapes so that touching shapes never share a color.
type Assigner struct {
	sampler *Sampler
}

// NewAssigner returns an Assigner drawing from s.
func NewAssigner(s *Sampler) *Assigner {
	return &Assigner{sampler: s}
}

// AssignHarmonious colors every shape. It is AssignAround with nothing fixed.
func (a *Assigner) AssignHarmonious(m *mesh.Mesh, shapes []*shape.Shape) {
	a.AssignAround(m, shapes)
}

// AssignAround colors every shape except those at the fixed indices, whose
// colors are kept and respected by their neighbors.
//
// Shapes are visited in descending degree (Welsh–Powell) and each takes the
// first color of a shuffled palette that no colored neighbor uses. When the
// palette runs out a fresh color is generated and added to it.
func (a *Assigner) AssignAround(m *mesh.Mesh, shapes []*shape.Shape, fixed ...int) {
	graph := ShapeGraph(m, shapes)
	done := make([]bool, len(shapes))
	for _, i := range fixed {
		if i >= 0 && i < len(shapes) {
			done[i] = true
		}
	}

	order := make([]int, 0, len(shapes))
	for i := range shapes {
		if !done[i] {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return len(graph[y]) - len(graph[x])
	})

	colors := a.sampler.Shuffled()
	for _, i := range order {
		taken := make(map[string]bool)
		for _, j := range graph[i] {
			if done[j] {
				taken[Normalize(shapes[j].Color)] = true
			}
		}
		chosen := ""
		for _, c := range colors {
			if !taken[c] {
				chosen = c
				break
			}
		}
		if chosen == "" {
			avoid := slices.Clone(colors)
			for c := range taken {
				avoid = append(avoid, c)
			}
			chosen = a.sampler.FreshColor(avoid)
			colors = append(colors, chosen)
		}
		shapes[i].Color = chosen
		done[i] = true
	}
}
