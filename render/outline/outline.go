// Package outline turns a set of mesh cells into closed boundary loops.
//
// Renderers fill each shape as one path. The path is built from the cell
// edges that are not shared by two cells of the shape, stitched into loops
// that follow the counter-clockwise winding of the cells. Holes come out
// wound the other way, so even-odd and nonzero filling agree.
package outline

import (
	"math"
	"slices"

	"github.com/gogpu/hexlogo/geom"
	"github.com/gogpu/hexlogo/mesh"
)

// Regions splits cells into groups connected by mesh adjacency. Groups keep
// the order of their first cell in cells; unknown ids and duplicates are
// dropped.
func Regions(m *mesh.Mesh, cells []int) [][]int {
	in := make(map[int]bool, len(cells))
	for _, id := range cells {
		if id >= 0 && id < m.CellCount() {
			in[id] = true
		}
	}

	var regions [][]int
	seen := make(map[int]bool, len(in))
	for _, start := range cells {
		if !in[start] || seen[start] {
			continue
		}
		seen[start] = true
		region := []int{start}
		for i := 0; i < len(region); i++ {
			for _, n := range m.Adjacent(region[i]) {
				if in[n] && !seen[n] {
					seen[n] = true
					region = append(region, n)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// edge is a directed edge between two canonical vertex indices.
type edge struct {
	from, to int
}

// vertexIndex merges points that are equal within geom.Epsilon.
type vertexIndex struct {
	points []geom.Point
}

func (v *vertexIndex) id(p geom.Point) int {
	for i, q := range v.points {
		if q.Equal(p) {
			return i
		}
	}
	v.points = append(v.points, p)
	return len(v.points) - 1
}

// Loops returns the closed boundary polylines of cells. Each loop lists its
// corners once, without repeating the first point, and collinear points
// along a straight side are dropped.
func Loops(m *mesh.Mesh, cells []int) [][]geom.Point {
	var vi vertexIndex
	var edges []edge
	count := make(map[[2]int]int)
	for _, id := range cells {
		c, ok := m.Cell(id)
		if !ok {
			continue
		}
		t := c.Triangle().CCW()
		var idx [3]int
		for i, p := range t {
			idx[i] = vi.id(p)
		}
		for i := range 3 {
			e := edge{from: idx[i], to: idx[(i+1)%3]}
			edges = append(edges, e)
			count[undirected(e)]++
		}
	}

	out := make(map[int][]edge)
	var boundary []edge
	for _, e := range edges {
		if count[undirected(e)] == 1 {
			boundary = append(boundary, e)
			out[e.from] = append(out[e.from], e)
		}
	}

	used := make(map[edge]bool, len(boundary))
	var loops [][]geom.Point
	for _, start := range boundary {
		if used[start] {
			continue
		}
		var ring []int
		cur := start
		for {
			used[cur] = true
			ring = append(ring, cur.from)
			if cur.to == start.from {
				break
			}
			next, ok := nextEdge(out[cur.to], used)
			if !ok {
				break
			}
			cur = next
		}
		loop := make([]geom.Point, len(ring))
		for i, id := range ring {
			loop[i] = vi.points[id]
		}
		if loop = Simplify(loop); len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

func undirected(e edge) [2]int {
	if e.from > e.to {
		return [2]int{e.to, e.from}
	}
	return [2]int{e.from, e.to}
}

func nextEdge(candidates []edge, used map[edge]bool) (edge, bool) {
	for _, e := range candidates {
		if !used[e] {
			return e, true
		}
	}
	return edge{}, false
}

// Simplify removes points that lie on the straight line between their
// neighbors in a closed loop.
func Simplify(loop []geom.Point) []geom.Point {
	if len(loop) < 4 {
		return loop
	}
	out := slices.Clone(loop)
	for changed := true; changed && len(out) > 3; {
		changed = false
		for i := 0; i < len(out) && len(out) > 3; i++ {
			prev := out[(i+len(out)-1)%len(out)]
			next := out[(i+1)%len(out)]
			a, b := out[i].Sub(prev), next.Sub(out[i])
			if math.Abs(a.Cross(b)) <= geom.Epsilon*a.Length()*b.Length() {
				out = slices.Delete(out, i, i+1)
				changed = true
				i--
			}
		}
	}
	return out
}
