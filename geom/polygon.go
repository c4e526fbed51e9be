package geom

import "math"

// PolygonContainsPoint reports whether p lies inside the closed polygon
// described by vertices, boundary included.
//
// Exact vertex hits and points on an edge are resolved before falling back to
// even-odd ray casting, which is unreliable exactly on the boundary.
func PolygonContainsPoint(vertices []Point, p Point) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	for _, v := range vertices {
		if v.Equal(p) {
			return true
		}
	}

	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := vertices[i], vertices[j]
		if math.Abs(vi.Distance(p)+p.Distance(vj)-vi.Distance(vj)) < Epsilon {
			return true
		}
		j = i
	}

	inside := false
	j = n - 1
	for i := 0; i < n; i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
