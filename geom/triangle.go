package geom

import "math"

// Triangle is an ordered triple of vertices.
type Triangle [3]Point

// Centroid returns the arithmetic mean of the three vertices.
func (t Triangle) Centroid() Point {
	return Mean(t[0], t[1], t[2])
}

// SignedArea returns the signed area; positive when the vertices wind
// counter-clockwise in a y-up frame.
func (t Triangle) SignedArea() float64 {
	return 0.5 * t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Area returns the absolute area.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// CCW returns t with its vertices reordered to wind counter-clockwise.
func (t Triangle) CCW() Triangle {
	if t.SignedArea() < 0 {
		return Triangle{t[0], t[2], t[1]}
	}
	return t
}

// ContainsPoint reports whether p lies inside t or on its boundary, using
// barycentric coordinates. Degenerate triangles contain nothing.
func (t Triangle) ContainsPoint(p Point) bool {
	p1, p2, p3 := t[0], t[1], t[2]

	area := 0.5 * (-p2.Y*p3.X + p1.Y*(-p2.X+p3.X) + p1.X*(p2.Y-p3.Y) + p2.X*p3.Y)
	if area == 0 {
		return false
	}
	s := (p1.Y*p3.X - p1.X*p3.Y + (p3.Y-p1.Y)*p.X + (p1.X-p3.X)*p.Y) / (2 * area)
	u := (p1.X*p2.Y - p1.Y*p2.X + (p1.Y-p2.Y)*p.X + (p2.X-p1.X)*p.Y) / (2 * area)

	return s >= 0 && u >= 0 && 1-s-u >= 0
}

// Edges returns the three edges in vertex order.
func (t Triangle) Edges() [3][2]Point {
	return [3][2]Point{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

// SharedVertices counts the vertices of a that coincide with a vertex of b.
func SharedVertices(a, b Triangle) int {
	n := 0
	for _, v := range a {
		for _, w := range b {
			if v.Equal(w) {
				n++
			}
		}
	}
	return n
}

// Adjacent reports whether a and b share exactly one edge, i.e. exactly two
// vertices.
func Adjacent(a, b Triangle) bool {
	return SharedVertices(a, b) == 2
}
