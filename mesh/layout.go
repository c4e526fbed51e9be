package mesh

import (
	"fmt"
	"math"

	"github.com/gogpu/hexlogo/geom"
)

// LayoutKind tags the subdivision algorithm a Layout uses.
type LayoutKind uint8

const (
	// Legacy24 is the hand-laid 24-cell layout used at density 2:
	// four cells per sector (center, inner ring, bridge, outer).
	Legacy24 LayoutKind = iota

	// Recursive subdivides each sector into density² equiangular cells
	// on a barycentric lattice.
	Recursive
)

// String returns the layout kind name.
func (k LayoutKind) String() string {
	switch k {
	case Legacy24:
		return "legacy24"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("LayoutKind(%d)", k)
	}
}

// Layout selects how the hexagon is split into cells. It is derived from the
// density alone; see LayoutFor.
type Layout struct {
	kind    LayoutKind
	density int
}

// LayoutFor returns the layout for a density, clamping it first.
func LayoutFor(density int) Layout {
	d := ClampDensity(density)
	if d == 2 {
		return Layout{kind: Legacy24, density: d}
	}
	return Layout{kind: Recursive, density: d}
}

// Kind returns the layout variant.
func (l Layout) Kind() LayoutKind { return l.kind }

// Density returns the clamped density the layout was built for.
func (l Layout) Density() int { return l.density }

// ExpectedCellCount returns the number of cells the layout produces.
func (l Layout) ExpectedCellCount() int {
	if l.kind == Legacy24 {
		return 24
	}
	return 6 * l.density * l.density
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("%s(%d)", l.kind, l.density)
}

// triangles emits the cell triangles for a hexagon with the given center,
// circumradius and boundary vertices.
func (l Layout) triangles(center geom.Point, size float64, boundary [6]geom.Point) []geom.Triangle {
	if l.kind == Legacy24 {
		return legacyTriangles(center, size, boundary)
	}

	tris := make([]geom.Triangle, 0, l.ExpectedCellCount())
	for sector := 0; sector < 6; sector++ {
		tris = subdivide(tris, center, boundary[sector], boundary[(sector+1)%6], l.density)
	}
	return tris
}

// subdivide appends n² equiangular triangles covering (p1, p2, p3).
// Lattice point (i, j) sits at barycentric weights (1-u-v, u, v) with
// u = i/n and v = j/n.
func subdivide(tris []geom.Triangle, p1, p2, p3 geom.Point, n int) []geom.Triangle {
	if n <= 1 {
		return append(tris, geom.Triangle{p1, p2, p3})
	}

	points := make([]geom.Point, 0, (n+1)*(n+2)/2)
	rowStart := make([]int, n+1)
	for i := 0; i <= n; i++ {
		rowStart[i] = len(points)
		for j := 0; j <= n-i; j++ {
			u := float64(i) / float64(n)
			v := float64(j) / float64(n)
			w := 1 - u - v
			points = append(points, geom.Point{
				X: p1.X*w + p2.X*u + p3.X*v,
				Y: p1.Y*w + p2.Y*u + p3.Y*v,
			})
		}
	}
	at := func(i, j int) geom.Point { return points[rowStart[i]+j] }

	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			tris = append(tris, geom.Triangle{at(i, j), at(i+1, j), at(i, j+1)})
			if j < n-i-1 {
				tris = append(tris, geom.Triangle{at(i+1, j), at(i+1, j+1), at(i, j+1)})
			}
		}
	}
	return tris
}

// legacyTriangles builds the 24-cell layout from points at 1/3 and 2/3 of the
// radius along each corner angle.
func legacyTriangles(center geom.Point, size float64, boundary [6]geom.Point) []geom.Triangle {
	var inner, middle [6]geom.Point
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		inner[i] = geom.Polar(center, size/3, angle)
		middle[i] = geom.Polar(center, size*2/3, angle)
	}

	tris := make([]geom.Triangle, 0, 24)
	for s := 0; s < 6; s++ {
		next := (s + 1) % 6
		tris = append(tris,
			geom.Triangle{center, inner[s], inner[next]},
			geom.Triangle{inner[s], middle[s], inner[next]},
			geom.Triangle{inner[next], middle[s], middle[next]},
			geom.Triangle{middle[s], boundary[s], middle[next]},
		)
	}
	return tris
}
