package geom

import (
	"math"
	"testing"
)

func hexagon(size float64) []Point {
	pts := make([]Point, 6)
	for i := range pts {
		pts[i] = Polar(Point{}, size, float64(i)*math.Pi/3)
	}
	return pts
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointEqual(t *testing.T) {
	if !Pt(1, 2).Equal(Pt(1+Epsilon/2, 2-Epsilon/2)) {
		t.Error("points within epsilon should be equal")
	}
	if Pt(1, 2).Equal(Pt(1+2*Epsilon, 2)) {
		t.Error("points beyond epsilon should differ")
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := Triangle{Pt(0, 0), Pt(3, 0), Pt(0, 3)}
	if got := tri.Centroid(); !got.Equal(Pt(1, 1)) {
		t.Errorf("Centroid() = %v, want (1, 1)", got)
	}
}

func TestTriangleContainsPoint(t *testing.T) {
	tri := Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(1, 1), true},
		{"vertex", Pt(0, 0), true},
		{"edge", Pt(2, 0), true},
		{"hypotenuse", Pt(2, 2), true},
		{"outside", Pt(3, 3), false},
		{"negative", Pt(-1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleContainsPointDegenerate(t *testing.T) {
	tri := Triangle{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	if tri.ContainsPoint(Pt(1, 1)) {
		t.Error("degenerate triangle should contain nothing")
	}
}

func TestTriangleCCW(t *testing.T) {
	cw := Triangle{Pt(0, 0), Pt(0, 1), Pt(1, 0)}
	if cw.SignedArea() >= 0 {
		t.Fatalf("fixture should be clockwise, area = %v", cw.SignedArea())
	}
	if got := cw.CCW().SignedArea(); got <= 0 {
		t.Errorf("CCW().SignedArea() = %v, want > 0", got)
	}
	if got := cw.CCW().Area(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Area() = %v, want 0.5", got)
	}
}

func TestAdjacent(t *testing.T) {
	a := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	tests := []struct {
		name   string
		b      Triangle
		shared int
		want   bool
	}{
		{"shared edge", Triangle{Pt(1, 0), Pt(1, 1), Pt(0, 1)}, 2, true},
		{"shared edge reversed order", Triangle{Pt(0, 1), Pt(1, 1), Pt(1, 0)}, 2, true},
		{"shared vertex", Triangle{Pt(1, 0), Pt(2, 0), Pt(2, 1)}, 1, false},
		{"disjoint", Triangle{Pt(5, 5), Pt(6, 5), Pt(5, 6)}, 0, false},
		{"identical", a, 3, false},
		{"within epsilon", Triangle{Pt(1+1e-8, 0), Pt(1, 1), Pt(0, 1-1e-8)}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharedVertices(a, tt.b); got != tt.shared {
				t.Errorf("SharedVertices() = %d, want %d", got, tt.shared)
			}
			if got := Adjacent(a, tt.b); got != tt.want {
				t.Errorf("Adjacent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	hex := hexagon(100)

	t.Run("center", func(t *testing.T) {
		if !PolygonContainsPoint(hex, Pt(0, 0)) {
			t.Error("center should be inside")
		}
	})

	t.Run("vertices", func(t *testing.T) {
		for i, v := range hex {
			if !PolygonContainsPoint(hex, v) {
				t.Errorf("vertex %d %v should be inside", i, v)
			}
		}
	})

	t.Run("edge midpoints", func(t *testing.T) {
		for i := range hex {
			mid := hex[i].Lerp(hex[(i+1)%6], 0.5)
			if !PolygonContainsPoint(hex, mid) {
				t.Errorf("midpoint of edge %d %v should be inside", i, mid)
			}
		}
	})

	t.Run("horizontal edge points", func(t *testing.T) {
		// The top and bottom edges are horizontal; ray casting alone skips them.
		for _, x := range []float64{-40, 0, 40} {
			p := Pt(x, hex[1].Y)
			if !PolygonContainsPoint(hex, p) {
				t.Errorf("point %v on horizontal edge should be inside", p)
			}
		}
	})

	t.Run("outside", func(t *testing.T) {
		for _, p := range []Point{Pt(200, 200), Pt(-200, 0), Pt(0, 90), Pt(101, 0)} {
			if PolygonContainsPoint(hex, p) {
				t.Errorf("point %v should be outside", p)
			}
		}
	})

	t.Run("too few vertices", func(t *testing.T) {
		if PolygonContainsPoint(hex[:2], Pt(0, 0)) {
			t.Error("two-vertex polygon should contain nothing")
		}
	})
}
