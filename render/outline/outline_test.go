package outline

import (
	"math"
	"testing"

	"github.com/gogpu/hexlogo/geom"
	"github.com/gogpu/hexlogo/mesh"
)

func signedArea(loop []geom.Point) float64 {
	var a float64
	for i, p := range loop {
		a += p.Cross(loop[(i+1)%len(loop)])
	}
	return a / 2
}

func TestRegions(t *testing.T) {
	m := mesh.Build(100, 2)
	tests := []struct {
		name  string
		cells []int
		want  int
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 1},
		{"adjacent pair", []int{0, 1}, 1},
		{"vertex touch only", []int{0, 8}, 2},
		{"center fan", []int{0, 4, 8, 12, 16, 20}, 1},
		{"unknown ids dropped", []int{-1, 3, 999}, 1},
		{"duplicates", []int{3, 3, 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Regions(m, tt.cells)
			if len(got) != tt.want {
				t.Errorf("Regions(%v) = %v, want %d regions", tt.cells, got, tt.want)
			}
		})
	}
}

func TestLoopsSingleCell(t *testing.T) {
	m := mesh.Build(100, 3)
	for id := range m.CellCount() {
		loops := Loops(m, []int{id})
		if len(loops) != 1 || len(loops[0]) != 3 {
			t.Fatalf("cell %d: loops = %v, want one 3-point loop", id, loops)
		}
		if signedArea(loops[0]) <= 0 {
			t.Fatalf("cell %d: loop is not counter-clockwise", id)
		}
	}
}

func TestLoopsWholeMesh(t *testing.T) {
	// The 24-cell layout leaves the rim notched, so start above it.
	for d := mesh.MinDensity + 1; d <= mesh.MaxDensity; d++ {
		m := mesh.Build(100, d)
		all := make([]int, m.CellCount())
		for i := range all {
			all[i] = i
		}
		loops := Loops(m, all)
		if len(loops) != 1 {
			t.Fatalf("d=%d: got %d loops, want 1", d, len(loops))
		}
		if len(loops[0]) != 6 {
			t.Fatalf("d=%d: outline has %d corners, want 6", d, len(loops[0]))
		}
		want := 3 * math.Sqrt(3) / 2 * 100 * 100
		if got := signedArea(loops[0]); math.Abs(got-want) > 1e-6*want {
			t.Errorf("d=%d: area = %v, want %v", d, got, want)
		}
	}
}

func TestLoopsInnerRing(t *testing.T) {
	m := mesh.Build(100, 2)
	loops := Loops(m, []int{0, 4, 8, 12, 16, 20})
	if len(loops) != 1 || len(loops[0]) != 6 {
		t.Fatalf("loops = %v, want one hexagon", loops)
	}
}

func TestLoopsWithHole(t *testing.T) {
	m := mesh.Build(100, 4)
	hole := m.CellsByDistance(m.Center)[0]
	var cells []int
	for id := range m.CellCount() {
		if id != hole {
			cells = append(cells, id)
		}
	}
	loops := Loops(m, cells)
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want outer and hole", len(loops))
	}
	var outer, inner int
	for _, l := range loops {
		switch {
		case signedArea(l) > 0 && len(l) == 6:
			outer++
		case signedArea(l) < 0 && len(l) == 3:
			inner++
		}
	}
	if outer != 1 || inner != 1 {
		t.Errorf("want one CCW hexagon and one CW triangle, got %v", loops)
	}
}

func TestLoopsVertexTouch(t *testing.T) {
	m := mesh.Build(100, 2)
	loops := Loops(m, []int{0, 8})
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	for _, l := range loops {
		if len(l) != 3 {
			t.Errorf("loop %v, want 3 points", l)
		}
	}
}

func TestSimplify(t *testing.T) {
	square := []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(1, 2), geom.Pt(0, 2), geom.Pt(0, 1),
	}
	got := Simplify(square)
	if len(got) != 4 {
		t.Errorf("Simplify kept %d points, want 4: %v", len(got), got)
	}
	tri := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)}
	if len(Simplify(tri)) != 3 {
		t.Error("triangles are returned unchanged")
	}
}
