package shape

// SizeRange bounds the target cell count of a shape, inclusive.
type SizeRange struct {
	Min, Max int
}

// Pick returns a target drawn uniformly from the range using g's source.
func (g *Grower) Pick(r SizeRange) int {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// GrowBest grows several independent candidates for req and keeps the one
// with the best jittered quality.
func (g *Grower) GrowBest(req Request) *Shape {
	n := max(g.params.Candidates, 2)
	candidates := make([]*Shape, n)
	for i := range candidates {
		candidates[i] = g.Grow(req)
	}
	score := func(s *Shape) float64 { return Evaluate(g.mesh, s).Total }
	return candidates[SelectBest(candidates, score, g.rng, g.params.Jitter)]
}

// Layout grows count shapes. The first is seeded at the mesh center; each
// later shape is seeded on the boundary of the cells used so far or at the
// nearest free cell, chosen per shape by ConnectProbability. Later shapes
// never claim cells of earlier ones. Colors are left empty.
func (g *Grower) Layout(count int, sizes SizeRange, opacity float64) []*Shape {
	return g.Extend(CellSet{}, count, sizes, opacity)
}

// Extend grows count shapes that avoid the cells in used and each other.
// While nothing is used yet the next shape is seeded at the center.
func (g *Grower) Extend(used CellSet, count int, sizes SizeRange, opacity float64) []*Shape {
	shapes := make([]*Shape, 0, max(count, 0))
	for range count {
		target := g.Pick(sizes)
		mode := SeedCenter
		if used.Len() > 0 {
			mode = SeedAvoiding
			if g.rng.Float64() < g.params.ConnectProbability {
				mode = SeedBoundary
			}
		}
		s := g.GrowBest(Request{Mode: mode, Used: used, Target: target, Opacity: opacity})
		used = used.Union(s.Cells...)
		shapes = append(shapes, s)
	}
	return shapes
}

// Overlap grows two shapes from the mesh center without excluding each
// other's cells, so they usually intersect.
func (g *Grower) Overlap(target int, opacity float64) (a, b *Shape) {
	a = g.GrowBest(Request{Mode: SeedCenter, Target: target, Opacity: opacity})
	b = g.GrowBest(Request{Mode: SeedCenter, Target: target, Opacity: opacity})
	return a, b
}

// SplitOverlap returns a and b minus their common cells, followed by a blend
// shape of the common cells when there are any. The blend shape takes
// blendColor and a's opacity.
func SplitOverlap(a, b *Shape, blendColor string) []*Shape {
	common := a.Intersect(b)
	if len(common) == 0 {
		return []*Shape{a.Clone(), b.Clone()}
	}

	overlap := NewCellSet(common...)
	blend := New(blendColor, a.Opacity)
	for _, id := range common {
		blend.Add(id)
	}
	return []*Shape{a.Without(overlap), b.Without(overlap), blend}
}
