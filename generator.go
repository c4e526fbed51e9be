package hexlogo

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/palette"
	"github.com/gogpu/hexlogo/shape"
)

// Logo is the result of one generation run.
type Logo struct {
	Mesh   *mesh.Mesh
	Shapes []*shape.Shape
	Seed   uint64 // seed actually used, also for unseeded runs
	Config Config // normalized, with Seed set
}

// Generator runs the mesh, growth and color engines for one Config.
// A Generator holds no state between runs and may be reused.
type Generator struct {
	cfg Config
}

// New returns a Generator for DefaultConfig with opts applied. The result
// is normalized, so out-of-range values are clamped rather than rejected.
func New(opts ...Option) *Generator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg.Normalize()}
}

// Config returns the normalized configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// SizeRangeFor returns the per-shape target range for a mesh of cells cells
// split among shapes shapes.
//
// Density 2 meshes use [2, min(5, cells/shapes)]; denser meshes use 1% to 5%
// of the cell count. The upper bound always exceeds the lower one.
func SizeRangeFor(density, cells, shapes int) shape.SizeRange {
	shapes = max(shapes, 1)
	var lo, hi int
	if density <= mesh.MinDensity {
		lo = 2
		hi = min(5, cells/shapes)
	} else {
		lo = int(math.Round(float64(cells) * 0.01))
		hi = int(math.Round(float64(cells) * 0.05))
	}
	return shape.SizeRange{Min: lo, Max: max(hi, lo+1)}
}

// Generate runs one generation pass. It never fails: every input has been
// clamped by New.
func (g *Generator) Generate() *Logo {
	cfg := g.cfg
	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	cfg.Seed = &seed
	rng := rand.New(rand.NewPCG(seed, seed))
	log := Logger()

	m := mesh.Build(cfg.Size, cfg.Density)
	log.Debug("hexlogo: mesh built",
		"layout", m.Layout().String(),
		"cells", m.CellCount(),
		"seed", seed)

	grower := shape.NewGrower(m, rng)
	sampler := palette.NewSampler(cfg.Theme, rng)
	assigner := palette.NewAssigner(sampler)
	sizes := SizeRangeFor(cfg.Density, m.CellCount(), cfg.Shapes)

	var shapes []*shape.Shape
	if cfg.Overlap && cfg.Shapes >= 2 {
		shapes = overlapShapes(m, grower, sampler, assigner, cfg, sizes)
	} else {
		shapes = grower.Layout(cfg.Shapes, sizes, cfg.Opacity)
		assigner.AssignHarmonious(m, shapes)
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		for i, s := range shapes {
			log.Debug("hexlogo: shape",
				"index", i,
				"cells", s.Len(),
				"color", s.Color,
				"quality", shape.Evaluate(m, s).Total)
		}
	}
	return &Logo{Mesh: m, Shapes: shapes, Seed: seed, Config: cfg}
}

// overlapShapes grows two intersecting shapes, splits off their common cells
// as a blend shape and fills up to cfg.Shapes with shapes that avoid them.
func overlapShapes(m *mesh.Mesh, grower *shape.Grower, sampler *palette.Sampler,
	assigner *palette.Assigner, cfg Config, sizes shape.SizeRange) []*shape.Shape {
	a, b := grower.Overlap(sizes.Max, cfg.Opacity)
	c1, c2, blend := sampler.ColorsWithBlend()
	a.Color, b.Color = c1, c2

	shapes := shape.SplitOverlap(a, b, blend)
	fixed := make([]int, len(shapes))
	var used shape.CellSet
	for i, s := range shapes {
		fixed[i] = i
		used = used.Union(s.Cells...)
	}
	Logger().Debug("hexlogo: overlap split",
		"blend", len(shapes) == 3,
		"color1", c1,
		"color2", c2)

	shapes = append(shapes, grower.Extend(used, cfg.Shapes-2, sizes, cfg.Opacity)...)
	assigner.AssignAround(m, shapes, fixed...)
	return shapes
}
