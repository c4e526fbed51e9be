package palette

import (
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxAttempts bounds the redraws DifferentColor makes.
	MaxAttempts = 20

	// MinContrast is the contrast DifferentColor asks of a second color.
	MinContrast = 1.2

	// MinDistance is the CIE Lab distance FreshColor keeps from the colors
	// it is told to avoid.
	MinDistance = 0.15

	freshAttempts = 32
)

// Sampler draws colors from one palette with a caller-owned rng.
type Sampler struct {
	colors []string
	rng    *rand.Rand
}

// NewSampler returns a Sampler over the theme's palette.
func NewSampler(theme Theme, rng *rand.Rand) *Sampler {
	return NewSamplerWithColors(theme.Colors(), rng)
}

// NewSamplerWithColors returns a Sampler over an explicit palette. Entries are
// normalized to uppercase "#RRGGBB"; an empty palette falls back to Mesos.
func NewSamplerWithColors(colors []string, rng *rand.Rand) *Sampler {
	if len(colors) == 0 {
		colors = Mesos.Colors()
	}
	norm := make([]string, len(colors))
	for i, c := range colors {
		norm[i] = Normalize(c)
	}
	return &Sampler{colors: norm, rng: rng}
}

// Colors returns a copy of the sampler's palette.
func (s *Sampler) Colors() []string {
	return slices.Clone(s.colors)
}

// RandomColor returns a uniformly chosen palette entry.
func (s *Sampler) RandomColor() string {
	return s.colors[s.rng.IntN(len(s.colors))]
}

// RandomColors returns n independent draws. Repeats are possible.
func (s *Sampler) RandomColors(n int) []string {
	out := make([]string, 0, max(n, 0))
	for range n {
		out = append(out, s.RandomColor())
	}
	return out
}

// DifferentColor draws until it finds a color that differs from existing and
// reaches MinContrast against it. After MaxAttempts it returns the last draw,
// which may equal existing when the palette is degenerate.
func (s *Sampler) DifferentColor(existing string) string {
	existing = Normalize(existing)
	var c string
	for range MaxAttempts {
		c = s.RandomColor()
		if c != existing && Contrast(c, existing) >= MinContrast {
			return c
		}
	}
	return c
}

// ColorsWithBlend returns two differing colors and their RGB average.
func (s *Sampler) ColorsWithBlend() (c1, c2, blend string) {
	c1 = s.RandomColor()
	c2 = s.DifferentColor(c1)
	return c1, c2, Average(c1, c2)
}

// Shuffled returns the palette in a random order.
func (s *Sampler) Shuffled() []string {
	out := slices.Clone(s.colors)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// FreshColor generates a color outside the palette that is not in avoid.
// It samples mid-saturation HSV colors and keeps the one farthest (in Lab)
// from everything in avoid, stopping early once MinDistance is met.
func (s *Sampler) FreshColor(avoid []string) string {
	taken := make(map[string]bool, len(avoid))
	refs := make([]colorful.Color, 0, len(avoid))
	for _, a := range avoid {
		rgb, err := HexToRGB(a)
		if err != nil {
			continue
		}
		taken[rgb.Hex()] = true
		refs = append(refs, toColorful(rgb))
	}

	best, bestDist := "", -1.0
	for range freshAttempts {
		h := s.rng.Float64() * 360
		sat := 0.45 + 0.4*s.rng.Float64()
		val := 0.55 + 0.4*s.rng.Float64()
		c := colorful.Hsv(h, sat, val)
		r, g, b := c.RGB255()
		hex := RGBToHex(r, g, b)
		if taken[hex] {
			continue
		}
		d := nearest(toColorful(RGB{r, g, b}), refs)
		if d > bestDist {
			best, bestDist = hex, d
		}
		if d >= MinDistance {
			break
		}
	}
	if best != "" {
		return best
	}
	// Every draw collided; walk the grays for a free slot.
	for v := range 256 {
		hex := RGBToHex(uint8(v), uint8(v), uint8(v))
		if !taken[hex] {
			return hex
		}
	}
	return "#000000"
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// nearest returns the smallest Lab distance from c to refs, or 1e9
// when refs is empty.
func nearest(c colorful.Color, refs []colorful.Color) float64 {
	d := 1e9
	for _, r := range refs {
		d = min(d, c.DistanceLab(r))
	}
	return d
}
