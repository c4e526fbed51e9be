package palette

import "math"

// linear converts an sRGB channel to linear light using the WCAG 2.x
// transfer function.
// Formula: if s <= 0.03928: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func linear(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of c in [0, 1].
func (c RGB) Luminance() float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// Contrast returns the WCAG contrast ratio between c and other, in [1, 21].
func (c RGB) Contrast(other RGB) float64 {
	a, b := c.Luminance(), other.Luminance()
	if a < b {
		a, b = b, a
	}
	return (a + 0.05) / (b + 0.05)
}

// Luminance returns the relative luminance of a hex color. Unparseable input
// counts as black.
func Luminance(hex string) float64 {
	return lenient(hex).Luminance()
}

// Contrast returns the WCAG contrast ratio between two hex colors.
func Contrast(c1, c2 string) float64 {
	return lenient(c1).Contrast(lenient(c2))
}

// MostContrasting returns the candidate with the highest contrast against
// base, or "" when candidates is empty. Ties keep the earliest candidate.
func MostContrasting(base string, candidates []string) string {
	best, bestRatio := "", 0.0
	for _, c := range candidates {
		if r := Contrast(base, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}
