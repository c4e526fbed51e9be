package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned for strings that are not #RGB or #RRGGBB.
var ErrInvalidHex = errors.New("palette: invalid hex color")

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// HexToRGB parses "#RRGGBB" or "#RGB"; the leading '#' is optional and
// digits may be either case.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex formats channels as uppercase "#RRGGBB".
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Hex formats c as uppercase "#RRGGBB".
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// Normalize returns hex in canonical uppercase "#RRGGBB" form, or the input
// unchanged when it does not parse.
func Normalize(hex string) string {
	c, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	return c.Hex()
}

// lenient parses hex, mapping invalid input to black.
func lenient(hex string) RGB {
	c, _ := HexToRGB(hex)
	return c
}

// Lerp interpolates each channel linearly and rounds to the nearest byte.
// t is clamped to [0, 1].
func (c RGB) Lerp(other RGB, t float64) RGB {
	t = min(max(t, 0), 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
	}
	return RGB{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

// Blend mixes c1 toward c2 by alpha in [0, 1]: alpha 0 yields c1 and
// alpha 1 yields c2. Unparseable inputs count as black.
func Blend(c1, c2 string, alpha float64) string {
	return lenient(c1).Lerp(lenient(c2), alpha).Hex()
}

// Average returns the per-channel RGB mean of c1 and c2, rounded.
func Average(c1, c2 string) string {
	return Blend(c1, c2, 0.5)
}
