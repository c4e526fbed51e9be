// Package palette selects fill colors for logo shapes.
//
// It holds the named themes, the RGB/hex conversions and blends the renderers
// rely on, WCAG contrast math, a seeded color sampler, and the Welsh–Powell
// assignment that keeps adjacent shapes in different colors.
package palette

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Theme names a fixed palette.
type Theme uint8

// Available themes. Mesos is the default.
const (
	Mesos Theme = iota
	Google
	Blues
	Greens
	Reds
	Purples
	Rainbow
)

var themeNames = [...]string{
	Mesos:   "mesos",
	Google:  "google",
	Blues:   "blues",
	Greens:  "greens",
	Reds:    "reds",
	Purples: "purples",
	Rainbow: "rainbow",
}

var palettes = [...][]string{
	Mesos: {
		"#FFCC09", "#F68A21", "#E42728", "#E81F6F", "#BD3D93",
		"#71459B", "#4D499C", "#3960A9", "#20B7E8", "#46B78C",
		"#49B650", "#78BF44", "#B3675E", "#3EAF51", "#5A4FCF",
	},
	Google: {
		"#4285F4", "#EA4335", "#FBBC05", "#34A853", "#1A73E8",
		"#D93025", "#F9AB00", "#1E8E3E", "#174EA6", "#A50E0E",
		"#E37400", "#0D652D", "#5BB974", "#81C995", "#8AB4F8",
	},
	Blues: {
		"#0D47A1", "#1565C0", "#1976D2", "#1E88E5", "#2196F3",
		"#42A5F5", "#64B5F6", "#90CAF9", "#BBDEFB", "#2962FF",
		"#0277BD", "#01579B", "#039BE5", "#03A9F4", "#29B6F6",
	},
	Greens: {
		"#1B5E20", "#2E7D32", "#388E3C", "#43A047", "#4CAF50",
		"#66BB6A", "#81C784", "#A5D6A7", "#C8E6C9", "#00C853",
		"#00695C", "#00796B", "#00897B", "#009688", "#26A69A",
	},
	Reds: {
		"#B71C1C", "#C62828", "#D32F2F", "#E53935", "#F44336",
		"#EF5350", "#E57373", "#EF9A9A", "#FFCDD2", "#DD2C00",
		"#BF360C", "#E64A19", "#F4511E", "#FF5722", "#FF7043",
	},
	Purples: {
		"#4A148C", "#6A1B9A", "#7B1FA2", "#8E24AA", "#9C27B0",
		"#AB47BC", "#BA68C8", "#CE93D8", "#E1BEE7", "#880E4F",
		"#AD1457", "#C2185B", "#D81B60", "#E91E63", "#EC407A",
	},
	Rainbow: {
		"#FF0000", "#FF4500", "#FF8C00", "#FFA500", "#FFD700",
		"#FFFF00", "#ADFF2F", "#32CD32", "#008000", "#00FF7F",
		"#00FFFF", "#1E90FF", "#0000FF", "#4B0082", "#8A2BE2",
		"#FF00FF", "#C71585",
	},
}

// String returns the lowercase theme name.
func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return fmt.Sprintf("Theme(%d)", t)
}

// Colors returns a copy of the theme's palette. Unknown themes yield the
// default palette.
func (t Theme) Colors() []string {
	if int(t) >= len(palettes) {
		t = Mesos
	}
	return append([]string(nil), palettes[t]...)
}

// Themes returns every theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, len(themeNames))
	for i := range out {
		out[i] = Theme(i)
	}
	return out
}

// ThemeNames returns the names of every theme.
func ThemeNames() []string {
	return append([]string(nil), themeNames[:]...)
}

// ParseTheme looks a theme up by name, ignoring case and surrounding space.
func ParseTheme(name string) (Theme, bool) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for i, n := range themeNames {
		if n == folded {
			return Theme(i), true
		}
	}
	return Mesos, false
}

// ThemeFor is ParseTheme with the fallback to Mesos for unknown names.
func ThemeFor(name string) Theme {
	t, _ := ParseTheme(name)
	return t
}

// PaletteFor returns the colors of the named theme, falling back to Mesos.
func PaletteFor(name string) []string {
	return ThemeFor(name).Colors()
}
