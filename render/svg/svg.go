// Package svg writes a generated logo as an SVG document.
package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/palette"
	"github.com/gogpu/hexlogo/render/outline"
)

// ErrInvalidSize is returned when the requested width or height is not
// positive.
var ErrInvalidSize = errors.New("svg: invalid size")

// Options controls the document envelope.
type Options struct {
	Width, Height int
	// Background fills the view box when set. Empty and "none" leave the
	// document transparent.
	Background string
}

// DefaultOptions returns a transparent 512x512 document.
func DefaultOptions() Options {
	return Options{Width: 512, Height: 512}
}

// Render returns the SVG document for logo.
func Render(logo *hexlogo.Logo, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, logo, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes logo to w. Each shape with at least one cell becomes one
// <path> whose subpaths are the shape's boundary loops.
func Encode(w io.Writer, logo *hexlogo.Logo, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	m := logo.Mesh
	bw := bufio.NewWriter(w)

	minX, minY := m.Center.X-m.Size, m.Center.Y-m.Size
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		opts.Width, opts.Height, num(minX), num(minY), num(2*m.Size), num(2*m.Size))

	if bg := strings.TrimSpace(opts.Background); bg != "" && !strings.EqualFold(bg, "none") {
		fmt.Fprintf(bw, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(minX), num(minY), num(2*m.Size), num(2*m.Size), attr(palette.Normalize(bg)))
	}

	for _, s := range logo.Shapes {
		d := PathData(m, s.Cells)
		if d == "" {
			continue
		}
		fmt.Fprintf(bw, `  <path d="%s" fill="%s" fill-opacity="%s" fill-rule="evenodd" stroke="none"/>`+"\n",
			d, attr(s.Color), num(s.Opacity))
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// PathData returns SVG path commands outlining cells, one closed subpath per
// boundary loop, or "" when there is nothing to draw.
func PathData(m *mesh.Mesh, cells []int) string {
	var sb strings.Builder
	for _, region := range outline.Regions(m, cells) {
		for _, loop := range outline.Loops(m, region) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			for i, p := range loop {
				if i == 0 {
					sb.WriteString("M")
				} else {
					sb.WriteString(" L")
				}
				sb.WriteString(num(p.X))
				sb.WriteByte(' ')
				sb.WriteString(num(p.Y))
			}
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}

// num formats v with at most three decimals and no negative zero.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
