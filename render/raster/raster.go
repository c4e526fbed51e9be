// Package raster draws a generated logo into an image and encodes it as PNG.
//
// Shapes are filled in order with source-over compositing, using the same
// boundary loops as the SVG emitter and the same view box, so a PNG matches
// an SVG rendered at the same size.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/geom"
	"github.com/gogpu/hexlogo/palette"
	"github.com/gogpu/hexlogo/render/outline"
)

var (
	// ErrInvalidSize is returned when the requested width or height is not
	// positive.
	ErrInvalidSize = errors.New("raster: invalid size")

	// ErrInvalidColor is returned for backgrounds that are neither hex,
	// a known color name, nor "none".
	ErrInvalidColor = errors.New("raster: invalid color")
)

// Options controls the output image.
type Options struct {
	Width, Height int
	// Background is "#RRGGBB", "#RGB", a CSS color name, or "none"/"" for a
	// transparent image.
	Background string
}

// DefaultOptions returns a transparent 512x512 image.
func DefaultOptions() Options {
	return Options{Width: 512, Height: 512}
}

// ParseColor resolves a background color string.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "transparent":
		return color.NRGBA{}, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := palette.HexToRGB(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// viewport maps logo coordinates into the image the way an SVG viewer does
// with the default "xMidYMid meet" aspect handling.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
}

func newViewport(logo *hexlogo.Logo, w, h int) viewport {
	m := logo.Mesh
	extent := 2 * m.Size
	scale := min(float64(w), float64(h)) / extent
	return viewport{
		minX:  m.Center.X - m.Size,
		minY:  m.Center.Y - m.Size,
		scale: scale,
		offX:  (float64(w) - extent*scale) / 2,
		offY:  (float64(h) - extent*scale) / 2,
	}
}

func (v viewport) apply(p geom.Point) (float32, float32) {
	return float32((p.X-v.minX)*v.scale + v.offX), float32((p.Y-v.minY)*v.scale + v.offY)
}

// Render draws logo into a new image.
func Render(logo *hexlogo.Logo, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if bg.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	vp := newViewport(logo, opts.Width, opts.Height)
	z := vector.NewRasterizer(opts.Width, opts.Height)
	for i, s := range logo.Shapes {
		if s.Len() == 0 {
			continue
		}
		fill, err := palette.HexToRGB(s.Color)
		if err != nil {
			return nil, fmt.Errorf("raster: shape %d: %w", i, err)
		}
		alpha := uint8(min(max(s.Opacity, 0), 1)*255 + 0.5)
		if alpha == 0 {
			continue
		}

		z.Reset(opts.Width, opts.Height)
		for _, region := range outline.Regions(logo.Mesh, s.Cells) {
			for _, loop := range outline.Loops(logo.Mesh, region) {
				z.MoveTo(vp.apply(loop[0]))
				for _, p := range loop[1:] {
					z.LineTo(vp.apply(p))
				}
				z.ClosePath()
			}
		}
		src := image.NewUniform(color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: alpha})
		z.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img, nil
}

// EncodePNG renders logo and writes it to w as PNG.
func EncodePNG(w io.Writer, logo *hexlogo.Logo, opts Options) error {
	img, err := Render(logo, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders logo and writes it to the file at path.
func SavePNG(path string, logo *hexlogo.Logo, opts Options) (err error) {
	img, err := Render(logo, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
