package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/shape"
)

// fullLogo covers the whole hexagon with one shape.
func fullLogo(density int, fill string, opacity float64) *hexlogo.Logo {
	m := mesh.Build(100, density)
	s := shape.New(fill, opacity)
	for id := range m.CellCount() {
		s.Add(id)
	}
	return &hexlogo.Logo{Mesh: m, Shapes: []*shape.Shape{s}}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"", color.NRGBA{}},
		{"none", color.NRGBA{}},
		{"Transparent", color.NRGBA{}},
		{"#FF8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"RebeccaPurple", color.NRGBA{R: 0x66, G: 0x33, B: 0x99, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	for _, bad := range []string{"#12", "notacolor", "#GGGGGG"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestRenderCoverage(t *testing.T) {
	img, err := Render(fullLogo(3, "#FF0000", 1), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.NRGBAAt(256, 256); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("center pixel = %v, want opaque red", got)
	}
	if got := img.NRGBAAt(2, 2); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestRenderBackgroundAndOpacity(t *testing.T) {
	img, err := Render(fullLogo(4, "#FF0000", 0.5), Options{Width: 200, Height: 200, Background: "white"})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner = %v, want white background", got)
	}
	got := img.NRGBAAt(100, 100)
	if got.R != 255 || !near(got.G, 127, 3) || !near(got.B, 127, 3) || got.A != 255 {
		t.Errorf("center = %v, want half red over white", got)
	}
}

func TestRenderNonSquareKeepsAspect(t *testing.T) {
	img, err := Render(fullLogo(3, "#0000FF", 1), Options{Width: 400, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(200, 50); got.A != 255 {
		t.Errorf("center = %v, want covered", got)
	}
	if got := img.NRGBAAt(20, 50); got.A != 0 {
		t.Errorf("left margin = %v, want transparent", got)
	}
}

func TestRenderErrors(t *testing.T) {
	logo := fullLogo(2, "#FF0000", 1)
	if _, err := Render(logo, Options{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
	if _, err := Render(logo, Options{Width: 10, Height: 10, Background: "mauve-ish"}); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}

func TestEncodePNGSignature(t *testing.T) {
	logo := hexlogo.New(hexlogo.WithSeed(8), hexlogo.WithDensity(4)).Generate()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, logo, Options{Width: 64, Height: 64}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output does not start with the PNG signature: % x", buf.Bytes()[:8])
	}
}

func TestEncodePNGDeterministic(t *testing.T) {
	opts := []hexlogo.Option{hexlogo.WithSeed(31), hexlogo.WithDensity(5), hexlogo.WithOverlap(true)}
	var a, b bytes.Buffer
	if err := EncodePNG(&a, hexlogo.New(opts...).Generate(), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if err := EncodePNG(&b, hexlogo.New(opts...).Generate(), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical configs must produce identical PNG bytes")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	logo := hexlogo.New(hexlogo.WithSeed(2)).Generate()
	if err := SavePNG(path, logo, Options{Width: 120, Height: 80}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("bounds = %v, want 120x80", b)
	}
}
