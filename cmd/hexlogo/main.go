// Command hexlogo generates a hexagonal logo and writes it as SVG or PNG.
//
// Usage:
//
//	hexlogo [flags] [output]
//
// The output defaults to logo.svg; its extension is corrected to match
// -format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/palette"
	"github.com/gogpu/hexlogo/render/raster"
	"github.com/gogpu/hexlogo/render/svg"
)

// errUsage marks errors caused by bad flags.
var errUsage = errors.New("usage")

type options struct {
	output     string
	seed       uint64
	seedSet    bool
	uuid       string
	theme      string
	shapes     int
	density    int
	opacity    float64
	width      int
	height     int
	format     string
	overlap    bool
	background string
	strict     bool
	listThemes bool
	verbose    bool
	profile    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hexlogo:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hexlogo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&o.seed, "seed", 0, "seed for deterministic generation")
	fs.StringVar(&o.uuid, "uuid", "", "UUID for deterministic generation (overrides -seed)")
	fs.StringVar(&o.theme, "theme", palette.Mesos.String(), "color theme ("+strings.Join(palette.ThemeNames(), ", ")+")")
	fs.IntVar(&o.shapes, "shapes", hexlogo.DefaultShapes, "number of shapes (1-10)")
	fs.IntVar(&o.density, "density", hexlogo.DefaultDensity, "grid density (2-8)")
	fs.Float64Var(&o.opacity, "opacity", hexlogo.DefaultOpacity, "shape opacity (0-1)")
	fs.IntVar(&o.width, "width", 512, "output width in pixels")
	fs.IntVar(&o.height, "height", 512, "output height in pixels")
	fs.StringVar(&o.format, "format", "svg", "output format: svg or png")
	fs.BoolVar(&o.overlap, "overlap", true, "let the first two shapes overlap with a blended color")
	fs.StringVar(&o.background, "background", "none", "background color (#RRGGBB, name, or none)")
	fs.BoolVar(&o.strict, "strict", false, "reject out-of-range values instead of clamping them")
	fs.BoolVar(&o.listThemes, "list-themes", false, "print the available themes and exit")
	fs.BoolVar(&o.verbose, "v", false, "verbose output")
	fs.StringVar(&o.profile, "profile", "", "write a cpu or mem profile to the working directory")
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	o.output = "logo.svg"
	switch fs.NArg() {
	case 0:
	case 1:
		o.output = fs.Arg(0)
	default:
		return o, fmt.Errorf("%w: expected at most one output path, got %d", errUsage, fs.NArg())
	}
	o.format = strings.ToLower(o.format)
	if o.format != "svg" && o.format != "png" {
		return o, fmt.Errorf("%w: unknown format %q", errUsage, o.format)
	}
	return o, nil
}

// validate enforces -strict.
func (o options) validate() error {
	if err := mesh.ValidateDensity(o.density); err != nil {
		return err
	}
	if o.shapes < hexlogo.MinShapes || o.shapes > hexlogo.MaxShapes {
		return fmt.Errorf("shapes %d out of range [%d, %d]", o.shapes, hexlogo.MinShapes, hexlogo.MaxShapes)
	}
	if o.opacity < 0 || o.opacity > 1 {
		return fmt.Errorf("opacity %v out of range [0, 1]", o.opacity)
	}
	if _, ok := palette.ParseTheme(o.theme); !ok {
		return fmt.Errorf("unknown theme %q", o.theme)
	}
	return nil
}

// withExtension replaces or adds the extension so it matches format.
func withExtension(path, format string) (string, bool) {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, "."+format) {
		return path, false
	}
	return strings.TrimSuffix(path, ext) + "." + format, ext != ""
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.listThemes {
		for _, name := range palette.ThemeNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if o.verbose {
		hexlogo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer hexlogo.SetLogger(nil)
	}
	log := hexlogo.Logger()

	switch o.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("%w: unknown profile %q", errUsage, o.profile)
	}

	if o.strict {
		if err := o.validate(); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}

	opts := []hexlogo.Option{
		hexlogo.WithThemeName(o.theme),
		hexlogo.WithShapes(o.shapes),
		hexlogo.WithDensity(o.density),
		hexlogo.WithOpacity(o.opacity),
		hexlogo.WithOverlap(o.overlap),
	}
	seedInfo := "random"
	switch {
	case o.uuid != "":
		seed, err := hexlogo.SeedFromUUID(o.uuid)
		if err != nil {
			return err
		}
		opts = append(opts, hexlogo.WithSeed(seed))
		seedInfo = "uuid " + o.uuid
	case o.seedSet:
		opts = append(opts, hexlogo.WithSeed(o.seed))
		seedInfo = "seed"
	}

	logo := hexlogo.New(opts...).Generate()

	path, changed := withExtension(o.output, o.format)
	if changed {
		log.Warn("hexlogo: changed output extension", "from", o.output, "to", path)
	}

	switch o.format {
	case "svg":
		err = writeSVG(path, logo, svg.Options{Width: o.width, Height: o.height, Background: o.background})
	case "png":
		err = raster.SavePNG(path, logo, raster.Options{Width: o.width, Height: o.height, Background: o.background})
	}
	if err != nil {
		return err
	}

	if o.verbose {
		cfg := logo.Config
		fmt.Fprintln(stdout, "Logo generated successfully:")
		fmt.Fprintf(stdout, "  Output:  %s\n", path)
		fmt.Fprintf(stdout, "  Format:  %s\n", o.format)
		fmt.Fprintf(stdout, "  Theme:   %s\n", cfg.Theme)
		fmt.Fprintf(stdout, "  Density: %d\n", cfg.Density)
		fmt.Fprintf(stdout, "  Shapes:  %d\n", len(logo.Shapes))
		fmt.Fprintf(stdout, "  Opacity: %v\n", cfg.Opacity)
		fmt.Fprintf(stdout, "  Overlap: %v\n", cfg.Overlap)
		fmt.Fprintf(stdout, "  Seed:    %d (%s)\n", logo.Seed, seedInfo)
	}
	return nil
}

func writeSVG(path string, logo *hexlogo.Logo, opts svg.Options) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return svg.Encode(f, logo, opts)
}
