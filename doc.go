// Package hexlogo generates abstract geometric logos.
//
// # Overview
//
// A regular hexagon is split into a lattice of equilateral triangular cells.
// Connected groups of cells are grown into shapes, each shape gets a fill
// color from a named theme, and the result is handed to a renderer.
//
// # Quick Start
//
//	import "github.com/gogpu/hexlogo"
//
//	logo := hexlogo.New(
//	    hexlogo.WithDensity(4),
//	    hexlogo.WithShapes(5),
//	    hexlogo.WithSeed(42),
//	).Generate()
//
//	// Write SVG
//	svg.Encode(w, logo, svg.Options{Width: 512, Height: 512})
//
// # Determinism
//
// A seeded run is a pure function of its Config: the same size, density,
// seed, theme, shape count, opacity and overlap flag always yield the same
// shapes. Unseeded runs draw one seed up front and record it on the Logo so
// the result can be reproduced.
//
// # Architecture
//
// The library is organized into:
//   - geom: points, triangles and containment tests
//   - mesh: the triangulated hexagon and its cell adjacency
//   - shape: seeded growth, smoothing and quality scoring of shapes
//   - palette: themes, color math and adjacency-aware color assignment
//   - render/svg, render/raster: emitters for the generated logo
//
// # Coordinate System
//
// The hexagon is centered at the origin with its first vertex on the
// positive X axis. Renderers map it into a square viewport with Y down.
package hexlogo

// Version is the current version of the module.
const Version = "0.3.0"
