// Package ggqr renders matrix barcodes such as QR symbols as styled
// vector and raster graphics.
//
// # Overview
//
// A grid.Grid of set and unset cells is turned into paths by pluggable
// shape generators, painted with fill styles and written by one of the
// registered render backends. The same Design produces the same geometry
// in every output format.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg-qr"
//	    "github.com/gogpu/gg-qr/engine"
//	    "github.com/gogpu/gg-qr/shape"
//	    _ "github.com/gogpu/gg-qr/engine/goqrcode"
//	)
//
//	e, _ := engine.New("goqrcode")
//	doc := ggqr.NewDocument(ggqr.WithEngine(e))
//	if err := doc.SetText("https://example.com"); err != nil {
//	    return err
//	}
//	doc.Design.Shape.OnPixels = shape.CreatePixel("circle", nil)
//	err := doc.Render(ggqr.FormatSVG, 600, w)
//
// # Architecture
//
// The module is organized into:
//   - grid: the immutable cell matrix and its eye regions
//   - settings, inset: generator configuration and per-cell variation
//   - shape, shape/pixel, shape/eye: generator contracts, registry and
//     built-in generators
//   - fill: solid, gradient and image fill styles
//   - render, render/raster, render/svg, render/pdf: the layer stack and
//     the PNG, SVG and PDF backends
//   - engine, engine/goqrcode: the boundary to symbol encoders
//   - document: the YAML, TOML and JSON design format
//
// Importing this package registers the built-in generators and all three
// backends.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - One user unit is one PNG pixel, one SVG unit and one PDF point
//
// Randomized shapes are seeded by cell coordinates only, so output is
// reproducible and changing the output size never changes which cells
// vary.
package ggqr

import (
	// Built-in generators.
	_ "github.com/gogpu/gg-qr/shape/eye"
	_ "github.com/gogpu/gg-qr/shape/pixel"

	// Built-in backends.
	_ "github.com/gogpu/gg-qr/render/pdf"
	_ "github.com/gogpu/gg-qr/render/raster"
	_ "github.com/gogpu/gg-qr/render/svg"
)
