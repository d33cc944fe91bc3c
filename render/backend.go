// Package render composes styled layers into output documents.
//
// A Scene is a stack of filled paths plus an optional background and drop
// shadow. Draw walks the stack in order and hands every operation to a
// Backend; backends translate the operations into raster pixels, SVG
// elements or PDF content.
//
// Backends are registered by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/gg-qr/render/svg" // registers "svg"
//
//	err := render.Render("svg", scene, w)
package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
)

// Backend is the interface that all output backends must implement.
//
// All coordinates are in user units with the origin at the top left and
// y growing downwards. One user unit is one pixel, one SVG user unit or
// one PDF point. Backends that use another convention (PDF) translate
// coordinates themselves.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using render.Register()
//  2. Fill every path with the nonzero winding rule
//  3. Treat a nil or empty path as a no-op
//  4. Map Shadow.Blur to a Gaussian with standard deviation Shadow.Sigma()
type Backend interface {
	fill.Canvas

	// Begin initializes the backend for a canvas of the given size.
	// It must be called before any drawing operation.
	Begin(width, height int) error

	// DrawShadow paints a blurred copy of silhouette, offset by the shadow
	// offset, in the shadow color.
	DrawShadow(silhouette *gg.Path, s Shadow)

	// End finalizes the output. Output methods may be used afterwards.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered document to w.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image.
	// This should only be called after End().
	Image() image.Image
}
