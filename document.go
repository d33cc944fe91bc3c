package ggqr

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/render"
)

// Output formats provided by the bundled backends.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Document pairs the content of a symbol with its design.
//
// Setting text or data encodes it through the document's engine and
// replaces the grid. A document created without WithEngine has no encoder,
// so SetText and SetData fail with engine.ErrNoGenerator; SetGrid still
// works.
//
// A Document is not safe for concurrent use. Render clones of the design
// in separate documents instead.
type Document struct {
	Design *Design

	engine engine.Engine
	ec     engine.ErrorCorrection

	text    string
	data    []byte
	hasData bool
	grid    *grid.Grid
}

// NewDocument creates an empty document with the default design.
func NewDocument(opts ...DocumentOption) *Document {
	o := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Document{Design: o.design, engine: o.engine, ec: o.ec}
	if d.Design == nil {
		d.Design = NewDesign()
	}
	return d
}

// Engine returns the matrix engine.
func (d *Document) Engine() engine.Engine {
	return d.engine
}

// SetEngine replaces the matrix engine and re-encodes the current content.
// A nil engine selects engine.None.
func (d *Document) SetEngine(e engine.Engine) error {
	if e == nil {
		e = engine.None{}
	}
	d.engine = e
	return d.regenerate()
}

// ErrorCorrection returns the error correction level.
func (d *Document) ErrorCorrection() engine.ErrorCorrection {
	return d.ec
}

// SetErrorCorrection changes the error correction level and re-encodes
// the current content.
func (d *Document) SetErrorCorrection(ec engine.ErrorCorrection) error {
	d.ec = ec
	return d.regenerate()
}

// Text returns the text last set with SetText.
func (d *Document) Text() string {
	return d.text
}

// SetText encodes text and replaces the grid. On failure the grid is
// cleared.
func (d *Document) SetText(text string) error {
	d.text = text
	d.data = nil
	d.hasData = false
	return d.regenerate()
}

// Data returns the bytes last set with SetData.
func (d *Document) Data() []byte {
	return d.data
}

// SetData encodes raw bytes and replaces the grid. On failure the grid is
// cleared.
func (d *Document) SetData(data []byte) error {
	d.data = append([]byte(nil), data...)
	d.hasData = true
	d.text = ""
	return d.regenerate()
}

// Grid returns the current grid, or nil when there is none.
func (d *Document) Grid() *grid.Grid {
	return d.grid
}

// SetGrid replaces the grid directly, bypassing the engine. The text and
// data are cleared.
func (d *Document) SetGrid(g *grid.Grid) {
	d.grid = g
	d.text = ""
	d.data = nil
	d.hasData = false
}

func (d *Document) regenerate() error {
	if !d.hasData && d.text == "" {
		return nil
	}
	var (
		g   *grid.Grid
		err error
	)
	if d.hasData {
		g, err = d.engine.Generate(d.data, d.ec)
	} else {
		g, err = d.engine.GenerateText(d.text, d.ec)
	}
	if err != nil {
		d.grid = nil
		return fmt.Errorf("ggqr: generate with %s: %w", d.engine.Name(), err)
	}
	Logger().Debug("ggqr: generated grid",
		"engine", d.engine.Name(), "ec", d.ec.String(), "dimension", g.Dimension())
	d.grid = g
	return nil
}

// Scene returns the scene of the document in a square canvas of side
// dimension.
func (d *Document) Scene(dimension int) (*render.Scene, error) {
	if d.grid == nil {
		return nil, ErrNoGrid
	}
	design := d.Design
	if design == nil {
		design = NewDesign()
	}
	return design.Scene(d.grid, dimension, dimension)
}

// Render draws the document in a square canvas of side dimension with
// the backend registered as format, and writes the result to w.
func (d *Document) Render(format string, dimension int, w io.Writer) error {
	s, err := d.Scene(dimension)
	if err != nil {
		return err
	}
	return render.Render(format, s, w)
}

// Bytes renders the document and returns the encoded output.
func (d *Document) Bytes(format string, dimension int) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(format, dimension, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG renders the document as PNG.
func (d *Document) PNG(dimension int) ([]byte, error) {
	return d.Bytes(FormatPNG, dimension)
}

// SVG renders the document as SVG.
func (d *Document) SVG(dimension int) ([]byte, error) {
	return d.Bytes(FormatSVG, dimension)
}

// PDF renders the document as a single page PDF.
func (d *Document) PDF(dimension int) ([]byte, error) {
	return d.Bytes(FormatPDF, dimension)
}

// Image rasterizes the document.
func (d *Document) Image(dimension int) (image.Image, error) {
	s, err := d.Scene(dimension)
	if err != nil {
		return nil, err
	}
	b, err := render.NewBackend(FormatPNG)
	if err != nil {
		return nil, err
	}
	ib, ok := b.(render.ImageBackend)
	if !ok {
		return nil, fmt.Errorf("ggqr: backend %q does not produce images", FormatPNG)
	}
	if err := render.Draw(ib, s); err != nil {
		return nil, err
	}
	return ib.Image(), nil
}
