package ggqr

import (
	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

// Builder provides a fluent interface for document construction.
// All methods return the builder for chaining; Document reports the
// encoding error, if any.
//
//	doc, err := ggqr.Build().
//	    Engine(e).
//	    Text("https://example.com").
//	    ErrorCorrection(engine.High).
//	    OnPixelsShape(shape.CreatePixel("circle", nil)).
//	    EyeShape(shape.CreateEye("leaf", nil)).
//	    Document()
type Builder struct {
	opts    []DocumentOption
	design  *Design
	text    string
	data    []byte
	hasData bool
}

// Build starts a new document builder with the default design.
func Build() *Builder {
	return &Builder{design: NewDesign()}
}

// Engine sets the matrix engine.
func (b *Builder) Engine(e engine.Engine) *Builder {
	b.opts = append(b.opts, WithEngine(e))
	return b
}

// ErrorCorrection sets the error correction level.
func (b *Builder) ErrorCorrection(ec engine.ErrorCorrection) *Builder {
	b.opts = append(b.opts, WithErrorCorrection(ec))
	return b
}

// Text sets the text content.
func (b *Builder) Text(s string) *Builder {
	b.text, b.data, b.hasData = s, nil, false
	return b
}

// Data sets raw byte content.
func (b *Builder) Data(data []byte) *Builder {
	b.text, b.data, b.hasData = "", data, true
	return b
}

// Design replaces the whole design. A nil Shape or Style in d is
// replaced by the default so later setters have a tree to modify.
func (b *Builder) Design(d *Design) *Builder {
	if d == nil {
		return b
	}
	if d.Shape == nil {
		d.Shape = NewShape()
	}
	if d.Style == nil {
		d.Style = NewStyle()
	}
	b.design = d
	return b
}

// OnPixelsShape sets the generator of the set cells.
func (b *Builder) OnPixelsShape(g shape.PixelGenerator) *Builder {
	b.design.Shape.OnPixels = g
	return b
}

// OnPixelsStyle sets the fill of the set cells.
func (b *Builder) OnPixelsStyle(s fill.Style) *Builder {
	b.design.Style.OnPixels = s
	return b
}

// OffPixelsShape sets the generator of the unset cells.
func (b *Builder) OffPixelsShape(g shape.PixelGenerator) *Builder {
	b.design.Shape.OffPixels = g
	return b
}

// OffPixelsStyle sets the fill of the unset cells.
func (b *Builder) OffPixelsStyle(s fill.Style) *Builder {
	b.design.Style.OffPixels = s
	return b
}

// EyeShape sets the eye generator.
func (b *Builder) EyeShape(g shape.EyeGenerator) *Builder {
	b.design.Shape.Eye = g
	return b
}

// PupilShape overrides the pupil of the eye generator.
func (b *Builder) PupilShape(g shape.PupilGenerator) *Builder {
	b.design.Shape.Pupil = g
	return b
}

// EyeOuterStyle sets the fill of the eye rings.
func (b *Builder) EyeOuterStyle(s fill.Style) *Builder {
	b.design.Style.EyeOuter = s
	return b
}

// EyePupilStyle sets the fill of the pupils.
func (b *Builder) EyePupilStyle(s fill.Style) *Builder {
	b.design.Style.EyePupil = s
	return b
}

// Background sets the background fill. Nil leaves it transparent.
func (b *Builder) Background(s fill.Style) *Builder {
	b.design.Style.Background = s
	return b
}

// BackgroundCornerRadius rounds the background, in cells.
func (b *Builder) BackgroundCornerRadius(cells float64) *Builder {
	b.design.Style.BackgroundCornerRadius = cells
	return b
}

// Shadow sets the drop shadow. Nil disables it.
func (b *Builder) Shadow(s *render.Shadow) *Builder {
	b.design.Style.Shadow = s
	return b
}

// QuietZone sets the additional quiet zone, in cells.
func (b *Builder) QuietZone(cells int) *Builder {
	b.design.AdditionalQuietZone = cells
	return b
}

// Document creates the document and encodes its content. The document is
// returned even when encoding fails, so the design is not lost.
func (b *Builder) Document() (*Document, error) {
	opts := append([]DocumentOption{WithDesign(b.design)}, b.opts...)
	doc := NewDocument(opts...)
	switch {
	case b.hasData:
		return doc, doc.SetData(b.data)
	case b.text != "":
		return doc, doc.SetText(b.text)
	}
	return doc, nil
}
