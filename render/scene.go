package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/internal/logging"
	"github.com/gogpu/gg-qr/shape"
)

// ErrInvalidSize is returned for a scene without a positive width and
// height.
var ErrInvalidSize = errors.New("render: invalid canvas size")

// ErrNotWriter is returned by Render when the backend cannot write its
// output to a stream.
var ErrNotWriter = errors.New("render: backend does not implement WriterBackend")

// Layer is a path filled with a style.
type Layer struct {
	Name  string
	Path  *gg.Path
	Style fill.Style
}

// Scene is a stack of layers drawn over an optional background.
//
// The stacking order is fixed: background, shadow, then Layers in slice
// order. The shadow silhouette is the union of all layer paths.
// Styles are resolved against the full canvas, so a gradient runs across
// the whole image rather than restarting per layer.
type Scene struct {
	Width, Height int

	// Background fills the canvas. Nil leaves it transparent.
	Background fill.Style
	// BackgroundCornerRadius rounds the background corners, in user units.
	BackgroundCornerRadius float64

	// Shadow is cast by the layers. Nil disables it.
	Shadow *Shadow

	Layers []Layer
}

// Bounds returns the canvas rectangle.
func (s *Scene) Bounds() gg.Rect {
	return gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(float64(s.Width), float64(s.Height))}
}

// Validate reports ErrInvalidSize for a non-positive canvas.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// Silhouette returns the union of all non-empty layer paths.
func (s *Scene) Silhouette() *gg.Path {
	paths := make([]*gg.Path, 0, len(s.Layers))
	for _, l := range s.Layers {
		if l.Style != nil {
			paths = append(paths, l.Path)
		}
	}
	return shape.Concat(paths...)
}

// Compose draws s onto a backend that has already been started with
// Begin. It does not call End.
func Compose(b Backend, s *Scene) {
	bounds := s.Bounds()
	log := logging.Logger()

	if s.Background != nil {
		bg := gg.NewPath()
		r := max(0, s.BackgroundCornerRadius)
		shape.RoundedRect(bg, 0, 0, bounds.Width(), bounds.Height(), r)
		fill.FillPath(b, s.Background, bounds, bg)
	}

	if s.Shadow != nil && s.Shadow.Color.A > 0 {
		if sil := s.Silhouette(); !shape.Empty(sil) {
			log.Debug("render: shadow",
				"dx", s.Shadow.DX, "dy", s.Shadow.DY, "sigma", s.Shadow.Sigma())
			b.DrawShadow(sil, *s.Shadow)
		}
	}

	for _, l := range s.Layers {
		if l.Style == nil || shape.Empty(l.Path) {
			continue
		}
		log.Debug("render: layer", "name", l.Name, "elements", len(l.Path.Elements()))
		fill.FillPath(b, l.Style, bounds, l.Path)
	}
}

// Draw runs the full backend lifecycle for s: Begin, Compose and End.
func Draw(b Backend, s *Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := b.Begin(s.Width, s.Height); err != nil {
		return fmt.Errorf("render: begin: %w", err)
	}
	Compose(b, s)
	if err := b.End(); err != nil {
		return fmt.Errorf("render: end: %w", err)
	}
	return nil
}

// Render draws s with the backend registered as format and writes the
// result to w.
func Render(format string, s *Scene, w io.Writer) error {
	b, err := NewBackend(format)
	if err != nil {
		return err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWriter, format)
	}
	logging.Logger().Debug("render: start", "format", format, "width", s.Width, "height", s.Height)
	if err := Draw(wb, s); err != nil {
		return err
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}
