package ggqr

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

// ErrNoGrid is returned when a path or scene is requested without a grid.
var ErrNoGrid = errors.New("ggqr: no grid")

// Layer names used in rendered scenes.
const (
	LayerOffPixels = "offPixels"
	LayerOnPixels  = "onPixels"
	LayerEyeOuter  = "eyeOuter"
	LayerEyePupil  = "eyePupil"
)

// BuildPath returns the path gen produces for the set cells of g in a
// canvas of size. In template mode the eye regions are not masked.
func BuildPath(gen shape.PixelGenerator, g *grid.Grid, size shape.Size, isTemplate bool) (*gg.Path, error) {
	return buildPath(gen, g, size, shape.On, isTemplate)
}

// BuildOffPath is like BuildPath for the unset cells of g.
func BuildOffPath(gen shape.PixelGenerator, g *grid.Grid, size shape.Size, isTemplate bool) (*gg.Path, error) {
	return buildPath(gen, g, size, shape.Off, isTemplate)
}

func buildPath(gen shape.PixelGenerator, g *grid.Grid, size shape.Size, sel shape.Selector, isTemplate bool) (*gg.Path, error) {
	if g == nil {
		return nil, ErrNoGrid
	}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %gx%g", render.ErrInvalidSize, size.Width, size.Height)
	}
	if gen == nil {
		gen = shape.CreatePixel(shape.DefaultName, nil)
	}
	return gen.Path(g, size, sel, isTemplate), nil
}

// Scene lays out g in a width×height canvas and returns the layers of d,
// ready for a render backend.
//
// The grid is first padded by AdditionalQuietZone. Layers are stacked as
// off pixels, on pixels, eye outer rings, then pupils. The background
// corner radius is converted from cells to user units.
func (d *Design) Scene(g *grid.Grid, width, height int) (*render.Scene, error) {
	if g == nil {
		return nil, ErrNoGrid
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	style := d.Style
	if style == nil {
		style = NewStyle()
	}

	g = g.WithQuietZone(d.AdditionalQuietZone)
	size := shape.Size{Width: float64(width), Height: float64(height)}
	layout := shape.NewLayout(g.Dimension(), size)

	s := &render.Scene{
		Width:                  width,
		Height:                 height,
		Background:             style.Background,
		BackgroundCornerRadius: style.BackgroundCornerRadius * layout.Cell,
		Shadow:                 style.Shadow,
	}

	if off := d.Shape.offPixels(); off != nil && style.OffPixels != nil {
		s.Layers = append(s.Layers, render.Layer{
			Name:  LayerOffPixels,
			Path:  off.Path(g, size, shape.Off, false),
			Style: style.OffPixels,
		})
	}
	s.Layers = append(s.Layers, render.Layer{
		Name:  LayerOnPixels,
		Path:  d.Shape.onPixels().Path(g, size, shape.On, false),
		Style: style.OnPixels,
	})

	outer, pupil := shape.EyePaths(d.Shape.eye(), d.Shape.pupil(), g, size)
	s.Layers = append(s.Layers,
		render.Layer{Name: LayerEyeOuter, Path: outer, Style: style.EyeOuterStyle()},
		render.Layer{Name: LayerEyePupil, Path: pupil, Style: style.EyePupilStyle()},
	)
	return s, nil
}

func (s *Shape) offPixels() shape.PixelGenerator {
	if s == nil {
		return nil
	}
	return s.OffPixels
}
