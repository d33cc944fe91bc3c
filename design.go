package ggqr

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

// Design is the complete look of a symbol: the fill styles of each layer
// and the generators that shape them.
//
// A Design owns its Style and Shape trees. Use Clone before handing a
// design to another goroutine; generators and styles are not synchronized.
type Design struct {
	Style *Style
	Shape *Shape

	// AdditionalQuietZone pads the grid with this many empty cells on every
	// side before layout.
	AdditionalQuietZone int
}

// NewDesign returns a design with black square cells on white.
func NewDesign() *Design {
	return &Design{Style: NewStyle(), Shape: NewShape()}
}

// Clone returns a fully independent copy of d.
func (d *Design) Clone() *Design {
	if d == nil {
		return nil
	}
	return &Design{
		Style:               d.Style.Clone(),
		Shape:               d.Shape.Clone(),
		AdditionalQuietZone: d.AdditionalQuietZone,
	}
}

// Style holds the fill styles of a design. A nil style skips its layer,
// except for the eye styles which fall back to OnPixels.
type Style struct {
	Background fill.Style
	// BackgroundCornerRadius rounds the background, in cells.
	BackgroundCornerRadius float64

	OnPixels  fill.Style
	OffPixels fill.Style
	EyeOuter  fill.Style
	EyePupil  fill.Style

	Shadow *render.Shadow
}

// NewStyle returns black on white with no shadow.
func NewStyle() *Style {
	return &Style{
		Background: fill.NewSolid(gg.White),
		OnPixels:   fill.NewSolid(gg.Black),
	}
}

// Clone returns an independent copy of s.
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	return &Style{
		Background:             cloneStyle(s.Background),
		BackgroundCornerRadius: s.BackgroundCornerRadius,
		OnPixels:               cloneStyle(s.OnPixels),
		OffPixels:              cloneStyle(s.OffPixels),
		EyeOuter:               cloneStyle(s.EyeOuter),
		EyePupil:               cloneStyle(s.EyePupil),
		Shadow:                 s.Shadow.Clone(),
	}
}

// EyeOuterStyle returns EyeOuter, or OnPixels when it is unset.
func (s *Style) EyeOuterStyle() fill.Style {
	if s.EyeOuter != nil {
		return s.EyeOuter
	}
	return s.OnPixels
}

// EyePupilStyle returns EyePupil, or OnPixels when it is unset.
func (s *Style) EyePupilStyle() fill.Style {
	if s.EyePupil != nil {
		return s.EyePupil
	}
	return s.OnPixels
}

func cloneStyle(s fill.Style) fill.Style {
	if s == nil {
		return nil
	}
	return s.Clone()
}

// Shape holds the generators of a design.
type Shape struct {
	OnPixels shape.PixelGenerator
	// OffPixels shapes the unset cells. Nil draws nothing for them.
	OffPixels shape.PixelGenerator
	Eye       shape.EyeGenerator
	// Pupil overrides the default pupil of Eye when set.
	Pupil shape.PupilGenerator
}

// NewShape returns square pixels and square eyes.
func NewShape() *Shape {
	return &Shape{
		OnPixels: shape.CreatePixel(shape.DefaultName, nil),
		Eye:      shape.CreateEye(shape.DefaultName, nil),
	}
}

// Clone returns an independent copy of s.
func (s *Shape) Clone() *Shape {
	if s == nil {
		return nil
	}
	c := &Shape{}
	if s.OnPixels != nil {
		c.OnPixels = s.OnPixels.Clone()
	}
	if s.OffPixels != nil {
		c.OffPixels = s.OffPixels.Clone()
	}
	if s.Eye != nil {
		c.Eye = s.Eye.Clone()
	}
	if s.Pupil != nil {
		c.Pupil = s.Pupil.Clone()
	}
	return c
}

// onPixels returns the on-pixel generator, creating the default when unset.
func (s *Shape) onPixels() shape.PixelGenerator {
	if s != nil && s.OnPixels != nil {
		return s.OnPixels
	}
	return shape.CreatePixel(shape.DefaultName, nil)
}

func (s *Shape) eye() shape.EyeGenerator {
	if s != nil && s.Eye != nil {
		return s.Eye
	}
	return shape.CreateEye(shape.DefaultName, nil)
}

// pupil returns the pupil override; nil selects the eye's default.
func (s *Shape) pupil() shape.PupilGenerator {
	if s == nil {
		return nil
	}
	return s.Pupil
}

// ListGenerators returns the registered generators of category, sorted by
// name.
func ListGenerators(c shape.Category) []shape.Descriptor {
	return shape.List(c)
}

// CreateGenerator creates a generator of category by name. Unknown names
// yield the category default and log a warning. The result is a
// shape.PixelGenerator, shape.EyeGenerator or shape.PupilGenerator
// according to category, or nil for an unknown category.
func CreateGenerator(c shape.Category, name string, cfg settings.Config) shape.Codable {
	return shape.Create(c, name, cfg)
}
