package fill

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Paint is a fill style resolved against a target rectangle, in absolute
// user coordinates. Backends translate a Paint into their own primitives.
// This is a sealed interface - only types in this package implement it.
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()
}

// SolidPaint fills with a single color.
type SolidPaint struct {
	Color gg.RGBA
}

func (SolidPaint) paintMarker() {}

// LinearPaint is a linear gradient between two absolute points.
type LinearPaint struct {
	Start gg.Point       // Position of offset 0
	End   gg.Point       // Position of offset 1
	Stops []GradientStop // Sorted by offset
}

func (LinearPaint) paintMarker() {}

// RadialPaint is a radial gradient around an absolute centre.
type RadialPaint struct {
	Center gg.Point       // Position of offset 0
	Radius float64        // Distance of offset 1 from Center
	Stops  []GradientStop // Sorted by offset
}

func (RadialPaint) paintMarker() {}

// ImagePaint draws an image stretched over Rect. The image has already
// been resampled to the pixel size of Rect, so backends can place it
// without further filtering.
type ImagePaint struct {
	Image image.Image
	Rect  gg.Rect
}

func (ImagePaint) paintMarker() {}

// GradientStop defines a color stop in a gradient.
type GradientStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  gg.RGBA // Color at this position
}

// Canvas is the drawing surface a Style paints on. Render backends
// implement it.
type Canvas interface {
	// FillPath fills path with paint using the nonzero winding rule.
	FillPath(path *gg.Path, paint Paint)
}

// ColorAt returns the color of sorted stops at offset t. Offsets before
// the first stop or after the last stop take the nearest stop color.
func ColorAt(stops []GradientStop, t float64) gg.RGBA {
	switch {
	case len(stops) == 0:
		return gg.Transparent
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return a.Color.Lerp(b.Color, (t-a.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// NRGBA converts c to 8-bit straight alpha, rounding each channel.
func NRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// FromNRGBA converts an 8-bit straight alpha color.
func FromNRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
