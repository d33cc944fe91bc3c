// Package raster provides the PNG backend. It rasterizes scenes with the
// gg software renderer.
//
// # Supported Features
//
//   - Solid, linear gradient, radial gradient and image fills
//   - Nonzero winding fills with anti-aliasing
//   - Gaussian drop shadow composited under the foreground
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/gg-qr/render/raster"
//
//	err := render.Render("png", scene, w)
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

func init() {
	render.Register("png", func() render.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to a pixel image using gg.Context.
// It implements render.Backend, render.WriterBackend and
// render.ImageBackend.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
	err    error
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend with a transparent canvas.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	b.err = nil
	return nil
}

// End finalizes rendering and reports the first fill error, if any.
func (b *Backend) End() error {
	return b.err
}

// FillPath fills path with paint.
func (b *Backend) FillPath(path *gg.Path, paint fill.Paint) {
	if b.ctx == nil || shape.Empty(path) {
		return
	}
	b.ctx.SetFillBrush(brushFor(paint))
	setPath(b.ctx, path, 0, 0)
	b.record(b.ctx.Fill())
}

// DrawShadow composites a blurred, offset copy of silhouette.
func (b *Backend) DrawShadow(silhouette *gg.Path, s render.Shadow) {
	if b.ctx == nil || shape.Empty(silhouette) {
		return
	}
	img, err := ShadowImage(silhouette, s, b.width, b.height)
	if err != nil {
		b.record(err)
		return
	}
	b.ctx.DrawImage(gg.ImageBufFromImage(img), 0, 0)
}

func (b *Backend) record(err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("raster: fill: %w", err)
	}
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo writes the rendered content as PNG to the writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, fmt.Errorf("raster: WriteTo before Begin")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// ShadowImage renders the drop shadow of silhouette on a transparent
// width×height canvas: the silhouette is filled with the shadow color,
// offset by (DX, DY), then blurred with a Gaussian of standard deviation
// s.Sigma(). The PDF backend embeds this image to match raster output.
func ShadowImage(silhouette *gg.Path, s render.Shadow, width, height int) (*image.RGBA, error) {
	ctx := gg.NewContext(width, height)
	ctx.SetFillRule(gg.FillRuleNonZero)
	ctx.SetFillBrush(gg.Solid(s.Color))
	setPath(ctx, silhouette, s.DX, s.DY)
	if err := ctx.Fill(); err != nil {
		return nil, fmt.Errorf("raster: shadow: %w", err)
	}
	img := clone.AsRGBA(ctx.Image())
	sigma := s.Sigma()
	if sigma <= 0 {
		return img, nil
	}
	k := gaussianKernel(sigma)
	opts := &convolution.Options{}
	img = convolution.Convolve(img, k, opts)
	return convolution.Convolve(img, k.Transposed(), opts), nil
}

// gaussianKernel returns a normalized horizontal kernel covering three
// standard deviations on each side.
func gaussianKernel(sigma float64) convolution.Matrix {
	half := int(math.Ceil(3 * sigma))
	k := convolution.NewKernel(2*half+1, 1)
	for i := range k.Matrix {
		x := float64(i - half)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}

// setPath replays p into the context path, translated by (dx, dy).
func setPath(ctx *gg.Context, p *gg.Path, dx, dy float64) {
	ctx.ClearPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			ctx.MoveTo(e.Point.X+dx, e.Point.Y+dy)
		case gg.LineTo:
			ctx.LineTo(e.Point.X+dx, e.Point.Y+dy)
		case gg.QuadTo:
			ctx.QuadraticTo(e.Control.X+dx, e.Control.Y+dy, e.Point.X+dx, e.Point.Y+dy)
		case gg.CubicTo:
			ctx.CubicTo(e.Control1.X+dx, e.Control1.Y+dy,
				e.Control2.X+dx, e.Control2.Y+dy,
				e.Point.X+dx, e.Point.Y+dy)
		case gg.Close:
			ctx.ClosePath()
		}
	}
}

// brushFor converts a resolved paint to a gg brush.
func brushFor(paint fill.Paint) gg.Brush {
	switch p := paint.(type) {
	case fill.SolidPaint:
		return gg.Solid(p.Color)
	case fill.LinearPaint:
		g := gg.NewLinearGradientBrush(p.Start.X, p.Start.Y, p.End.X, p.End.Y)
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	case fill.RadialPaint:
		g := gg.NewRadialGradientBrush(p.Center.X, p.Center.Y, 0, p.Radius)
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	case fill.ImagePaint:
		return imageBrush(p)
	default:
		return gg.Solid(gg.Transparent)
	}
}

// imageBrush samples the pre-scaled image of p with nearest-neighbour
// lookup. Pixels outside the image take the nearest edge pixel.
func imageBrush(p fill.ImagePaint) gg.Brush {
	img := clone.AsRGBA(p.Image)
	bounds := img.Bounds()
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		ix := bounds.Min.X + int(math.Floor(x-p.Rect.Min.X))
		iy := bounds.Min.Y + int(math.Floor(y-p.Rect.Min.Y))
		ix = min(max(ix, bounds.Min.X), bounds.Max.X-1)
		iy = min(max(iy, bounds.Min.Y), bounds.Max.Y-1)
		return fill.FromNRGBA(color.NRGBAModel.Convert(img.RGBAAt(ix, iy)).(color.NRGBA))
	})
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
