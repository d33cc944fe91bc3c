// Package pdf provides the PDF backend. A scene becomes a single page
// whose size in points equals the scene size in user units.
//
// Paths are written as native PDF path operators filled with the nonzero
// rule. Gradients use PDF shadings (one shading per pair of adjacent
// stops), image fills and the drop shadow are embedded as PNG images. The
// shadow image is produced by the raster backend so both outputs blur the
// same way.
//
//	import _ "github.com/gogpu/gg-qr/render/pdf"
//
//	err := render.Render("pdf", scene, w)
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/render/raster"
	"github.com/gogpu/gg-qr/shape"
)

func init() {
	render.Register("pdf", func() render.Backend {
		return NewBackend()
	})
}

// maxRings bounds the number of solid rings used to approximate a
// multi-stop radial gradient.
const maxRings = 256

// Backend writes scenes as single-page PDF documents.
type Backend struct {
	pdf    *fpdf.Fpdf
	width  int
	height int
	images int
}

var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new PDF backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document with one width×height point page.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	size := fpdf.SizeType{Wd: float64(width), Ht: float64(height)}
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetCreator("gg-qr", false)
	f.SetCreationDate(time.Unix(0, 0).UTC())
	f.SetModificationDate(time.Unix(0, 0).UTC())
	f.AddPageFormat("P", size)

	b.pdf = f
	b.width = width
	b.height = height
	b.images = 0
	return f.Error()
}

// End finalizes the document and reports any error recorded by fpdf.
func (b *Backend) End() error {
	if b.pdf == nil {
		return fmt.Errorf("pdf: End before Begin")
	}
	if err := b.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// WriteTo writes the PDF document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.pdf == nil {
		return 0, fmt.Errorf("pdf: WriteTo before Begin")
	}
	cw := &countingWriter{w: w}
	err := b.pdf.Output(cw)
	return cw.n, err
}

// FillPath fills path with paint.
func (b *Backend) FillPath(path *gg.Path, paint fill.Paint) {
	if b.pdf == nil || shape.Empty(path) {
		return
	}
	switch p := paint.(type) {
	case fill.SolidPaint:
		b.fillSolid(path, p.Color)
	case fill.LinearPaint:
		b.clipped(path, func() { b.linear(p) })
	case fill.RadialPaint:
		b.clipped(path, func() { b.radial(p) })
	case fill.ImagePaint:
		b.clipped(path, func() {
			b.image(p.Image, p.Rect)
		})
	}
}

// DrawShadow embeds the raster shadow image over the whole page.
func (b *Backend) DrawShadow(silhouette *gg.Path, s render.Shadow) {
	if b.pdf == nil || shape.Empty(silhouette) {
		return
	}
	img, err := raster.ShadowImage(silhouette, s, b.width, b.height)
	if err != nil {
		b.pdf.SetError(fmt.Errorf("shadow: %w", err))
		return
	}
	b.image(img, gg.Rect{Max: gg.Pt(float64(b.width), float64(b.height))})
}

func (b *Backend) fillSolid(path *gg.Path, c gg.RGBA) {
	if c.A <= 0 {
		return
	}
	b.setFill(c)
	b.writePath(path)
	b.pdf.DrawPath("f")
	b.resetAlpha(c)
}

// clipped runs draw with path installed as the clip region.
func (b *Backend) clipped(path *gg.Path, draw func()) {
	b.pdf.TransformBegin()
	b.writePath(path)
	b.pdf.RawWriteStr("W n")
	draw()
	b.pdf.TransformEnd()
}

// linear paints the whole page with p. Each pair of adjacent stops gets
// its own shading, clipped to the band between the two stop offsets.
func (b *Backend) linear(p fill.LinearPaint) {
	stops := p.Stops
	if len(stops) == 0 {
		return
	}
	length := p.Start.Distance(p.End)
	if len(stops) == 1 || length == 0 {
		b.fillPage(stops[len(stops)-1].Color)
		return
	}
	u := p.End.Sub(p.Start).Mul(1 / length)
	n := gg.Pt(-u.Y, u.X)
	far := 2 * float64(b.width+b.height)
	at := func(d float64) gg.Point { return p.Start.Add(u.Mul(d)) }

	for i := 1; i < len(stops); i++ {
		a, c := stops[i-1], stops[i]
		d0, d1 := a.Offset*length, c.Offset*length
		if i == 1 {
			d0 = -far
		}
		if i == len(stops)-1 {
			d1 = far
		}
		if d1 <= d0 {
			continue
		}
		band := []fpdf.PointType{
			pt(at(d0).Sub(n.Mul(far))),
			pt(at(d1).Sub(n.Mul(far))),
			pt(at(d1).Add(n.Mul(far))),
			pt(at(d0).Add(n.Mul(far))),
		}
		b.pdf.ClipPolygon(band, false)
		b.withAlpha((a.Color.A+c.Color.A)/2, func() {
			s, e := b.unit(at(a.Offset*length)), b.unit(at(c.Offset*length))
			ra, ga, ba := rgb(a.Color)
			rc, gc, bc := rgb(c.Color)
			b.pdf.LinearGradient(0, 0, float64(b.width), float64(b.height),
				ra, ga, ba, rc, gc, bc, s.X, s.Y, e.X, e.Y)
		})
		b.pdf.ClipEnd()
	}
}

// radial paints the whole page with p. Two stops at offsets 0 and 1 map
// onto a native radial shading; other stop lists are drawn as solid
// rings.
func (b *Backend) radial(p fill.RadialPaint) {
	stops := p.Stops
	if len(stops) == 0 {
		return
	}
	last := stops[len(stops)-1]
	if p.Radius <= 0 || len(stops) == 1 {
		b.fillPage(last.Color)
		return
	}
	if len(stops) == 2 && stops[0].Offset == 0 && stops[1].Offset == 1 {
		a, c := stops[0], stops[1]
		ra, ga, ba := rgb(a.Color)
		rc, gc, bc := rgb(c.Color)
		r := p.Radius
		b.withAlpha((a.Color.A+c.Color.A)/2, func() {
			b.pdf.RadialGradient(p.Center.X-r, p.Center.Y-r, 2*r, 2*r,
				ra, ga, ba, rc, gc, bc, 0.5, 0.5, 0.5, 0.5, 0.5)
		})
		return
	}

	b.fillPage(last.Color)
	rings := min(maxRings, max(1, int(math.Ceil(p.Radius))))
	step := p.Radius / float64(rings)
	for i := rings - 1; i >= 0; i-- {
		inner, outer := float64(i)*step, float64(i+1)*step
		c := fill.ColorAt(stops, (inner+outer)/2/p.Radius)
		ring := gg.NewPath()
		ring.Circle(p.Center.X, p.Center.Y, outer)
		if inner > 0 {
			hole := gg.NewPath()
			hole.Circle(p.Center.X, p.Center.Y, inner)
			shape.Append(ring, hole.Reversed(), gg.Identity())
		}
		b.fillSolid(ring, c)
	}
}

func (b *Backend) fillPage(c gg.RGBA) {
	page := gg.NewPath()
	page.Rectangle(0, 0, float64(b.width), float64(b.height))
	b.fillSolid(page, c)
}

// image embeds img as a PNG stretched over rect.
func (b *Backend) image(img image.Image, rect gg.Rect) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		b.pdf.SetError(fmt.Errorf("encode image: %w", err))
		return
	}
	b.images++
	name := "img" + strconv.Itoa(b.images)
	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	b.pdf.RegisterImageOptionsReader(name, opts, &buf)
	b.pdf.ImageOptions(name, rect.Min.X, rect.Min.Y, rect.Width(), rect.Height(), false, opts, 0, "")
}

// writePath emits p as PDF path construction operators. Quadratic
// segments are raised to cubics.
func (b *Backend) writePath(p *gg.Path) {
	var cur, start gg.Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.pdf.MoveTo(e.Point.X, e.Point.Y)
			cur, start = e.Point, e.Point
		case gg.LineTo:
			b.pdf.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.QuadTo:
			c1 := cur.Add(e.Control.Sub(cur).Mul(2.0 / 3))
			c2 := e.Point.Add(e.Control.Sub(e.Point).Mul(2.0 / 3))
			b.pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.CubicTo:
			b.pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y,
				e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case gg.Close:
			b.pdf.ClosePath()
			cur = start
		}
	}
}

func (b *Backend) setFill(c gg.RGBA) {
	r, g, bl := rgb(c)
	b.pdf.SetFillColor(r, g, bl)
	if c.A < 1 {
		b.pdf.SetAlpha(c.A, "Normal")
	}
}

func (b *Backend) resetAlpha(c gg.RGBA) {
	if c.A < 1 {
		b.pdf.SetAlpha(1, "Normal")
	}
}

func (b *Backend) withAlpha(a float64, draw func()) {
	a = math.Max(0, math.Min(1, a))
	if a < 1 {
		b.pdf.SetAlpha(a, "Normal")
	}
	draw()
	if a < 1 {
		b.pdf.SetAlpha(1, "Normal")
	}
}

// unit maps a page point to the normalized gradient space of fpdf, whose
// origin is the bottom-left page corner.
func (b *Backend) unit(p gg.Point) gg.Point {
	return gg.Pt(p.X/float64(b.width), 1-p.Y/float64(b.height))
}

func pt(p gg.Point) fpdf.PointType {
	return fpdf.PointType{X: p.X, Y: p.Y}
}

func rgb(c gg.RGBA) (r, g, b int) {
	n := fill.NRGBA(c)
	return int(n.R), int(n.G), int(n.B)
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
