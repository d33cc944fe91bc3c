// Package svg provides the SVG backend. Every layer becomes a <path>
// element with the nonzero fill rule, so the output keeps the exact
// geometry of the raster backend at any zoom.
//
// Gradients are emitted as userSpaceOnUse gradient definitions, image fills
// as embedded PNG data URIs clipped to the layer path, and the drop shadow
// as a single feGaussianBlur filter.
//
//	import _ "github.com/gogpu/gg-qr/render/svg"
//
//	err := render.Render("svg", scene, w)
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/shape"
)

func init() {
	render.Register("svg", func() render.Backend {
		return NewBackend()
	})
}

// Backend writes scenes as SVG documents.
type Backend struct {
	width  int
	height int
	defs   strings.Builder
	body   strings.Builder
	ids    map[string]int
	err    error
}

var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	b.width = width
	b.height = height
	b.defs.Reset()
	b.body.Reset()
	b.ids = make(map[string]int)
	b.err = nil
	return nil
}

// End finalizes the document and reports the first encoding error.
func (b *Backend) End() error {
	return b.err
}

// FillPath emits path filled with paint.
func (b *Backend) FillPath(path *gg.Path, paint fill.Paint) {
	if shape.Empty(path) {
		return
	}
	d := PathData(path)
	switch p := paint.(type) {
	case fill.SolidPaint:
		fmt.Fprintf(&b.body, `<path d="%s" fill-rule="nonzero"%s/>`+"\n", d, fillAttrs(p.Color))
	case fill.LinearPaint:
		id := b.nextID("lg")
		fmt.Fprintf(&b.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			id, num(p.Start.X), num(p.Start.Y), num(p.End.X), num(p.End.Y))
		writeStops(&b.defs, p.Stops)
		b.defs.WriteString("</linearGradient>\n")
		fmt.Fprintf(&b.body, `<path d="%s" fill-rule="nonzero" fill="url(#%s)"/>`+"\n", d, id)
	case fill.RadialPaint:
		id := b.nextID("rg")
		fmt.Fprintf(&b.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`+"\n",
			id, num(p.Center.X), num(p.Center.Y), num(p.Radius))
		writeStops(&b.defs, p.Stops)
		b.defs.WriteString("</radialGradient>\n")
		fmt.Fprintf(&b.body, `<path d="%s" fill-rule="nonzero" fill="url(#%s)"/>`+"\n", d, id)
	case fill.ImagePaint:
		b.fillImage(d, p)
	}
}

func (b *Backend) fillImage(d string, p fill.ImagePaint) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image); err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("svg: encode image fill: %w", err)
		}
		return
	}
	id := b.nextID("clip")
	fmt.Fprintf(&b.defs, `<clipPath id="%s"><path d="%s" clip-rule="nonzero"/></clipPath>`+"\n", id, d)
	fmt.Fprintf(&b.body,
		`<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="none" clip-path="url(#%s)" href="data:image/png;base64,%s"/>`+"\n",
		num(p.Rect.Min.X), num(p.Rect.Min.Y), num(p.Rect.Width()), num(p.Rect.Height()),
		id, base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// DrawShadow emits the silhouette through a Gaussian blur filter.
func (b *Backend) DrawShadow(silhouette *gg.Path, s render.Shadow) {
	if shape.Empty(silhouette) {
		return
	}
	filter := ""
	if sigma := s.Sigma(); sigma > 0 {
		id := b.nextID("shadow")
		fmt.Fprintf(&b.defs,
			`<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%"><feGaussianBlur stdDeviation="%s"/></filter>`+"\n",
			id, num(sigma))
		filter = fmt.Sprintf(` filter="url(#%s)"`, id)
	}
	fmt.Fprintf(&b.body, `<g%s><path d="%s" transform="translate(%s %s)" fill-rule="nonzero"%s/></g>`+"\n",
		filter, PathData(silhouette), num(s.DX), num(s.DY), fillAttrs(s.Color))
}

// WriteTo writes the SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	if b.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.WriteString(b.defs.String())
		out.WriteString("</defs>\n")
	}
	out.WriteString(b.body.String())
	out.WriteString("</svg>\n")
	n, err := io.WriteString(w, out.String())
	return int64(n), err
}

func (b *Backend) nextID(prefix string) string {
	b.ids[prefix]++
	return prefix + strconv.Itoa(b.ids[prefix])
}

// PathData returns the SVG path data of p in absolute commands.
func PathData(p *gg.Path) string {
	var sb strings.Builder
	for _, elem := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case gg.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(e.Point.X), num(e.Point.Y))
		case gg.LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(e.Point.X), num(e.Point.Y))
		case gg.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				num(e.Control.X), num(e.Control.Y), num(e.Point.X), num(e.Point.Y))
		case gg.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				num(e.Control1.X), num(e.Control1.Y),
				num(e.Control2.X), num(e.Control2.Y),
				num(e.Point.X), num(e.Point.Y))
		case gg.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writeStops(sb *strings.Builder, stops []fill.GradientStop) {
	for _, s := range stops {
		fmt.Fprintf(sb, `<stop offset="%s" stop-color="%s"`, num(s.Offset), hexColor(s.Color))
		if s.Color.A < 1 {
			fmt.Fprintf(sb, ` stop-opacity="%s"`, num(s.Color.A))
		}
		sb.WriteString("/>\n")
	}
}

func fillAttrs(c gg.RGBA) string {
	attrs := fmt.Sprintf(` fill="%s"`, hexColor(c))
	if c.A < 1 {
		attrs += fmt.Sprintf(` fill-opacity="%s"`, num(c.A))
	}
	return attrs
}

func hexColor(c gg.RGBA) string {
	n := fill.NRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
