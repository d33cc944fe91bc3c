package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// kappa is the cubic Bézier handle length for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// squircleHandle is the handle length used by Squircle. It sits between a
// circle (kappa) and a square (1).
const squircleHandle = 0.88

// Append adds every element of src to dst, transformed by m.
func Append(dst, src *gg.Path, m gg.Matrix) {
	if src == nil {
		return
	}
	for _, elem := range src.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			pt := m.TransformPoint(e.Point)
			dst.MoveTo(pt.X, pt.Y)
		case gg.LineTo:
			pt := m.TransformPoint(e.Point)
			dst.LineTo(pt.X, pt.Y)
		case gg.QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			dst.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case gg.CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			dst.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case gg.Close:
			dst.Close()
		}
	}
}

// Concat returns a new path holding the subpaths of every input.
// Nil inputs are skipped.
func Concat(paths ...*gg.Path) *gg.Path {
	out := gg.NewPath()
	for _, p := range paths {
		Append(out, p, gg.Identity())
	}
	return out
}

// Empty reports whether p is nil or has no elements.
func Empty(p *gg.Path) bool {
	return p == nil || len(p.Elements()) == 0
}

// Ring adds outer and the reverse of inner to p. Under the nonzero fill
// rule the inner contour becomes a hole.
func Ring(p *gg.Path, outer, inner *gg.Path) {
	Append(p, outer, gg.Identity())
	Append(p, inner.Reversed(), gg.Identity())
}

// Polygon adds a closed polygon through pts.
func Polygon(p *gg.Path, pts ...gg.Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Corners holds one radius per rectangle corner.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform returns Corners with the same radius everywhere.
func Uniform(r float64) Corners {
	return Corners{r, r, r, r}
}

// RoundedRect adds a rectangle with a uniform corner radius. The radius is
// limited to half the shorter side; a radius of zero adds a plain
// rectangle.
func RoundedRect(p *gg.Path, x, y, w, h, r float64) {
	RoundedRectCorners(p, x, y, w, h, Uniform(r))
}

// RoundedRectCorners adds a rectangle with individual corner radii.
// Each radius is limited to half the shorter side.
func RoundedRectCorners(p *gg.Path, x, y, w, h float64, c Corners) {
	if w <= 0 || h <= 0 {
		return
	}
	limit := math.Min(w, h) / 2
	tl := clampRadius(c.TopLeft, limit)
	tr := clampRadius(c.TopRight, limit)
	br := clampRadius(c.BottomRight, limit)
	bl := clampRadius(c.BottomLeft, limit)

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.CubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.CubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.CubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.CubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	p.Close()
}

func clampRadius(r, limit float64) float64 {
	switch {
	case r <= 0 || math.IsNaN(r):
		return 0
	case r > limit:
		return limit
	}
	return r
}

// Squircle adds a superellipse-like rounded square filling the rectangle.
func Squircle(p *gg.Path, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	hw, hh := w/2, h/2
	cx, cy := x+hw, y+hh
	k := squircleHandle

	p.MoveTo(cx, y)
	p.CubicTo(cx+hw*k, y, x+w, cy-hh*k, x+w, cy)
	p.CubicTo(x+w, cy+hh*k, cx+hw*k, y+h, cx, y+h)
	p.CubicTo(cx-hw*k, y+h, x, cy+hh*k, x, cy)
	p.CubicTo(x, cy-hh*k, cx-hw*k, y, cx, y)
	p.Close()
}

// Bulge adds a rounded rectangle whose straight edges bow outwards by b,
// the outline of a cathode ray tube screen.
func Bulge(p *gg.Path, x, y, w, h, r, b float64) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(r, math.Min(w, h)/2)
	cx, cy := x+w/2, y+h/2
	// A quadratic through the edge midpoint offset by b needs its control
	// point offset by 2b.
	b2 := 2 * b

	p.MoveTo(x+r, y)
	p.QuadraticTo(cx, y-b2, x+w-r, y)
	p.QuadraticTo(x+w, y, x+w, y+r)
	p.QuadraticTo(x+w+b2, cy, x+w, y+h-r)
	p.QuadraticTo(x+w, y+h, x+w-r, y+h)
	p.QuadraticTo(cx, y+h+b2, x+r, y+h)
	p.QuadraticTo(x, y+h, x, y+h-r)
	p.QuadraticTo(x-b2, cy, x, y+r)
	p.QuadraticTo(x, y, x+r, y)
	p.Close()
}

// Pill adds a rectangle whose shorter sides are fully rounded.
func Pill(p *gg.Path, x, y, w, h float64) {
	RoundedRect(p, x, y, w, h, math.Min(w, h)/2)
}
