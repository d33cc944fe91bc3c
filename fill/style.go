// Package fill provides the fill styles applied to rendered layers.
//
// A Style is resolved against the rectangle being filled, producing a
// Paint in absolute coordinates. Gradient geometry is expressed in unit
// coordinates of that rectangle, so a style keeps its look at any output
// size.
//
//	bg := fill.NewSolid(gg.White)
//	fg := fill.NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 1)).
//	    AddColorStop(0, gg.Hex("#1d3557")).
//	    AddColorStop(1, gg.Hex("#e63946"))
package fill

import (
	"errors"
	"math"
	"sort"

	"github.com/gogpu/gg"
)

// ErrNoStops is returned when a gradient is validated without any color
// stops.
var ErrNoStops = errors.New("fill: gradient has no color stops")

// Style resolves to a Paint for a target rectangle.
type Style interface {
	// Paint resolves the style against rect.
	Paint(rect gg.Rect) Paint
	// Clone returns an independent copy.
	Clone() Style
}

// Fill paints the whole of rect with s.
func Fill(c Canvas, s Style, rect gg.Rect) {
	p := gg.NewPath()
	p.Rectangle(rect.Min.X, rect.Min.Y, rect.Width(), rect.Height())
	c.FillPath(p, s.Paint(rect))
}

// FillPath paints path with s. Gradients and images are laid out relative
// to rect, not to the bounds of path.
func FillPath(c Canvas, s Style, rect gg.Rect, path *gg.Path) {
	c.FillPath(path, s.Paint(rect))
}

// Solid is a single color style.
type Solid struct {
	Color gg.RGBA
}

// NewSolid creates a solid color style.
func NewSolid(c gg.RGBA) *Solid {
	return &Solid{Color: c}
}

// Paint implements Style.
func (s *Solid) Paint(gg.Rect) Paint {
	return SolidPaint(*s)
}

// Clone implements Style.
func (s *Solid) Clone() Style {
	c := *s
	return &c
}

// LinearGradient blends colors along the line from Start to End, both in
// unit coordinates of the filled rectangle.
type LinearGradient struct {
	Start gg.Point
	End   gg.Point
	Stops []GradientStop
}

// NewLinearGradient creates a linear gradient between two unit points.
func NewLinearGradient(start, end gg.Point) *LinearGradient {
	return &LinearGradient{Start: start, End: end}
}

// AddColorStop adds a color stop at the specified offset.
// Offset is clamped to [0, 1]; stops stay sorted.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, color gg.RGBA) *LinearGradient {
	g.Stops = addStop(g.Stops, offset, color)
	return g
}

// Validate reports ErrNoStops for a gradient without stops.
func (g *LinearGradient) Validate() error {
	if len(g.Stops) == 0 {
		return ErrNoStops
	}
	return nil
}

// Paint implements Style. A gradient without stops paints transparent.
func (g *LinearGradient) Paint(rect gg.Rect) Paint {
	if len(g.Stops) == 0 {
		return SolidPaint{Color: gg.Transparent}
	}
	return LinearPaint{
		Start: unitToRect(rect, g.Start),
		End:   unitToRect(rect, g.End),
		Stops: cloneStops(g.Stops),
	}
}

// Clone implements Style.
func (g *LinearGradient) Clone() Style {
	return &LinearGradient{Start: g.Start, End: g.End, Stops: cloneStops(g.Stops)}
}

// RadialGradient blends colors outwards from Center, in unit coordinates
// of the filled rectangle. Offset 1 lies on the circle through the
// rectangle corner farthest from the centre.
type RadialGradient struct {
	Center gg.Point
	Stops  []GradientStop
}

// NewRadialGradient creates a radial gradient around a unit centre point.
func NewRadialGradient(center gg.Point) *RadialGradient {
	return &RadialGradient{Center: center}
}

// AddColorStop adds a color stop at the specified offset.
// Offset is clamped to [0, 1]; stops stay sorted.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, color gg.RGBA) *RadialGradient {
	g.Stops = addStop(g.Stops, offset, color)
	return g
}

// Validate reports ErrNoStops for a gradient without stops.
func (g *RadialGradient) Validate() error {
	if len(g.Stops) == 0 {
		return ErrNoStops
	}
	return nil
}

// Paint implements Style. A gradient without stops paints transparent.
func (g *RadialGradient) Paint(rect gg.Rect) Paint {
	if len(g.Stops) == 0 {
		return SolidPaint{Color: gg.Transparent}
	}
	c := unitToRect(rect, g.Center)
	r := 0.0
	for _, corner := range []gg.Point{
		rect.Min,
		gg.Pt(rect.Max.X, rect.Min.Y),
		rect.Max,
		gg.Pt(rect.Min.X, rect.Max.Y),
	} {
		r = math.Max(r, c.Distance(corner))
	}
	return RadialPaint{Center: c, Radius: r, Stops: cloneStops(g.Stops)}
}

// Clone implements Style.
func (g *RadialGradient) Clone() Style {
	return &RadialGradient{Center: g.Center, Stops: cloneStops(g.Stops)}
}

func unitToRect(r gg.Rect, u gg.Point) gg.Point {
	return gg.Pt(r.Min.X+u.X*r.Width(), r.Min.Y+u.Y*r.Height())
}

func addStop(stops []GradientStop, offset float64, color gg.RGBA) []GradientStop {
	if math.IsNaN(offset) {
		offset = 0
	}
	offset = math.Max(0, math.Min(1, offset))
	stops = append(stops, GradientStop{Offset: offset, Color: color})
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	return stops
}

func cloneStops(stops []GradientStop) []GradientStop {
	if stops == nil {
		return nil
	}
	out := make([]GradientStop, len(stops))
	copy(out, stops)
	return out
}
