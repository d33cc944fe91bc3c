package pixel

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/shape"
)

// All drawing functions work in the 10×10 local cell space, y down.

func drawSquare(p *gg.Path, _ *params) {
	p.Rectangle(0, 0, 10, 10)
}

func drawCircle(p *gg.Path, _ *params) {
	p.Circle(5, 5, 5)
}

func drawRoundedRect(p *gg.Path, prm *params) {
	shape.RoundedRect(p, 0, 0, 10, 10, prm.cornerRadius*5)
}

func drawSquircle(p *gg.Path, _ *params) {
	shape.Squircle(p, 0, 0, 10, 10)
}

func drawDiamond(p *gg.Path, _ *params) {
	shape.Polygon(p, gg.Pt(5, 0), gg.Pt(10, 5), gg.Pt(5, 10), gg.Pt(0, 5))
}

func drawArrow(p *gg.Path, _ *params) {
	shape.Polygon(p,
		gg.Pt(5, 0), gg.Pt(10, 3), gg.Pt(10, 10),
		gg.Pt(5, 7), gg.Pt(0, 10), gg.Pt(0, 3),
	)
}

func drawStar(p *gg.Path, _ *params) {
	const (
		points = 5
		outer  = 5.0
		inner  = 2.1
	)
	pts := make([]gg.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/points
		pts = append(pts, gg.Pt(5+r*math.Cos(a), 5+r*math.Sin(a)))
	}
	shape.Polygon(p, pts...)
}

func drawHeart(p *gg.Path, _ *params) {
	p.MoveTo(5, 9.5)
	p.CubicTo(-2.5, 4.5, 1.5, -2, 5, 2.5)
	p.CubicTo(8.5, -2, 12.5, 4.5, 5, 9.5)
	p.Close()
}

func drawFlower(p *gg.Path, _ *params) {
	const r = 2.75
	p.Circle(5, r, r)
	p.Circle(10-r, 5, r)
	p.Circle(5, 10-r, r)
	p.Circle(r, 5, r)
	p.Circle(5, 5, 2.5)
}

// drawPointy is a rounded cell with a sharp top-left corner.
func drawPointy(p *gg.Path, _ *params) {
	shape.RoundedRectCorners(p, 0, 0, 10, 10, shape.Corners{
		TopRight:    5,
		BottomRight: 5,
		BottomLeft:  5,
	})
}

// drawSharp is a four-pointed star with concave sides.
func drawSharp(p *gg.Path, _ *params) {
	p.MoveTo(5, 0)
	p.QuadraticTo(5, 5, 10, 5)
	p.QuadraticTo(5, 5, 5, 10)
	p.QuadraticTo(5, 5, 0, 5)
	p.QuadraticTo(5, 5, 5, 0)
	p.Close()
}

// drawCrosshatch is two diagonal bars crossing in the cell centre.
func drawCrosshatch(p *gg.Path, _ *params) {
	const (
		halfLength = 5.5
		halfWidth  = 1.25
	)
	for _, a := range []float64{math.Pi / 4, -math.Pi / 4} {
		d := gg.Pt(math.Cos(a), math.Sin(a))
		n := gg.Pt(-d.Y, d.X)
		c := gg.Pt(5, 5)
		shape.Polygon(p,
			c.Sub(d.Mul(halfLength)).Sub(n.Mul(halfWidth)),
			c.Add(d.Mul(halfLength)).Sub(n.Mul(halfWidth)),
			c.Add(d.Mul(halfLength)).Add(n.Mul(halfWidth)),
			c.Sub(d.Mul(halfLength)).Add(n.Mul(halfWidth)),
		)
	}
}
