package eye

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/shape"
)

// Eye rings: outer edge at 0..90, hole inset by one module.

const border = shape.EyeModule

func ring(p *gg.Path, outer, inner func(*gg.Path)) {
	o, i := gg.NewPath(), gg.NewPath()
	outer(o)
	inner(i)
	shape.Ring(p, o, i)
}

// shrink returns the radii of a rectangle inset by d from one with radii c.
func shrink(c shape.Corners, d float64) shape.Corners {
	return shape.Corners{
		TopLeft:     math.Max(c.TopLeft-d, 0),
		TopRight:    math.Max(c.TopRight-d, 0),
		BottomRight: math.Max(c.BottomRight-d, 0),
		BottomLeft:  math.Max(c.BottomLeft-d, 0),
	}
}

func cornered(outer, inner shape.Corners) func(p *gg.Path, _ float64) {
	return func(p *gg.Path, _ float64) {
		ring(p,
			func(o *gg.Path) { shape.RoundedRectCorners(o, 0, 0, 90, 90, outer) },
			func(i *gg.Path) { shape.RoundedRectCorners(i, border, border, 90-2*border, 90-2*border, inner) },
		)
	}
}

func squareEye(p *gg.Path, _ float64) {
	ring(p,
		func(o *gg.Path) { o.Rectangle(0, 0, 90, 90) },
		func(i *gg.Path) { i.Rectangle(border, border, 90-2*border, 90-2*border) },
	)
}

func circleEye(p *gg.Path, _ float64) {
	ring(p,
		func(o *gg.Path) { o.Circle(45, 45, 45) },
		func(i *gg.Path) { i.Circle(45, 45, 45-border) },
	)
}

func roundedRectEye(p *gg.Path, cr float64) {
	r := cr * 45
	ring(p,
		func(o *gg.Path) { shape.RoundedRect(o, 0, 0, 90, 90, r) },
		func(i *gg.Path) { shape.RoundedRect(i, border, border, 90-2*border, 90-2*border, math.Max(r-border, 0)) },
	)
}

var (
	roundedOuterEye = cornered(shape.Uniform(30), shape.Corners{})

	// The corner facing the symbol centre stays sharp.
	roundedPointingInEye = concentric(shape.Corners{TopLeft: 25, TopRight: 25, BottomLeft: 25})

	leafEye = concentric(shape.Corners{TopLeft: 40, BottomRight: 40})

	peacockEye = concentric(shape.Corners{TopLeft: 45, TopRight: 15, BottomRight: 45, BottomLeft: 15})

	teardropEye = concentric(shape.Corners{TopLeft: 45, TopRight: 45, BottomLeft: 45})
)

// concentric is cornered with the hole following the outer radii.
func concentric(outer shape.Corners) func(p *gg.Path, _ float64) {
	return cornered(outer, shrink(outer, border))
}

func squircleEye(p *gg.Path, _ float64) {
	ring(p,
		func(o *gg.Path) { shape.Squircle(o, 0, 0, 90, 90) },
		func(i *gg.Path) { shape.Squircle(i, border, border, 90-2*border, 90-2*border) },
	)
}

// crtEye bulges every edge by 3 units; edge midpoints sit on the module
// grid.
func crtEye(p *gg.Path, _ float64) {
	ring(p,
		func(o *gg.Path) { shape.Bulge(o, 3, 3, 84, 84, 20, 3) },
		func(i *gg.Path) { shape.Bulge(i, border+2, border+2, 86-2*border, 86-2*border, 12, 2) },
	)
}

// barsHorizontalEye draws the ring from horizontal pills: full width bars
// on top and bottom, short bars stacked along the sides.
func barsHorizontalEye(p *gg.Path, _ float64) {
	shape.Pill(p, 0, 0, 90, border)
	for k := 1; k < grid.EyeSize-1; k++ {
		y := border*float64(k) + border/10
		shape.Pill(p, 0, y, border, border*0.8)
		shape.Pill(p, 90-border, y, border, border*0.8)
	}
	shape.Pill(p, 0, 90-border, 90, border)
}

func barsVerticalEye(p *gg.Path, _ float64) {
	shape.Pill(p, 0, 0, border, 90)
	for k := 1; k < grid.EyeSize-1; k++ {
		x := border*float64(k) + border/10
		shape.Pill(p, x, 0, border*0.8, border)
		shape.Pill(p, x, 90-border, border*0.8, border)
	}
	shape.Pill(p, 90-border, 0, border, 90)
}

func barsAndDotsEye(p *gg.Path, _ float64) {
	shape.Pill(p, 0, 0, 90, border)
	for k := 1; k < grid.EyeSize-1; k++ {
		y := border*float64(k) + border/2
		p.Circle(border/2, y, border*0.45)
		p.Circle(90-border/2, y, border*0.45)
	}
	shape.Pill(p, 0, 90-border, 90, border)
}

// Pupils fill 0..30.

func squarePupil(p *gg.Path, _ float64) {
	p.Rectangle(0, 0, 30, 30)
}

func circlePupil(p *gg.Path, _ float64) {
	p.Circle(15, 15, 15)
}

func roundedRectPupil(p *gg.Path, cr float64) {
	shape.RoundedRect(p, 0, 0, 30, 30, cr*15)
}

func leafPupil(p *gg.Path, _ float64) {
	shape.RoundedRectCorners(p, 0, 0, 30, 30, shape.Corners{TopLeft: 12, BottomRight: 12})
}

func squirclePupil(p *gg.Path, _ float64) {
	shape.Squircle(p, 0, 0, 30, 30)
}

func barsHorizontalPupil(p *gg.Path, _ float64) {
	for k := 0; k < 3; k++ {
		shape.Pill(p, 0, 10*float64(k)+1, 30, 8)
	}
}

func barsVerticalPupil(p *gg.Path, _ float64) {
	for k := 0; k < 3; k++ {
		shape.Pill(p, 10*float64(k)+1, 0, 8, 30)
	}
}

func crtPupil(p *gg.Path, _ float64) {
	shape.Bulge(p, 1, 1, 28, 28, 6, 1)
}

func teardropPupil(p *gg.Path, _ float64) {
	shape.RoundedRectCorners(p, 0, 0, 30, 30, shape.Corners{TopLeft: 15, TopRight: 15, BottomLeft: 15})
}

func dotsPupil(p *gg.Path, _ float64) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			p.Circle(5+10*float64(col), 5+10*float64(row), 4.5)
		}
	}
}
