package pixel

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/shape"
)

const kappa = 0.5522847498307936

// neighbours records which surrounding cells are selected.
type neighbours struct {
	top, right, bottom, left                   bool
	topLeft, topRight, bottomRight, bottomLeft bool
}

func around(g *grid.Grid, row, col int) neighbours {
	return neighbours{
		top:         g.At(row-1, col),
		right:       g.At(row, col+1),
		bottom:      g.At(row+1, col),
		left:        g.At(row, col-1),
		topLeft:     g.At(row-1, col-1),
		topRight:    g.At(row-1, col+1),
		bottomRight: g.At(row+1, col+1),
		bottomLeft:  g.At(row+1, col-1),
	}
}

func radiusIf(round bool, r float64) float64 {
	if round {
		return r
	}
	return 0
}

// exposedCorners rounds a corner when neither cell sharing its edges is
// selected.
func exposedCorners(n neighbours, r float64) shape.Corners {
	return shape.Corners{
		TopLeft:     radiusIf(!n.top && !n.left, r),
		TopRight:    radiusIf(!n.top && !n.right, r),
		BottomRight: radiusIf(!n.bottom && !n.right, r),
		BottomLeft:  radiusIf(!n.bottom && !n.left, r),
	}
}

// isolatedCorners rounds a corner only when the diagonal cell is also
// unselected.
func isolatedCorners(n neighbours, r float64) shape.Corners {
	return shape.Corners{
		TopLeft:     radiusIf(!n.top && !n.left && !n.topLeft, r),
		TopRight:    radiusIf(!n.top && !n.right && !n.topRight, r),
		BottomRight: radiusIf(!n.bottom && !n.right && !n.bottomRight, r),
		BottomLeft:  radiusIf(!n.bottom && !n.left && !n.bottomLeft, r),
	}
}

// connected draws cells that merge with their neighbours. Cells are never
// inset or rotated so that shared edges meet exactly.
func (c *Cell) connected(out *gg.Path, work *grid.Grid, l shape.Layout) {
	r := c.p.cornerRadius * shape.CellExtent / 2
	s := l.Cell / shape.CellExtent
	local := gg.NewPath()

	for row := 0; row < l.N; row++ {
		for col := 0; col < l.N; col++ {
			local.Clear()
			n := around(work, row, col)
			switch {
			case work.At(row, col):
				shape.RoundedRectCorners(local, 0, 0, shape.CellExtent, shape.CellExtent, c.kind.corners(n, r))
			case c.p.innerCorners && r > 0:
				fillets(local, n, r)
			default:
				continue
			}
			o := l.Origin(row, col)
			shape.Append(out, local, gg.Translate(o.X, o.Y).Multiply(gg.Scale(s, s)))
		}
	}
}

// fillets adds concave corner pieces to an unselected cell wherever two
// selected cells meet at one of its corners.
func fillets(p *gg.Path, n neighbours, r float64) {
	tl := gg.NewPath()
	tl.MoveTo(0, 0)
	tl.LineTo(r, 0)
	tl.CubicTo(r-r*kappa, 0, 0, r-r*kappa, 0, r)
	tl.Close()
	// Mirrored copies are reversed first to keep a single winding.
	mirrored := tl.Reversed()

	const e = shape.CellExtent
	if n.top && n.left {
		shape.Append(p, tl, gg.Identity())
	}
	if n.top && n.right {
		shape.Append(p, mirrored, gg.Translate(e, 0).Multiply(gg.Scale(-1, 1)))
	}
	if n.bottom && n.right {
		shape.Append(p, tl, gg.Translate(e, e).Multiply(gg.Scale(-1, -1)))
	}
	if n.bottom && n.left {
		shape.Append(p, mirrored, gg.Translate(0, e).Multiply(gg.Scale(1, -1)))
	}
}
