package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
)

// Layout maps grid cells onto a canvas. Cells are square with side Cell;
// the symbol is centred when the canvas is not square.
type Layout struct {
	Cell float64
	X, Y float64
	N    int
}

// NewLayout computes the layout of a dim×dim grid in a canvas of size.
func NewLayout(dim int, size Size) Layout {
	if dim <= 0 || !size.Valid() {
		return Layout{N: dim}
	}
	side := math.Min(size.Width, size.Height)
	dm := side / float64(dim)
	return Layout{
		Cell: dm,
		X:    (size.Width - side) / 2,
		Y:    (size.Height - side) / 2,
		N:    dim,
	}
}

// Origin returns the top-left corner of the cell at (row, col).
func (l Layout) Origin(row, col int) gg.Point {
	return gg.Pt(l.X+float64(col)*l.Cell, l.Y+float64(row)*l.Cell)
}

// CellRect returns the bounds of the cell at (row, col).
func (l Layout) CellRect(row, col int) gg.Rect {
	o := l.Origin(row, col)
	return gg.Rect{Min: o, Max: gg.Pt(o.X+l.Cell, o.Y+l.Cell)}
}

// Bounds returns the area covered by the whole grid.
func (l Layout) Bounds() gg.Rect {
	side := l.Cell * float64(l.N)
	return gg.Rect{Min: gg.Pt(l.X, l.Y), Max: gg.Pt(l.X+side, l.Y+side)}
}

// Working returns the cells a pixel generator should cover.
//
// In template mode the grid is used as is for On and inverted for Off.
// Otherwise the eye regions are removed and Off selects the unset cells.
func Working(g *grid.Grid, sel Selector, isTemplate bool) *grid.Grid {
	if isTemplate {
		if sel == Off {
			return g.Inverted()
		}
		return g
	}
	return g.MaskingEyes(sel == Off)
}
