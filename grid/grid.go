// Package grid provides the immutable boolean matrix rendered by gg-qr.
//
// A Grid is square. Cells outside [0, N) read as false, which lets shape
// generators probe neighbours without bounds checks. The three finder
// ("eye") patterns occupy fixed 7×7 regions in the top-left, top-right and
// bottom-left corners, offset by the grid's quiet zone.
//
// Views such as MaskingEyes, Inverted and WithQuietZone always return new
// grids; the receiver is never modified.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// EyeSize is the side length, in cells, of a finder pattern.
const EyeSize = 7

// PupilOffset is the offset, in cells, of the pupil inside an eye region.
const PupilOffset = 2

// PupilSize is the side length, in cells, of the pupil.
const PupilSize = 3

// ErrInvalidDimension is returned when a grid would have no cells or
// would not be square.
var ErrInvalidDimension = errors.New("grid: invalid dimension")

// Grid is an immutable square matrix of booleans.
type Grid struct {
	dim   int
	cells []bool
	quiet int
}

// New creates a grid of the given dimension with every cell unset.
func New(dim int) (*Grid, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Grid{dim: dim, cells: make([]bool, dim*dim)}, nil
}

// FromFunc creates a grid whose cells are given by fn.
func FromFunc(dim int, fn func(row, col int) bool) (*Grid, error) {
	g, err := New(dim)
	if err != nil {
		return nil, err
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			g.cells[row*dim+col] = fn(row, col)
		}
	}
	return g, nil
}

// FromRows creates a grid from a square slice of rows.
// The input is copied.
func FromRows(rows [][]bool) (*Grid, error) {
	dim := len(rows)
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, i, len(r), dim)
		}
	}
	return FromFunc(dim, func(row, col int) bool { return rows[row][col] })
}

// Parse creates a grid from a textual picture, one line per row.
// '#', '1', 'X' and 'x' are set cells; '.', '0', ' ' and '-' are unset.
// Blank leading and trailing lines are ignored.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	rows := make([][]bool, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', '1', 'X', 'x':
				row = append(row, true)
			case '.', '0', ' ', '-':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("grid: line %d: unexpected character %q", i+1, ch)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Dimension returns the number of rows (and columns) of the grid.
func (g *Grid) Dimension() int {
	return g.dim
}

// QuietZone returns the number of padding cells surrounding the symbol.
func (g *Grid) QuietZone() int {
	return g.quiet
}

// At reports whether the cell at (row, col) is set.
// Coordinates outside the grid report false.
func (g *Grid) At(row, col int) bool {
	if row < 0 || col < 0 || row >= g.dim || col >= g.dim {
		return false
	}
	return g.cells[row*g.dim+col]
}

// Count returns the number of set cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimension, quiet zone
// and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.dim != other.dim || g.quiet != other.quiet {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Inverted returns the logical inverse of the grid.
func (g *Grid) Inverted() *Grid {
	out := g.derive()
	for i, v := range g.cells {
		out.cells[i] = !v
	}
	return out
}

// MaskingEyes returns a copy of the grid with the three eye regions unset.
// When inverted is true the remaining cells are the logical inverse of the
// source, which selects the "off" cells outside the eyes.
func (g *Grid) MaskingEyes(inverted bool) *Grid {
	out := g.derive()
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			i := row*g.dim + col
			switch {
			case g.IsEye(row, col):
				out.cells[i] = false
			case inverted:
				out.cells[i] = !g.cells[i]
			default:
				out.cells[i] = g.cells[i]
			}
		}
	}
	return out
}

// WithQuietZone returns a grid padded by n unset cells on every side.
// Eye regions move with the padding. Negative n is treated as zero.
func (g *Grid) WithQuietZone(n int) *Grid {
	if n < 0 {
		n = 0
	}
	dim := g.dim + 2*n
	out := &Grid{dim: dim, cells: make([]bool, dim*dim), quiet: g.quiet + n}
	for row := 0; row < g.dim; row++ {
		copy(out.cells[(row+n)*dim+n:], g.cells[row*g.dim:(row+1)*g.dim])
	}
	return out
}

// String renders the grid as lines of '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.dim * (g.dim + 1))
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			if g.At(row, col) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) derive() *Grid {
	return &Grid{dim: g.dim, cells: make([]bool, len(g.cells)), quiet: g.quiet}
}
