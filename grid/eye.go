package grid

// Corner identifies one of the three finder patterns.
type Corner uint8

const (
	// TopLeft is the finder pattern at the top-left corner.
	TopLeft Corner = iota
	// TopRight is the finder pattern at the top-right corner.
	TopRight
	// BottomLeft is the finder pattern at the bottom-left corner.
	BottomLeft
)

// Corners lists the finder patterns in drawing order.
var Corners = [...]Corner{TopLeft, TopRight, BottomLeft}

var cornerNames = [...]string{
	TopLeft:    "topLeft",
	TopRight:   "topRight",
	BottomLeft: "bottomLeft",
}

// String returns the corner name.
func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "unknown"
}

// Eye is the cell-space location of a finder pattern.
type Eye struct {
	Corner Corner
	Row    int
	Col    int
}

// Eyes returns the three eye regions of the grid.
func (g *Grid) Eyes() [3]Eye {
	q := g.quiet
	far := g.dim - q - EyeSize
	return [3]Eye{
		{Corner: TopLeft, Row: q, Col: q},
		{Corner: TopRight, Row: q, Col: far},
		{Corner: BottomLeft, Row: far, Col: q},
	}
}

// IsEye reports whether (row, col) belongs to one of the eye regions.
func (g *Grid) IsEye(row, col int) bool {
	for _, e := range g.Eyes() {
		if row >= e.Row && row < e.Row+EyeSize && col >= e.Col && col < e.Col+EyeSize {
			return true
		}
	}
	return false
}
