package render

import "github.com/gogpu/gg"

// Shadow is a drop shadow cast by the union of all foreground layers.
// Offsets and blur are in user units.
type Shadow struct {
	DX, DY float64
	Blur   float64
	Color  gg.RGBA
}

// NewShadow creates a shadow with the given offset, blur and color.
func NewShadow(dx, dy, blur float64, c gg.RGBA) *Shadow {
	return &Shadow{DX: dx, DY: dy, Blur: blur, Color: c}
}

// Sigma returns the standard deviation of the Gaussian blur, half the
// blur radius. Negative blur is treated as zero.
func (s Shadow) Sigma() float64 {
	if s.Blur <= 0 {
		return 0
	}
	return s.Blur / 2
}

// Clone returns a copy of s. A nil shadow clones to nil.
func (s *Shadow) Clone() *Shadow {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
