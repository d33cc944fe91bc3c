package shape

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
)

// mirror returns the reflection that turns top-left local geometry of the
// given extent into the geometry for corner c. The top-right eye is
// mirrored horizontally and the bottom-left eye vertically, so that
// asymmetric designs point the same way relative to the symbol centre.
func mirror(c grid.Corner, extent float64) gg.Matrix {
	switch c {
	case grid.TopRight:
		return gg.Translate(extent, 0).Multiply(gg.Scale(-1, 1))
	case grid.BottomLeft:
		return gg.Translate(0, extent).Multiply(gg.Scale(1, -1))
	}
	return gg.Identity()
}

// EyeTransform maps local 90×90 eye space onto the eye e.
func EyeTransform(l Layout, e grid.Eye) gg.Matrix {
	o := l.Origin(e.Row, e.Col)
	s := grid.EyeSize * l.Cell / EyeExtent
	return gg.Translate(o.X, o.Y).
		Multiply(gg.Scale(s, s)).
		Multiply(mirror(e.Corner, EyeExtent))
}

// PupilTransform maps local 30×30 pupil space onto the pupil of eye e.
func PupilTransform(l Layout, e grid.Eye) gg.Matrix {
	o := l.Origin(e.Row+grid.PupilOffset, e.Col+grid.PupilOffset)
	s := grid.PupilSize * l.Cell / PupilExtent
	return gg.Translate(o.X, o.Y).
		Multiply(gg.Scale(s, s)).
		Multiply(mirror(e.Corner, PupilExtent))
}

// EyePaths returns the outer rings and the pupils of all three eyes of g.
// A nil pupil uses the eye's default pupil.
func EyePaths(eye EyeGenerator, pupil PupilGenerator, g *grid.Grid, size Size) (outer, centre *gg.Path) {
	outer, centre = gg.NewPath(), gg.NewPath()
	if eye == nil || g == nil || !size.Valid() {
		return outer, centre
	}
	if pupil == nil {
		pupil = eye.DefaultPupil()
	}

	l := NewLayout(g.Dimension(), size)
	ring := eye.EyePath()
	var dot *gg.Path
	if pupil != nil {
		dot = pupil.PupilPath()
	}
	for _, e := range g.Eyes() {
		Append(outer, ring, EyeTransform(l, e))
		if dot != nil {
			Append(centre, dot, PupilTransform(l, e))
		}
	}
	return outer, centre
}
