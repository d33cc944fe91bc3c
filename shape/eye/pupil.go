package eye

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

type pupilKind struct {
	desc    shape.Descriptor
	rounded bool
	draw    func(p *gg.Path, cornerRadius float64)
}

var pupilKinds = []*pupilKind{
	{desc: shape.Descriptor{Name: "square", Title: "Square"}, draw: squarePupil},
	{desc: shape.Descriptor{Name: "circle", Title: "Circle"}, draw: circlePupil},
	{desc: shape.Descriptor{Name: "roundedRect", Title: "Rounded rectangle"}, rounded: true, draw: roundedRectPupil},
	{desc: shape.Descriptor{Name: "leaf", Title: "Leaf"}, draw: leafPupil},
	{desc: shape.Descriptor{Name: "squircle", Title: "Squircle"}, draw: squirclePupil},
	{desc: shape.Descriptor{Name: "barsHorizontal", Title: "Horizontal bars"}, draw: barsHorizontalPupil},
	{desc: shape.Descriptor{Name: "barsVertical", Title: "Vertical bars"}, draw: barsVerticalPupil},
	{desc: shape.Descriptor{Name: "crt", Title: "CRT"}, draw: crtPupil},
	{desc: shape.Descriptor{Name: "teardrop", Title: "Teardrop"}, draw: teardropPupil},
	{desc: shape.Descriptor{Name: "dots", Title: "Dots"}, draw: dotsPupil},
}

// Pupil is a finder pattern centre generator.
type Pupil struct {
	base
	kind *pupilKind
}

var _ shape.PupilGenerator = (*Pupil)(nil)

func newPupil(k *pupilKind, cfg settings.Config) *Pupil {
	p := &Pupil{base: base{desc: k.desc, rounded: k.rounded}, kind: k}
	if k.rounded {
		p.cornerRadius = defaultCornerRadius
	}
	p.apply(cfg)
	return p
}

// Clone implements shape.PupilGenerator.
func (p *Pupil) Clone() shape.PupilGenerator {
	c := *p
	return &c
}

// PupilPath implements shape.PupilGenerator.
func (p *Pupil) PupilPath() *gg.Path {
	out := gg.NewPath()
	p.kind.draw(out, p.cornerRadius)
	return out
}
