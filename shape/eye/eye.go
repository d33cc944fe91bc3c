// Package eye provides the built-in eye and pupil generators.
//
// Importing the package registers them with the shape registry. Geometry
// is drawn for the top-left finder pattern only: an eye ring fills a
// 90×90 local square with a border one shape.EyeModule thick, a pupil
// fills a 30×30 local square. shape.EyePaths places and mirrors them.
package eye

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/internal/logging"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

// base holds the configuration shared by eyes and pupils. Only the
// rounded rectangle variants have a setting.
type base struct {
	desc         shape.Descriptor
	rounded      bool
	cornerRadius float64
}

func (b *base) apply(cfg settings.Config) {
	v, ok := cfg[shape.KeyCornerRadiusFraction]
	if !ok {
		return
	}
	if !b.SetSetting(shape.KeyCornerRadiusFraction, v) {
		logging.Logger().Warn("eye: ignoring setting",
			slog.String("generator", b.desc.Name), slog.String("key", shape.KeyCornerRadiusFraction))
	}
}

// Descriptor implements shape.Codable.
func (b *base) Descriptor() shape.Descriptor {
	return b.desc
}

// SupportsKey implements shape.Codable.
func (b *base) SupportsKey(key string) bool {
	return b.rounded && key == shape.KeyCornerRadiusFraction
}

// Settings implements shape.Codable.
func (b *base) Settings() settings.Config {
	cfg := settings.Config{}
	if b.rounded {
		cfg[shape.KeyCornerRadiusFraction] = settings.Number(b.cornerRadius)
	}
	return cfg
}

// SetSetting implements shape.Codable.
func (b *base) SetSetting(key string, v settings.Value) bool {
	if !b.SupportsKey(key) {
		return false
	}
	f, ok := settings.AsFloat(v)
	if ok {
		b.cornerRadius = settings.Clamp01(f)
	}
	return ok
}

// defaultCornerRadius is the rounding of the roundedRect eye and pupil.
const defaultCornerRadius = 0.65

type eyeKind struct {
	desc    shape.Descriptor
	pupil   string
	rounded bool
	draw    func(p *gg.Path, cornerRadius float64)
}

var eyeKinds = []*eyeKind{
	{desc: shape.Descriptor{Name: "square", Title: "Square"}, pupil: "square", draw: squareEye},
	{desc: shape.Descriptor{Name: "circle", Title: "Circle"}, pupil: "circle", draw: circleEye},
	{desc: shape.Descriptor{Name: "roundedRect", Title: "Rounded rectangle"}, pupil: "roundedRect", rounded: true, draw: roundedRectEye},
	{desc: shape.Descriptor{Name: "roundedOuter", Title: "Rounded outer"}, pupil: "square", draw: roundedOuterEye},
	{desc: shape.Descriptor{Name: "roundedPointingIn", Title: "Rounded pointing in"}, pupil: "roundedRect", draw: roundedPointingInEye},
	{desc: shape.Descriptor{Name: "leaf", Title: "Leaf"}, pupil: "leaf", draw: leafEye},
	{desc: shape.Descriptor{Name: "squircle", Title: "Squircle"}, pupil: "squircle", draw: squircleEye},
	{desc: shape.Descriptor{Name: "barsHorizontal", Title: "Horizontal bars"}, pupil: "barsHorizontal", draw: barsHorizontalEye},
	{desc: shape.Descriptor{Name: "barsVertical", Title: "Vertical bars"}, pupil: "barsVertical", draw: barsVerticalEye},
	{desc: shape.Descriptor{Name: "peacock", Title: "Peacock"}, pupil: "leaf", draw: peacockEye},
	{desc: shape.Descriptor{Name: "crt", Title: "CRT"}, pupil: "crt", draw: crtEye},
	{desc: shape.Descriptor{Name: "teardrop", Title: "Teardrop"}, pupil: "teardrop", draw: teardropEye},
	{desc: shape.Descriptor{Name: "barsAndDots", Title: "Bars and dots"}, pupil: "dots", draw: barsAndDotsEye},
}

func init() {
	for _, k := range eyeKinds {
		shape.RegisterEye(k.desc, func(cfg settings.Config) shape.EyeGenerator {
			return newEye(k, cfg)
		})
	}
	for _, k := range pupilKinds {
		shape.RegisterPupil(k.desc, func(cfg settings.Config) shape.PupilGenerator {
			return newPupil(k, cfg)
		})
	}
}

// Eye is a finder pattern ring generator.
type Eye struct {
	base
	kind *eyeKind
}

var _ shape.EyeGenerator = (*Eye)(nil)

func newEye(k *eyeKind, cfg settings.Config) *Eye {
	e := &Eye{base: base{desc: k.desc, rounded: k.rounded}, kind: k}
	if k.rounded {
		e.cornerRadius = defaultCornerRadius
	}
	e.apply(cfg)
	return e
}

// Clone implements shape.EyeGenerator.
func (e *Eye) Clone() shape.EyeGenerator {
	c := *e
	return &c
}

// EyePath implements shape.EyeGenerator.
func (e *Eye) EyePath() *gg.Path {
	p := gg.NewPath()
	e.kind.draw(p, e.cornerRadius)
	return p
}

// DefaultPupil implements shape.EyeGenerator.
func (e *Eye) DefaultPupil() shape.PupilGenerator {
	return shape.CreatePupil(e.kind.pupil, nil)
}
