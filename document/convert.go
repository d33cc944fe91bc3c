package document

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/internal/logging"
	"github.com/gogpu/gg-qr/render"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

// Fill type names.
const (
	FillSolid  = "solid"
	FillLinear = "linear"
	FillRadial = "radial"
	FillImage  = "image"

	// FillNone records an explicitly absent style.
	FillNone = "none"
)

// FromGenerator records the name and settings of c. A nil generator
// yields nil.
func FromGenerator(c shape.Codable) *Generator {
	if c == nil {
		return nil
	}
	return &Generator{Name: c.Descriptor().Name, Settings: c.Settings().ToMap()}
}

// Config returns the settings of g as a Config.
func (g *Generator) Config() settings.Config {
	if g == nil {
		return nil
	}
	return settings.FromMap(g.Settings)
}

// Pixel creates the pixel generator described by g. A nil g or unknown
// name yields the default generator.
func (g *Generator) Pixel() shape.PixelGenerator {
	return shape.CreatePixel(g.name(), g.Config())
}

// Eye creates the eye generator described by g.
func (g *Generator) Eye() shape.EyeGenerator {
	return shape.CreateEye(g.name(), g.Config())
}

// Pupil creates the pupil generator described by g. A nil g yields nil,
// meaning the eye's default pupil.
func (g *Generator) Pupil() shape.PupilGenerator {
	if g == nil {
		return nil
	}
	return shape.CreatePupil(g.name(), g.Config())
}

func (g *Generator) name() string {
	if g == nil || g.Name == "" {
		return shape.DefaultName
	}
	return g.Name
}

// FromStyle records s. A nil style yields nil. Image sources are stored
// as base64 PNG.
func FromStyle(s fill.Style) (*Fill, error) {
	switch v := s.(type) {
	case nil:
		return nil, nil
	case *fill.Solid:
		return &Fill{Type: FillSolid, Color: FormatColor(v.Color)}, nil
	case *fill.LinearGradient:
		return &Fill{
			Type:  FillLinear,
			Start: &Point{X: v.Start.X, Y: v.Start.Y},
			End:   &Point{X: v.End.X, Y: v.End.Y},
			Stops: fromStops(v.Stops),
		}, nil
	case *fill.RadialGradient:
		return &Fill{
			Type:   FillRadial,
			Center: &Point{X: v.Center.X, Y: v.Center.Y},
			Stops:  fromStops(v.Stops),
		}, nil
	case *fill.Image:
		f := &Fill{Type: FillImage, Mode: v.Mode.String()}
		if v.Source != nil {
			var buf bytes.Buffer
			if err := png.Encode(&buf, v.Source); err != nil {
				return nil, fmt.Errorf("document: encode image fill: %w", err)
			}
			f.Image = encodeImage(buf.Bytes())
		}
		return f, nil
	}
	return nil, fmt.Errorf("document: unsupported fill style %T", s)
}

// Style creates the fill style described by f. Unknown types, unreadable
// colors and undecodable images are logged and yield nil so the caller
// keeps its default.
func (f *Fill) Style() fill.Style {
	if f == nil {
		return nil
	}
	log := logging.Logger()
	switch strings.ToLower(f.Type) {
	case FillNone:
		return nil
	case FillSolid, "":
		c, ok := ParseColor(f.Color)
		if !ok {
			log.Warn("document: unreadable color", "color", f.Color)
			return nil
		}
		return fill.NewSolid(c)
	case FillLinear:
		g := fill.NewLinearGradient(f.Start.point(0, 0), f.End.point(1, 1))
		for _, s := range f.Stops {
			g.AddColorStop(s.Offset, s.color())
		}
		return g
	case FillRadial:
		g := fill.NewRadialGradient(f.Center.point(0.5, 0.5))
		for _, s := range f.Stops {
			g.AddColorStop(s.Offset, s.color())
		}
		return g
	case FillImage:
		data, err := decodeImage(f.Image)
		if err != nil {
			log.Warn("document: image fill is not base64", "error", err)
			return nil
		}
		img, err := fill.LoadImage(bytes.NewReader(data))
		if err != nil {
			log.Warn("document: image fill", "error", err)
			return nil
		}
		s := fill.NewImage(img)
		if strings.EqualFold(f.Mode, fill.ImageStretch.String()) {
			s.Mode = fill.ImageStretch
		}
		return s
	}
	log.Warn("document: unknown fill type", "type", f.Type)
	return nil
}

// IsNone reports whether f records an explicitly absent style.
func (f *Fill) IsNone() bool {
	return f != nil && strings.EqualFold(f.Type, FillNone)
}

func (p *Point) point(defX, defY float64) gg.Point {
	if p == nil {
		return gg.Pt(defX, defY)
	}
	return gg.Pt(p.X, p.Y)
}

func (s Stop) color() gg.RGBA {
	c, ok := ParseColor(s.Color)
	if !ok {
		logging.Logger().Warn("document: unreadable stop color", "color", s.Color)
		return gg.Transparent
	}
	return c
}

func fromStops(stops []fill.GradientStop) []Stop {
	out := make([]Stop, 0, len(stops))
	for _, s := range stops {
		out = append(out, Stop{Offset: s.Offset, Color: FormatColor(s.Color)})
	}
	return out
}

// FromShadow records s. A nil shadow yields nil.
func FromShadow(s *render.Shadow) *Shadow {
	if s == nil {
		return nil
	}
	return &Shadow{DX: s.DX, DY: s.DY, Blur: s.Blur, Color: FormatColor(s.Color)}
}

// Shadow creates the shadow described by s. A missing or unreadable
// color selects half-transparent black.
func (s *Shadow) Shadow() *render.Shadow {
	if s == nil {
		return nil
	}
	c, ok := ParseColor(s.Color)
	if !ok {
		c = gg.RGBA2(0, 0, 0, 0.5)
	}
	return render.NewShadow(s.DX, s.DY, math.Max(0, s.Blur), c)
}

// FormatColor writes c as #rrggbb, or #rrggbbaa when it is translucent.
func FormatColor(c gg.RGBA) string {
	n := fill.NRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseColor reads #rgb, #rgba, #rrggbb or #rrggbbaa. The leading # is
// optional.
func ParseColor(s string) (gg.RGBA, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(hex), true
}
