// Package pixel provides the built-in pixel generators.
//
// Importing the package registers every generator with the shape registry:
//
//	import _ "github.com/gogpu/gg-qr/shape/pixel"
//
//	gen := shape.CreatePixel("circle", settings.Config{
//	    shape.KeyInsetFraction: settings.Number(0.2),
//	})
//
// Most generators draw one canonical shape per cell, defined in a 10×10
// local space and fitted into the cell after inset and rotation. The
// connected generators (roundedPath, curvePixel, blob) look at neighbouring
// cells to round only exposed corners, and the run generators (horizontal,
// vertical) merge consecutive cells into a single rounded bar.
package pixel

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/inset"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

// feature is a bit set of the settings a kind understands.
type feature uint8

const (
	featInset feature = 1 << iota
	featRotation
	featCornerRadius
	featInnerCorners
)

// kind describes one cell generator variant.
type kind struct {
	desc     shape.Descriptor
	features feature
	defaults params

	// draw adds the canonical shape in 10×10 local space. Nil for
	// connected kinds.
	draw func(p *gg.Path, prm *params)
	// corners returns the per-corner radii of a selected cell from its
	// neighbourhood. Non-nil only for connected kinds.
	corners func(n neighbours, r float64) shape.Corners
}

func (k *kind) keys() []string {
	var keys []string
	if k.features&featInset != 0 {
		keys = append(keys, shape.KeyInsetFraction, shape.KeyInsetGeneratorName, shape.KeyUseRandomInset)
	}
	if k.features&featRotation != 0 {
		keys = append(keys, shape.KeyRotationFraction, shape.KeyUseRandomRotation)
	}
	if k.features&featCornerRadius != 0 {
		keys = append(keys, shape.KeyCornerRadiusFraction)
	}
	if k.features&featInnerCorners != 0 {
		keys = append(keys, shape.KeyHasInnerCorners)
	}
	return keys
}

// params is the mutable configuration of a Cell.
type params struct {
	inset            inset.Generator
	insetFraction    float64
	rotationFraction float64
	randomRotation   bool
	cornerRadius     float64
	innerCorners     bool
}

const plain = featInset | featRotation

var kinds = []*kind{
	{desc: shape.Descriptor{Name: "square", Title: "Square"}, features: plain, draw: drawSquare},
	{desc: shape.Descriptor{Name: "circle", Title: "Circle"}, features: plain, draw: drawCircle},
	{
		desc:     shape.Descriptor{Name: "roundedRect", Title: "Rounded rectangle"},
		features: plain | featCornerRadius,
		defaults: params{cornerRadius: 0.5},
		draw:     drawRoundedRect,
	},
	{desc: shape.Descriptor{Name: "squircle", Title: "Squircle"}, features: plain, draw: drawSquircle},
	{desc: shape.Descriptor{Name: "diamond", Title: "Diamond"}, features: plain, draw: drawDiamond},
	{desc: shape.Descriptor{Name: "arrow", Title: "Arrow"}, features: plain, draw: drawArrow},
	{desc: shape.Descriptor{Name: "star", Title: "Star"}, features: plain, draw: drawStar},
	{desc: shape.Descriptor{Name: "heart", Title: "Heart"}, features: plain, draw: drawHeart},
	{desc: shape.Descriptor{Name: "flower", Title: "Flower"}, features: plain, draw: drawFlower},
	{desc: shape.Descriptor{Name: "pointy", Title: "Pointy"}, features: plain, draw: drawPointy},
	{desc: shape.Descriptor{Name: "sharp", Title: "Sharp"}, features: plain, draw: drawSharp},
	{desc: shape.Descriptor{Name: "crosshatch", Title: "Crosshatch"}, features: plain, draw: drawCrosshatch},
	{
		desc:     shape.Descriptor{Name: "roundedPath", Title: "Rounded path"},
		features: featCornerRadius | featInnerCorners,
		defaults: params{cornerRadius: 1},
		corners:  exposedCorners,
	},
	{
		desc:     shape.Descriptor{Name: "curvePixel", Title: "Curve"},
		features: featCornerRadius,
		defaults: params{cornerRadius: 1},
		corners:  isolatedCorners,
	},
	{
		desc:     shape.Descriptor{Name: "blob", Title: "Blob"},
		defaults: params{cornerRadius: 1, innerCorners: true},
		corners:  exposedCorners,
	},
}

func init() {
	for _, k := range kinds {
		shape.RegisterPixel(k.desc, func(cfg settings.Config) shape.PixelGenerator {
			return newCell(k, cfg)
		})
	}
	shape.RegisterPixel(horizontalDesc, func(cfg settings.Config) shape.PixelGenerator {
		return NewRun(false, cfg)
	})
	shape.RegisterPixel(verticalDesc, func(cfg settings.Config) shape.PixelGenerator {
		return NewRun(true, cfg)
	})
}

// Cell is a pixel generator that draws one shape per selected cell.
type Cell struct {
	kind *kind
	p    params
}

var _ shape.PixelGenerator = (*Cell)(nil)

func newCell(k *kind, cfg settings.Config) *Cell {
	c := &Cell{kind: k, p: k.defaults}
	c.p.inset = inset.Fixed{}
	c.apply(cfg)
	return c
}

// apply decodes cfg. The inset generator is resolved first: a name wins
// over the deprecated boolean, and an unknown name selects Fixed.
func (c *Cell) apply(cfg settings.Config) {
	if len(cfg) == 0 {
		return
	}
	if c.has(featInset) {
		if name, ok := cfg.Text(shape.KeyInsetGeneratorName); ok {
			g, known := inset.Named(name)
			if !known {
				warnSetting(c.kind.desc.Name, shape.KeyInsetGeneratorName)
				g = inset.Fixed{}
			}
			c.p.inset = g
		} else if random, ok := cfg.Bool(shape.KeyUseRandomInset); ok {
			c.p.inset = insetFor(random)
		}
	}
	for _, key := range c.kind.keys() {
		if key == shape.KeyInsetGeneratorName || key == shape.KeyUseRandomInset {
			continue
		}
		if v, ok := cfg[key]; ok && !c.SetSetting(key, v) {
			warnSetting(c.kind.desc.Name, key)
		}
	}
}

func (c *Cell) has(f feature) bool {
	return c.kind.features&f != 0
}

// Descriptor implements shape.Codable.
func (c *Cell) Descriptor() shape.Descriptor {
	return c.kind.desc
}

// SupportsKey implements shape.Codable.
func (c *Cell) SupportsKey(key string) bool {
	for _, k := range c.kind.keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Settings implements shape.Codable. The deprecated useRandomInset key is
// always written alongside insetGeneratorName.
func (c *Cell) Settings() settings.Config {
	cfg := settings.Config{}
	if c.has(featInset) {
		cfg[shape.KeyInsetFraction] = settings.Number(c.p.insetFraction)
		cfg[shape.KeyInsetGeneratorName] = settings.String(c.p.inset.Name())
		cfg[shape.KeyUseRandomInset] = settings.Bool(inset.IsRandom(c.p.inset))
	}
	if c.has(featRotation) {
		cfg[shape.KeyRotationFraction] = settings.Number(c.p.rotationFraction)
		cfg[shape.KeyUseRandomRotation] = settings.Bool(c.p.randomRotation)
	}
	if c.has(featCornerRadius) {
		cfg[shape.KeyCornerRadiusFraction] = settings.Number(c.p.cornerRadius)
	}
	if c.has(featInnerCorners) {
		cfg[shape.KeyHasInnerCorners] = settings.Bool(c.p.innerCorners)
	}
	return cfg
}

// SetSetting implements shape.Codable.
func (c *Cell) SetSetting(key string, v settings.Value) bool {
	if !c.SupportsKey(key) {
		return false
	}
	switch key {
	case shape.KeyInsetFraction:
		f, ok := settings.AsFloat(v)
		if ok {
			c.p.insetFraction = settings.Clamp01(f)
		}
		return ok
	case shape.KeyInsetGeneratorName:
		name, ok := settings.AsString(v)
		if !ok {
			return false
		}
		g, ok := inset.Named(name)
		if ok {
			c.p.inset = g
		}
		return ok
	case shape.KeyUseRandomInset:
		b, ok := settings.AsBool(v)
		if ok {
			c.p.inset = insetFor(b)
		}
		return ok
	case shape.KeyRotationFraction:
		f, ok := settings.AsFloat(v)
		if ok {
			c.p.rotationFraction = settings.Clamp01(f)
		}
		return ok
	case shape.KeyUseRandomRotation:
		b, ok := settings.AsBool(v)
		if ok {
			c.p.randomRotation = b
		}
		return ok
	case shape.KeyCornerRadiusFraction:
		f, ok := settings.AsFloat(v)
		if ok {
			c.p.cornerRadius = settings.Clamp01(f)
		}
		return ok
	case shape.KeyHasInnerCorners:
		b, ok := settings.AsBool(v)
		if ok {
			c.p.innerCorners = b
		}
		return ok
	}
	return false
}

// Clone implements shape.PixelGenerator.
func (c *Cell) Clone() shape.PixelGenerator {
	out := &Cell{kind: c.kind, p: c.p}
	out.p.inset = c.p.inset.Clone()
	return out
}

// Path implements shape.PixelGenerator.
func (c *Cell) Path(g *grid.Grid, size shape.Size, sel shape.Selector, isTemplate bool) *gg.Path {
	out := gg.NewPath()
	if g == nil || !size.Valid() {
		return out
	}
	work := shape.Working(g, sel, isTemplate)
	l := shape.NewLayout(work.Dimension(), size)

	if c.kind.corners != nil {
		c.connected(out, work, l)
		return out
	}

	local := gg.NewPath()
	c.kind.draw(local, &c.p)
	for row := 0; row < l.N; row++ {
		for col := 0; col < l.N; col++ {
			if !work.At(row, col) {
				continue
			}
			if m, ok := c.cellTransform(l, row, col); ok {
				shape.Append(out, local, m)
			}
		}
	}
	return out
}

// cellTransform maps local 10×10 space into the inset, rotated cell at
// (row, col). It reports false when the inset leaves nothing to draw.
func (c *Cell) cellTransform(l shape.Layout, row, col int) (gg.Matrix, bool) {
	in := 0.0
	if c.has(featInset) {
		in = c.p.insetFraction * c.p.inset.Value(row, col) * l.Cell / 2
	}
	side := l.Cell - 2*in
	if side <= 0 {
		return gg.Matrix{}, false
	}

	o := l.Origin(row, col)
	half := l.Cell / 2
	m := gg.Translate(o.X+half, o.Y+half)
	if c.has(featRotation) {
		if a := inset.Rotation(c.p.rotationFraction, c.p.randomRotation, row, col); a != 0 {
			m = m.Multiply(gg.Rotate(a))
		}
	}
	s := side / shape.CellExtent
	return m.Multiply(gg.Scale(s, s)).
		Multiply(gg.Translate(-shape.CellExtent/2, -shape.CellExtent/2)), true
}

func insetFor(random bool) inset.Generator {
	if random {
		return inset.Random{}
	}
	return inset.Fixed{}
}
