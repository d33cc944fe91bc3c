package pixel

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

// subpaths splits p at every MoveTo.
func subpaths(p *gg.Path) []*gg.Path {
	var out []*gg.Path
	var cur *gg.Path
	for _, elem := range p.Elements() {
		if m, ok := elem.(gg.MoveTo); ok {
			cur = gg.NewPath()
			cur.MoveTo(m.Point.X, m.Point.Y)
			out = append(out, cur)
			continue
		}
		switch e := elem.(type) {
		case gg.LineTo:
			cur.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			cur.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			cur.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			cur.Close()
		}
	}
	return out
}

func rectEqual(t *testing.T, got, want gg.Rect) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.Min.X-want.Min.X) > eps || math.Abs(got.Min.Y-want.Min.Y) > eps ||
		math.Abs(got.Max.X-want.Max.X) > eps || math.Abs(got.Max.Y-want.Max.Y) > eps {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func rect(x, y, w, h float64) gg.Rect {
	return gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)}
}

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)
	return g
}

func full(t *testing.T, dim int) *grid.Grid {
	t.Helper()
	g, err := grid.FromFunc(dim, func(_, _ int) bool { return true })
	require.NoError(t, err)
	return g
}

func TestRegisteredGenerators(t *testing.T) {
	want := []string{
		"arrow", "blob", "circle", "crosshatch", "curvePixel", "diamond",
		"flower", "heart", "horizontal", "pointy", "roundedPath",
		"roundedRect", "sharp", "square", "squircle", "star", "vertical",
	}
	var got []string
	for _, d := range shape.List(shape.CategoryPixel) {
		got = append(got, d.Name)
		assert.NotEmpty(t, d.Title, d.Name)
	}
	assert.Equal(t, want, got)
}

func TestHorizontalRunMerging(t *testing.T) {
	g := mustParse(t, `
##.
.##
#.#
`)
	gen, err := shape.NewPixel("horizontal", settings.Config{
		shape.KeyInset:                settings.Number(0),
		shape.KeyCornerRadiusFraction: settings.Number(0),
	})
	require.NoError(t, err)

	p := gen.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)
	parts := subpaths(p)
	require.Len(t, parts, 4)
	rectEqual(t, parts[0].BoundingBox(), rect(0, 0, 20, 10))
	rectEqual(t, parts[1].BoundingBox(), rect(10, 10, 20, 10))
	rectEqual(t, parts[2].BoundingBox(), rect(0, 20, 10, 10))
	rectEqual(t, parts[3].BoundingBox(), rect(20, 20, 10, 10))
}

func TestVerticalRunMerging(t *testing.T) {
	g := mustParse(t, `
##.
.##
#.#
`)
	gen, err := shape.NewPixel("vertical", nil)
	require.NoError(t, err)

	parts := subpaths(gen.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true))
	require.Len(t, parts, 4)
	rectEqual(t, parts[0].BoundingBox(), rect(0, 0, 10, 10))
	rectEqual(t, parts[1].BoundingBox(), rect(0, 20, 10, 10))
	rectEqual(t, parts[2].BoundingBox(), rect(10, 0, 10, 20))
	rectEqual(t, parts[3].BoundingBox(), rect(20, 10, 10, 20))
}

func TestRunInsetAndRadius(t *testing.T) {
	g := mustParse(t, "###\n...\n...")
	gen := NewRun(false, settings.Config{
		shape.KeyInset:                settings.Number(1),
		shape.KeyCornerRadiusFraction: settings.Number(5),
	})
	assert.Equal(t, 1.0, gen.Settings().FloatOr(shape.KeyCornerRadiusFraction, -1))

	p := gen.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)
	parts := subpaths(p)
	require.Len(t, parts, 1)
	rectEqual(t, parts[0].BoundingBox(), rect(1, 1, 28, 8))
	assert.True(t, p.Contains(gg.Pt(15, 5)))
	assert.False(t, p.Contains(gg.Pt(1.2, 1.2)), "ends are fully rounded")

	huge := NewRun(false, settings.Config{shape.KeyInset: settings.Number(50)})
	assert.True(t, shape.Empty(huge.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)))
}

func TestEyeMasking(t *testing.T) {
	g := full(t, 21)
	gen := shape.CreatePixel("square", nil)

	on := gen.Path(g, shape.Size{Width: 210, Height: 210}, shape.On, false)
	assert.Len(t, subpaths(on), 441-3*49)
	assert.False(t, on.Contains(gg.Pt(5, 5)), "eye cells are excluded")
	assert.True(t, on.Contains(gg.Pt(105, 105)))

	off := gen.Path(g, shape.Size{Width: 210, Height: 210}, shape.Off, false)
	assert.True(t, shape.Empty(off))

	tmpl := gen.Path(g, shape.Size{Width: 210, Height: 210}, shape.On, true)
	assert.Len(t, subpaths(tmpl), 441)
}

func TestOffSelector(t *testing.T) {
	g := mustParse(t, "#.\n.#")
	gen := shape.CreatePixel("square", nil)

	off := gen.Path(g, shape.Size{Width: 20, Height: 20}, shape.Off, true)
	parts := subpaths(off)
	require.Len(t, parts, 2)
	rectEqual(t, parts[0].BoundingBox(), rect(10, 0, 10, 10))
	rectEqual(t, parts[1].BoundingBox(), rect(0, 10, 10, 10))
}

func TestCentering(t *testing.T) {
	g := mustParse(t, "#")
	gen := shape.CreatePixel("square", nil)
	p := gen.Path(g, shape.Size{Width: 40, Height: 20}, shape.On, true)
	rectEqual(t, p.BoundingBox(), rect(10, 0, 20, 20))
}

func TestInsetFraction(t *testing.T) {
	g := mustParse(t, "#")
	gen := shape.CreatePixel("square", settings.Config{shape.KeyInsetFraction: settings.Number(0.5)})
	p := gen.Path(g, shape.Size{Width: 20, Height: 20}, shape.On, true)
	rectEqual(t, p.BoundingBox(), rect(5, 5, 10, 10))

	gone := shape.CreatePixel("circle", settings.Config{shape.KeyInsetFraction: settings.Number(1)})
	assert.True(t, shape.Empty(gone.Path(g, shape.Size{Width: 20, Height: 20}, shape.On, true)))
}

func TestRotation(t *testing.T) {
	g := mustParse(t, "#")
	gen := shape.CreatePixel("square", settings.Config{shape.KeyRotationFraction: settings.Number(0.125)})
	p := gen.Path(g, shape.Size{Width: 10, Height: 10}, shape.On, true)
	bb := p.BoundingBox()
	half := 5 * math.Sqrt2
	rectEqual(t, bb, rect(5-half, 5-half, 2*half, 2*half))
}

func TestDeterministicAndScaleInvariant(t *testing.T) {
	g := full(t, 25)
	cfg := settings.Config{
		shape.KeyInsetFraction:      settings.Number(0.4),
		shape.KeyInsetGeneratorName: settings.String("random"),
		shape.KeyRotationFraction:   settings.Number(0.5),
		shape.KeyUseRandomRotation:  settings.Bool(true),
	}
	gen := shape.CreatePixel("star", cfg)

	a := gen.Path(g, shape.Size{Width: 250, Height: 250}, shape.On, false)
	b := gen.Path(g, shape.Size{Width: 250, Height: 250}, shape.On, false)
	assert.Equal(t, a.Elements(), b.Elements())

	big := gen.Path(g, shape.Size{Width: 500, Height: 500}, shape.On, false)
	scaled := a.Transform(gg.Scale(2, 2))
	require.Len(t, big.Elements(), len(scaled.Elements()))
	for i, elem := range big.Elements() {
		want := scaled.Elements()[i]
		if mt, ok := elem.(gg.LineTo); ok {
			w := want.(gg.LineTo)
			assert.InDelta(t, w.Point.X, mt.Point.X, 1e-6)
			assert.InDelta(t, w.Point.Y, mt.Point.Y, 1e-6)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	gen := shape.CreatePixel("roundedRect", settings.Config{shape.KeyCornerRadiusFraction: settings.Number(0.3)})
	c := gen.Clone()
	require.True(t, c.SetSetting(shape.KeyCornerRadiusFraction, settings.Number(0.9)))

	assert.Equal(t, 0.3, gen.Settings().FloatOr(shape.KeyCornerRadiusFraction, -1))
	assert.Equal(t, 0.9, c.Settings().FloatOr(shape.KeyCornerRadiusFraction, -1))

	run := shape.CreatePixel("horizontal", nil)
	rc := run.Clone()
	rc.SetSetting(shape.KeyInset, settings.Number(2))
	assert.Equal(t, 0.0, run.Settings().FloatOr(shape.KeyInset, -1))
}

func TestSetSetting(t *testing.T) {
	gen := shape.CreatePixel("roundedRect", nil)

	tests := []struct {
		name string
		key  string
		v    settings.Value
		ok   bool
	}{
		{"clamped high", shape.KeyCornerRadiusFraction, settings.Number(5), true},
		{"numeric string", shape.KeyInsetFraction, settings.String("0.25"), true},
		{"bad string", shape.KeyInsetFraction, settings.String("wide"), false},
		{"unsupported", shape.KeyHasInnerCorners, settings.Bool(true), false},
		{"unknown key", "colour", settings.String("red"), false},
		{"nil value", shape.KeyRotationFraction, nil, false},
		{"unknown inset generator", shape.KeyInsetGeneratorName, settings.String("perlin"), false},
		{"inset generator", shape.KeyInsetGeneratorName, settings.String("random"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.SetSetting(tt.key, tt.v); got != tt.ok {
				t.Errorf("SetSetting(%q, %v) = %v, want %v", tt.key, tt.v, got, tt.ok)
			}
		})
	}

	cfg := gen.Settings()
	assert.Equal(t, 1.0, cfg.FloatOr(shape.KeyCornerRadiusFraction, -1))
	assert.Equal(t, 0.25, cfg.FloatOr(shape.KeyInsetFraction, -1))
	name, _ := cfg.Text(shape.KeyInsetGeneratorName)
	assert.Equal(t, "random", name)
	assert.True(t, cfg.BoolOr(shape.KeyUseRandomInset, false))
}

func TestTolerantCreate(t *testing.T) {
	gen := shape.CreatePixel("circle", settings.Config{
		shape.KeyInsetFraction:    settings.String("not a number"),
		shape.KeyRotationFraction: settings.Number(-3),
		"unknownKey":              settings.Bool(true),
	})
	cfg := gen.Settings()
	assert.Equal(t, 0.0, cfg.FloatOr(shape.KeyInsetFraction, -1))
	assert.Equal(t, 0.0, cfg.FloatOr(shape.KeyRotationFraction, -1))
	assert.NotContains(t, cfg, "unknownKey")
}

func TestDeprecatedRandomInset(t *testing.T) {
	gen := shape.CreatePixel("square", settings.Config{shape.KeyUseRandomInset: settings.Bool(true)})
	name, _ := gen.Settings().Text(shape.KeyInsetGeneratorName)
	assert.Equal(t, "random", name)

	gen = shape.CreatePixel("square", settings.Config{
		shape.KeyUseRandomInset:     settings.Bool(true),
		shape.KeyInsetGeneratorName: settings.String("fixed"),
	})
	name, _ = gen.Settings().Text(shape.KeyInsetGeneratorName)
	assert.Equal(t, "fixed", name, "name wins over the deprecated flag")
	assert.False(t, gen.Settings().BoolOr(shape.KeyUseRandomInset, true))
}

func TestSettingsRoundTrip(t *testing.T) {
	for _, d := range shape.List(shape.CategoryPixel) {
		t.Run(d.Name, func(t *testing.T) {
			gen := shape.CreatePixel(d.Name, nil)
			for _, key := range gen.Settings().Keys() {
				assert.True(t, gen.SupportsKey(key), key)
			}
			again := shape.CreatePixel(d.Name, gen.Settings())
			if !again.Settings().Equal(gen.Settings()) {
				t.Errorf("round trip = %v, want %v", again.Settings(), gen.Settings())
			}
			assert.Equal(t, d, again.Descriptor())
		})
	}
}

func TestAllGeneratorsDrawInsideCells(t *testing.T) {
	g := mustParse(t, `
#.#
.#.
#.#
`)
	for _, d := range shape.List(shape.CategoryPixel) {
		t.Run(d.Name, func(t *testing.T) {
			p := shape.CreatePixel(d.Name, nil).Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)
			require.False(t, shape.Empty(p))
			bb := p.BoundingBox()
			assert.GreaterOrEqual(t, bb.Min.X, -1e-9)
			assert.GreaterOrEqual(t, bb.Min.Y, -1e-9)
			assert.LessOrEqual(t, bb.Max.X, 30+1e-9)
			assert.LessOrEqual(t, bb.Max.Y, 30+1e-9)
			assert.True(t, p.Contains(gg.Pt(15, 15)), "centre cell is filled")
		})
	}
}

func TestRoundedPathCorners(t *testing.T) {
	g := mustParse(t, "##.\n...\n...")
	gen := shape.CreatePixel("roundedPath", nil)
	p := gen.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)

	assert.False(t, p.Contains(gg.Pt(0.2, 0.2)), "outer corner is rounded")
	assert.True(t, p.Contains(gg.Pt(9.8, 0.2)), "shared edge stays square")
	assert.True(t, p.Contains(gg.Pt(10.2, 0.2)), "shared edge stays square")
	assert.False(t, p.Contains(gg.Pt(19.8, 0.2)))
}

func TestCurvePixelNeedsDiagonal(t *testing.T) {
	g := mustParse(t, "#..\n.#.\n...")
	gen := shape.CreatePixel("curvePixel", nil)
	p := gen.Path(g, shape.Size{Width: 30, Height: 30}, shape.On, true)

	// The diagonal neighbour keeps the touching corners sharp.
	assert.True(t, p.Contains(gg.Pt(9.8, 9.8)))
	assert.True(t, p.Contains(gg.Pt(10.2, 10.2)))
	assert.False(t, p.Contains(gg.Pt(0.2, 0.2)))
}

func TestInnerCorners(t *testing.T) {
	g := mustParse(t, "##\n#.")
	size := shape.Size{Width: 20, Height: 20}

	plain := shape.CreatePixel("roundedPath", nil).Path(g, size, shape.On, true)
	assert.False(t, plain.Contains(gg.Pt(10.2, 10.2)))

	filled := shape.CreatePixel("roundedPath", settings.Config{
		shape.KeyHasInnerCorners: settings.Bool(true),
	}).Path(g, size, shape.On, true)
	assert.True(t, filled.Contains(gg.Pt(10.2, 10.2)), "concave corner is filled")
	assert.False(t, filled.Contains(gg.Pt(19, 19)))

	blob := shape.CreatePixel("blob", nil).Path(g, size, shape.On, true)
	assert.True(t, blob.Contains(gg.Pt(10.2, 10.2)))
}

func TestNilAndInvalidInput(t *testing.T) {
	gen := shape.CreatePixel("circle", nil)
	assert.True(t, shape.Empty(gen.Path(nil, shape.Size{Width: 10, Height: 10}, shape.On, false)))
	assert.True(t, shape.Empty(gen.Path(mustParse(t, "#"), shape.Size{}, shape.On, true)))
}
