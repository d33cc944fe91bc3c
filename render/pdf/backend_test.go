package pdf

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-qr/fill"
	"github.com/gogpu/gg-qr/render"
)

func rectPath(x, y, w, h float64) *gg.Path {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func renderPDF(t *testing.T, s *render.Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.Render("pdf", s, &buf))
	return buf.String()
}

func TestRenderPDF(t *testing.T) {
	doc := renderPDF(t, &render.Scene{
		Width:      120,
		Height:     80,
		Background: fill.NewSolid(gg.White),
		Layers: []render.Layer{
			{Path: rectPath(10, 10, 20, 20), Style: fill.NewSolid(gg.RGBA2(0, 0, 0, 0.5))},
		},
	})
	assert.True(t, strings.HasPrefix(doc, "%PDF"))
	assert.Contains(t, doc, "/MediaBox [0 0 120.00 80.00]")
	assert.Contains(t, doc, "/ExtGState", "translucent fill uses a graphics state")
	assert.NotContains(t, doc, "/Subtype /Image")
}

func TestRenderDeterministic(t *testing.T) {
	s := &render.Scene{
		Width:  50,
		Height: 50,
		Layers: []render.Layer{{Path: rectPath(5, 5, 10, 10), Style: fill.NewSolid(gg.Black)}},
	}
	assert.Equal(t, renderPDF(t, s), renderPDF(t, s))
}

func TestRenderShadowEmbedsImage(t *testing.T) {
	doc := renderPDF(t, &render.Scene{
		Width:  60,
		Height: 60,
		Shadow: render.NewShadow(2, 2, 4, gg.RGBA2(0, 0, 0, 0.5)),
		Layers: []render.Layer{{Path: rectPath(10, 10, 20, 20), Style: fill.NewSolid(gg.Black)}},
	})
	assert.True(t, strings.HasPrefix(doc, "%PDF"))
	assert.Contains(t, doc, "/Subtype /Image")
	assert.Contains(t, doc, "/SMask", "shadow transparency is kept")
}

func TestRenderGradients(t *testing.T) {
	two := fill.NewRadialGradient(gg.Pt(0.5, 0.5)).
		AddColorStop(0, gg.White).
		AddColorStop(1, gg.Black)
	three := fill.NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 1)).
		AddColorStop(0, gg.Red).
		AddColorStop(0.5, gg.Green).
		AddColorStop(1, gg.Blue)
	rings := fill.NewRadialGradient(gg.Pt(0.5, 0.5)).
		AddColorStop(0.2, gg.Red).
		AddColorStop(0.8, gg.Blue)

	doc := renderPDF(t, &render.Scene{
		Width:      40,
		Height:     40,
		Background: two,
		Layers: []render.Layer{
			{Path: rectPath(0, 0, 20, 20), Style: three},
			{Path: rectPath(20, 20, 20, 20), Style: rings},
		},
	})
	assert.Equal(t, 1, strings.Count(doc, "/ShadingType 3"))
	assert.Equal(t, 2, strings.Count(doc, "/ShadingType 2"), "one shading per stop pair")
}

func TestRenderImageFill(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})
	doc := renderPDF(t, &render.Scene{
		Width:  30,
		Height: 30,
		Layers: []render.Layer{{Path: rectPath(5, 5, 10, 10), Style: fill.NewImage(src)}},
	})
	assert.Contains(t, doc, "/Subtype /Image")
}

func TestUnitSpace(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(200, 100))
	assert.Equal(t, gg.Pt(0, 1), b.unit(gg.Pt(0, 0)))
	assert.Equal(t, gg.Pt(0.5, 0.25), b.unit(gg.Pt(100, 75)))
}

func TestLifecycleErrors(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Begin(0, 0), render.ErrInvalidSize)
	assert.Error(t, b.End())
	_, err := b.WriteTo(&bytes.Buffer{})
	assert.Error(t, err)
}
