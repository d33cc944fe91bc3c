package svg

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/color"
	"io"
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

func renderString(t *testing.T, s *render.Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.Render("svg", s, &buf))
	return buf.String()
}

// wellFormed checks that doc parses as XML.
func wellFormed(t *testing.T, doc string) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := d.Token()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return
		}
	}
}

func TestPathData(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10.5, 0)
	p.QuadraticTo(12, 1, 12, 3.0004)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()
	assert.Equal(t, "M0 0 L10.5 0 Q12 1 12 3 C1 2 3 4 5 6 Z", PathData(p))
}

func TestRenderSolid(t *testing.T) {
	doc := renderString(t, &render.Scene{
		Width:      30,
		Height:     20,
		Background: fill.NewSolid(gg.White),
		Layers: []render.Layer{
			{Path: rectPath(5, 5, 10, 10), Style: fill.NewSolid(gg.RGBA2(0, 0, 0, 0.5))},
		},
	})
	wellFormed(t, doc)
	assert.Contains(t, doc, `width="30" height="20" viewBox="0 0 30 20"`)
	assert.Contains(t, doc, `fill="#ffffff"`)
	assert.Contains(t, doc, `fill="#000000" fill-opacity="0.5"`)
	assert.NotContains(t, doc, "<defs>")
	assert.Equal(t, 2, strings.Count(doc, "<path "))
}

func TestRenderShadowHasOneFilter(t *testing.T) {
	doc := renderString(t, &render.Scene{
		Width:  40,
		Height: 40,
		Shadow: render.NewShadow(2, 3, 6, gg.RGBA2(0, 0, 0, 0.4)),
		Layers: []render.Layer{
			{Path: rectPath(5, 5, 10, 10), Style: fill.NewSolid(gg.Black)},
			{Path: rectPath(20, 20, 10, 10), Style: fill.NewSolid(gg.Red)},
		},
	})
	wellFormed(t, doc)
	assert.Equal(t, 1, strings.Count(doc, "<filter "))
	assert.Contains(t, doc, `<feGaussianBlur stdDeviation="3"/>`)
	assert.Contains(t, doc, `transform="translate(2 3)"`)

	// The shadow is drawn before the layers.
	assert.Less(t, strings.Index(doc, `filter="url(#shadow1)"`), strings.Index(doc, `fill="#ff0000"`))
}

func TestRenderShadowWithoutBlur(t *testing.T) {
	doc := renderString(t, &render.Scene{
		Width:  10,
		Height: 10,
		Shadow: render.NewShadow(1, 1, 0, gg.Black),
		Layers: []render.Layer{{Path: rectPath(1, 1, 2, 2), Style: fill.NewSolid(gg.Black)}},
	})
	assert.NotContains(t, doc, "<filter")
	assert.Contains(t, doc, `translate(1 1)`)
}

func TestRenderGradients(t *testing.T) {
	lg := fill.NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 0)).
		AddColorStop(0, gg.Red).
		AddColorStop(1, gg.RGBA2(0, 0, 1, 0.25))
	rg := fill.NewRadialGradient(gg.Pt(0.5, 0.5)).
		AddColorStop(0, gg.White).
		AddColorStop(1, gg.Black)
	doc := renderString(t, &render.Scene{
		Width:      100,
		Height:     50,
		Background: rg,
		Layers:     []render.Layer{{Path: rectPath(0, 0, 10, 10), Style: lg}},
	})
	wellFormed(t, doc)
	assert.Contains(t, doc, `<linearGradient id="lg1" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="100" y2="0">`)
	assert.Contains(t, doc, `<radialGradient id="rg1" gradientUnits="userSpaceOnUse" cx="50" cy="25"`)
	assert.Contains(t, doc, `stop-color="#0000ff" stop-opacity="0.25"`)
	assert.Contains(t, doc, `fill="url(#lg1)"`)
	assert.Contains(t, doc, `fill="url(#rg1)"`)
}

func TestRenderImageFill(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})

	doc := renderString(t, &render.Scene{
		Width:  20,
		Height: 20,
		Layers: []render.Layer{{Path: rectPath(2, 2, 8, 8), Style: fill.NewImage(src)}},
	})
	wellFormed(t, doc)
	assert.Contains(t, doc, `<clipPath id="clip1">`)
	assert.Contains(t, doc, `clip-path="url(#clip1)"`)
	assert.Contains(t, doc, `href="data:image/png;base64,`)
	assert.Contains(t, doc, `width="20" height="20" preserveAspectRatio="none"`)
}

func TestBeginRejectsEmptyCanvas(t *testing.T) {
	assert.ErrorIs(t, NewBackend().Begin(10, -1), render.ErrInvalidSize)
}
