package fill

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCanvas remembers every FillPath call.
type recordingCanvas struct {
	paths  []*gg.Path
	paints []Paint
}

func (c *recordingCanvas) FillPath(p *gg.Path, paint Paint) {
	c.paths = append(c.paths, p)
	c.paints = append(c.paints, paint)
}

var testRect = gg.Rect{Min: gg.Pt(10, 20), Max: gg.Pt(110, 70)}

func TestSolid(t *testing.T) {
	s := NewSolid(gg.Red)
	c := &recordingCanvas{}
	Fill(c, s, testRect)

	require.Len(t, c.paints, 1)
	assert.Equal(t, SolidPaint{Color: gg.Red}, c.paints[0])
	bb := c.paths[0].BoundingBox()
	assert.Equal(t, testRect, bb)

	clone := s.Clone().(*Solid)
	clone.Color = gg.Blue
	assert.Equal(t, gg.Red, s.Color)
}

func TestLinearGradientPaint(t *testing.T) {
	g := NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 0.5)).
		AddColorStop(1, gg.Blue).
		AddColorStop(0, gg.Red).
		AddColorStop(3, gg.Green)
	require.NoError(t, g.Validate())

	p, ok := g.Paint(testRect).(LinearPaint)
	require.True(t, ok)
	assert.Equal(t, gg.Pt(10, 20), p.Start)
	assert.Equal(t, gg.Pt(110, 45), p.End)

	offsets := []float64{p.Stops[0].Offset, p.Stops[1].Offset, p.Stops[2].Offset}
	assert.Equal(t, []float64{0, 1, 1}, offsets, "stops are sorted and clamped")
	assert.Equal(t, gg.Red, p.Stops[0].Color)
}

func TestRadialGradientFarthestCorner(t *testing.T) {
	g := NewRadialGradient(gg.Pt(0.25, 0.5)).AddColorStop(0, gg.White).AddColorStop(1, gg.Black)
	p, ok := g.Paint(testRect).(RadialPaint)
	require.True(t, ok)
	assert.Equal(t, gg.Pt(35, 45), p.Center)
	want := math.Hypot(75, 25)
	assert.InDelta(t, want, p.Radius, 1e-9)
}

func TestGradientWithoutStops(t *testing.T) {
	lg := NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 1))
	assert.True(t, errors.Is(lg.Validate(), ErrNoStops))
	assert.Equal(t, SolidPaint{Color: gg.Transparent}, lg.Paint(testRect))

	rg := NewRadialGradient(gg.Pt(0.5, 0.5))
	assert.ErrorIs(t, rg.Validate(), ErrNoStops)
	assert.Equal(t, SolidPaint{Color: gg.Transparent}, rg.Paint(testRect))
}

func TestGradientCloneIsDeep(t *testing.T) {
	g := NewLinearGradient(gg.Pt(0, 0), gg.Pt(1, 0)).AddColorStop(0, gg.Red)
	c := g.Clone().(*LinearGradient)
	c.Stops[0].Color = gg.Green
	c.AddColorStop(1, gg.Blue)
	assert.Equal(t, gg.Red, g.Stops[0].Color)
	assert.Len(t, g.Stops, 1)

	r := NewRadialGradient(gg.Pt(0.5, 0.5)).AddColorStop(0, gg.Red)
	rc := r.Clone().(*RadialGradient)
	rc.Stops[0].Color = gg.Green
	assert.Equal(t, gg.Red, r.Stops[0].Color)

	// Resolved paints do not alias the style either.
	lp := g.Paint(testRect).(LinearPaint)
	lp.Stops[0].Color = gg.Black
	assert.Equal(t, gg.Red, g.Stops[0].Color)
}

func TestColorAt(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0.2, Color: gg.RGB(0, 0, 0)},
		{Offset: 0.6, Color: gg.RGB(1, 1, 1)},
	}
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.4, 0.5},
		{0.6, 1},
		{0.9, 1},
	}
	for _, tt := range tests {
		got := ColorAt(stops, tt.t)
		if math.Abs(got.R-tt.want) > 1e-9 {
			t.Errorf("ColorAt(%v).R = %v, want %v", tt.t, got.R, tt.want)
		}
	}
	assert.Equal(t, gg.Transparent, ColorAt(nil, 0.5))
}

func checker(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func TestImagePaintResamples(t *testing.T) {
	s := NewImage(checker(40, 20))
	p, ok := s.Paint(gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(30.5, 30)}).(ImagePaint)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 31, 30), p.Image.Bounds())

	s.Mode = ImageStretch
	p = s.Paint(gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(10, 10)}).(ImagePaint)
	r, _, b, _ := p.Image.At(1, 5).RGBA()
	assert.Greater(t, r, b, "left half stays red")
	r, _, b, _ = p.Image.At(8, 5).RGBA()
	assert.Greater(t, b, r, "right half stays blue")

	assert.Equal(t, SolidPaint{Color: gg.Transparent}, (&Image{}).Paint(testRect))
	assert.Equal(t, "cover", ImageCover.String())
	assert.Equal(t, "stretch", ImageStretch.String())
}

func TestCoverCrop(t *testing.T) {
	b := image.Rect(0, 0, 200, 100)
	assert.Equal(t, image.Rect(50, 0, 150, 100), coverCrop(b, 50, 50))
	assert.Equal(t, image.Rect(0, 0, 200, 100), coverCrop(b, 400, 200))
}

func TestImageCloneCopiesPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	s := NewImage(src)
	c := s.Clone().(*Image)
	src.Set(0, 0, color.RGBA{G: 255, A: 255})

	r, g, _, _ := c.Source.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
}

func TestLoadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checker(4, 4)))

	img, err := LoadImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	_, err = LoadImage(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrNotImage)
}
