package fill

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	// Decoders for LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/clone"
	"github.com/gogpu/gg"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned by LoadImage for data that is not a supported
// image format.
var ErrNotImage = errors.New("fill: not an image")

// ImageMode controls how an image is fitted to the filled rectangle.
type ImageMode uint8

const (
	// ImageCover scales the image uniformly to cover the rectangle and
	// crops the overflow around the centre.
	ImageCover ImageMode = iota
	// ImageStretch scales each axis independently to match the rectangle.
	ImageStretch
)

// String returns "cover" or "stretch".
func (m ImageMode) String() string {
	if m == ImageStretch {
		return "stretch"
	}
	return "cover"
}

// Image fills with a picture.
type Image struct {
	Source image.Image
	Mode   ImageMode
}

// NewImage creates an image style in cover mode.
func NewImage(src image.Image) *Image {
	return &Image{Source: src}
}

// Paint implements Style. The source is resampled with a Catmull-Rom
// filter to the pixel size of rect. A nil source paints transparent.
func (s *Image) Paint(rect gg.Rect) Paint {
	if s.Source == nil || s.Source.Bounds().Empty() {
		return SolidPaint{Color: gg.Transparent}
	}
	w := max(1, int(math.Ceil(rect.Width())))
	h := max(1, int(math.Ceil(rect.Height())))
	return ImagePaint{Image: resample(s.Source, w, h, s.Mode), Rect: rect}
}

// Clone implements Style. The pixels are copied.
func (s *Image) Clone() Style {
	out := &Image{Mode: s.Mode}
	if s.Source != nil {
		out.Source = clone.AsRGBA(s.Source)
	}
	return out
}

func resample(src image.Image, w, h int, mode ImageMode) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sr := src.Bounds()
	if mode == ImageCover {
		sr = coverCrop(sr, w, h)
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return dst
}

// coverCrop returns the centred part of b with the aspect ratio of w×h.
func coverCrop(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := float64(b.Dx()), float64(b.Dy())
	scale := math.Max(float64(w)/sw, float64(h)/sh)
	cw := int(math.Round(float64(w) / scale))
	ch := int(math.Round(float64(h) / scale))
	cw = min(max(cw, 1), b.Dx())
	ch = min(max(ch, 1), b.Dy())
	x0 := b.Min.X + (b.Dx()-cw)/2
	y0 := b.Min.Y + (b.Dy()-ch)/2
	return image.Rect(x0, y0, x0+cw, y0+ch)
}

// LoadImage decodes PNG, JPEG, GIF, BMP or WebP data. The format is
// detected from the content, not from a file name.
func LoadImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fill: read image: %w", err)
	}
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fill: decode %s: %w", kind.MIME.Value, err)
	}
	return img, nil
}
