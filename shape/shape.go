// Package shape defines the generator contracts used to turn a grid into
// vector paths, and the registry that creates generators by name.
//
// There are three generator categories:
//
//   - Pixel generators build one path covering every selected data cell.
//   - Eye generators describe the outer ring of a finder pattern.
//   - Pupil generators describe the 3×3 centre of a finder pattern.
//
// Eye and pupil generators work in a fixed local space (90×90 units for the
// outer ring, 30×30 for the pupil) drawn for the top-left corner. EyePaths
// scales, translates and mirrors that geometry onto the three corners.
//
// Every generator is configured through a settings.Config. Decoding is
// tolerant: unknown keys are ignored and bad values keep the defaults.
package shape

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/settings"
)

// Category identifies a generator family.
type Category string

const (
	// CategoryPixel identifies data cell generators.
	CategoryPixel Category = "pixel"
	// CategoryEye identifies finder pattern ring generators.
	CategoryEye Category = "eye"
	// CategoryPupil identifies finder pattern centre generators.
	CategoryPupil Category = "pupil"
)

// Categories lists the generator categories in rendering order.
var Categories = [...]Category{CategoryPixel, CategoryEye, CategoryPupil}

// Descriptor names a generator.
// Name is the stable persisted identifier; Title is for display only.
type Descriptor struct {
	Name  string
	Title string
}

// Selector chooses which cells a pixel generator covers.
type Selector uint8

const (
	// On selects the set cells of the grid.
	On Selector = iota
	// Off selects the unset cells of the grid.
	Off
)

// String returns "on" or "off".
func (s Selector) String() string {
	if s == Off {
		return "off"
	}
	return "on"
}

// Size is an output size in user units.
type Size struct {
	Width, Height float64
}

// Valid reports whether both sides are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Codable is implemented by every generator. It exposes the generator's
// configuration as a settings.Config.
type Codable interface {
	// Descriptor returns the generator name and display title.
	Descriptor() Descriptor
	// SupportsKey reports whether key is a setting of this generator.
	SupportsKey(key string) bool
	// Settings returns the current configuration. Passing the result to the
	// registry recreates an equivalent generator.
	Settings() settings.Config
	// SetSetting applies a single setting. It returns false, leaving the
	// generator unchanged, when the key is unsupported or the value cannot
	// be coerced.
	SetSetting(key string, v settings.Value) bool
}

// PixelGenerator builds the path for data cells.
type PixelGenerator interface {
	Codable
	// Clone returns an independent copy.
	Clone() PixelGenerator
	// Path returns one path covering every selected cell of g, laid out in
	// a canvas of the given size.
	//
	// Unless isTemplate is set, eye regions are excluded and sel picks the
	// set (On) or unset (Off) cells. Template mode uses every cell of g as
	// is, or its inverse for Off.
	Path(g *grid.Grid, size Size, sel Selector, isTemplate bool) *gg.Path
}

// EyeGenerator describes the outer ring of a finder pattern.
type EyeGenerator interface {
	Codable
	// Clone returns an independent copy.
	Clone() EyeGenerator
	// EyePath returns the ring in local 90×90 space for the top-left corner.
	EyePath() *gg.Path
	// DefaultPupil returns the pupil generator paired with this eye.
	DefaultPupil() PupilGenerator
}

// PupilGenerator describes the centre of a finder pattern.
type PupilGenerator interface {
	Codable
	// Clone returns an independent copy.
	Clone() PupilGenerator
	// PupilPath returns the pupil in local 30×30 space for the top-left
	// corner.
	PupilPath() *gg.Path
}

const (
	// EyeExtent is the side of the local space used by EyeGenerator. It
	// spans the grid.EyeSize cells of a finder pattern.
	EyeExtent = 90.0
	// EyeModule is the width of one finder cell in eye space. A ring one
	// EyeModule thick matches the finder's outer border.
	EyeModule = EyeExtent / grid.EyeSize
	// PupilExtent is the side of the local space used by PupilGenerator.
	PupilExtent = 30.0
	// CellExtent is the side of the local space used for a single data cell.
	CellExtent = 10.0
)
