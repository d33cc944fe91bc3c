package pixel

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-qr/grid"
	"github.com/gogpu/gg-qr/internal/logging"
	"github.com/gogpu/gg-qr/settings"
	"github.com/gogpu/gg-qr/shape"
)

var (
	horizontalDesc = shape.Descriptor{Name: "horizontal", Title: "Horizontal"}
	verticalDesc   = shape.Descriptor{Name: "vertical", Title: "Vertical"}
)

// Run merges consecutive selected cells of a row (or column) into a single
// rounded bar.
type Run struct {
	vertical     bool
	inset        float64
	cornerRadius float64
}

var _ shape.PixelGenerator = (*Run)(nil)

// NewRun creates a run-merging generator. Horizontal runs follow rows;
// vertical runs follow columns.
func NewRun(vertical bool, cfg settings.Config) *Run {
	r := &Run{vertical: vertical}
	for _, key := range []string{shape.KeyInset, shape.KeyCornerRadiusFraction} {
		if v, ok := cfg[key]; ok && !r.SetSetting(key, v) {
			warnSetting(r.Descriptor().Name, key)
		}
	}
	return r
}

// Descriptor implements shape.Codable.
func (r *Run) Descriptor() shape.Descriptor {
	if r.vertical {
		return verticalDesc
	}
	return horizontalDesc
}

// SupportsKey implements shape.Codable.
func (r *Run) SupportsKey(key string) bool {
	return key == shape.KeyInset || key == shape.KeyCornerRadiusFraction
}

// Settings implements shape.Codable.
func (r *Run) Settings() settings.Config {
	return settings.Config{
		shape.KeyInset:                settings.Number(r.inset),
		shape.KeyCornerRadiusFraction: settings.Number(r.cornerRadius),
	}
}

// SetSetting implements shape.Codable. The inset is in user units and may
// not be negative; the corner radius fraction is clamped to [0, 1].
func (r *Run) SetSetting(key string, v settings.Value) bool {
	f, ok := settings.AsFloat(v)
	if !ok {
		return false
	}
	switch key {
	case shape.KeyInset:
		r.inset = math.Max(f, 0)
	case shape.KeyCornerRadiusFraction:
		r.cornerRadius = settings.Clamp01(f)
	default:
		return false
	}
	return true
}

// Clone implements shape.PixelGenerator.
func (r *Run) Clone() shape.PixelGenerator {
	c := *r
	return &c
}

// Path implements shape.PixelGenerator. Every maximal run becomes one
// rectangle, inset on its outer edges, with corner radius
// cornerRadiusFraction × min(w, h) / 2.
func (r *Run) Path(g *grid.Grid, size shape.Size, sel shape.Selector, isTemplate bool) *gg.Path {
	out := gg.NewPath()
	if g == nil || !size.Valid() {
		return out
	}
	work := shape.Working(g, sel, isTemplate)
	l := shape.NewLayout(work.Dimension(), size)

	at := work.At
	if r.vertical {
		at = func(line, pos int) bool { return work.At(pos, line) }
	}
	for line := 0; line < l.N; line++ {
		pos := 0
		for pos < l.N {
			if !at(line, pos) {
				pos++
				continue
			}
			start := pos
			for pos < l.N && at(line, pos) {
				pos++
			}
			r.addRun(out, l, line, start, pos-start)
		}
	}
	return out
}

func (r *Run) addRun(out *gg.Path, l shape.Layout, line, start, length int) {
	var o gg.Point
	w, h := float64(length)*l.Cell, l.Cell
	if r.vertical {
		o = l.Origin(start, line)
		w, h = h, w
	} else {
		o = l.Origin(line, start)
	}

	x, y := o.X+r.inset, o.Y+r.inset
	w -= 2 * r.inset
	h -= 2 * r.inset
	if w <= 0 || h <= 0 {
		return
	}
	shape.RoundedRect(out, x, y, w, h, r.cornerRadius*math.Min(w, h)/2)
}

func warnSetting(generator, key string) {
	logging.Logger().Warn("pixel: ignoring setting",
		slog.String("generator", generator), slog.String("key", key))
}
