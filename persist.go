package ggqr

import (
	"fmt"
	"io"

	"github.com/gogpu/gg-qr/document"
	"github.com/gogpu/gg-qr/fill"
)

// ToDocument converts d to its persisted form.
//
// A nil Background or OnPixels style is recorded as an explicit "none"
// fill so that it survives a round trip instead of reverting to the
// default.
func (d *Design) ToDocument() (*document.Design, error) {
	out := &document.Design{
		Version:             document.Version,
		AdditionalQuietZone: d.AdditionalQuietZone,
	}
	if s := d.Shape; s != nil {
		out.Shape = &document.Shape{
			OnPixels:  document.FromGenerator(s.OnPixels),
			OffPixels: document.FromGenerator(s.OffPixels),
			Eye:       document.FromGenerator(s.Eye),
			Pupil:     document.FromGenerator(s.Pupil),
		}
	}
	if s := d.Style; s != nil {
		st := &document.Style{
			BackgroundCornerRadius: s.BackgroundCornerRadius,
			Shadow:                 document.FromShadow(s.Shadow),
		}
		var err error
		if st.Background, err = fillOrNone(s.Background); err != nil {
			return nil, err
		}
		if st.OnPixels, err = fillOrNone(s.OnPixels); err != nil {
			return nil, err
		}
		if st.OffPixels, err = document.FromStyle(s.OffPixels); err != nil {
			return nil, err
		}
		if st.EyeOuter, err = document.FromStyle(s.EyeOuter); err != nil {
			return nil, err
		}
		if st.EyePupil, err = document.FromStyle(s.EyePupil); err != nil {
			return nil, err
		}
		out.Style = st
	}
	return out, nil
}

func fillOrNone(s fill.Style) (*document.Fill, error) {
	if s == nil {
		return &document.Fill{Type: document.FillNone}, nil
	}
	return document.FromStyle(s)
}

// DesignFromDocument builds a design from its persisted form. Missing
// entries keep the defaults of NewDesign; unknown generator names and
// unreadable fills are replaced by defaults with a warning.
func DesignFromDocument(doc *document.Design) *Design {
	d := NewDesign()
	if doc == nil {
		return d
	}
	d.AdditionalQuietZone = max(0, doc.AdditionalQuietZone)

	if s := doc.Shape; s != nil {
		if s.OnPixels != nil {
			d.Shape.OnPixels = s.OnPixels.Pixel()
		}
		if s.OffPixels != nil {
			d.Shape.OffPixels = s.OffPixels.Pixel()
		}
		if s.Eye != nil {
			d.Shape.Eye = s.Eye.Eye()
		}
		d.Shape.Pupil = s.Pupil.Pupil()
	}

	if s := doc.Style; s != nil {
		applyFill(&d.Style.Background, s.Background)
		applyFill(&d.Style.OnPixels, s.OnPixels)
		applyFill(&d.Style.OffPixels, s.OffPixels)
		applyFill(&d.Style.EyeOuter, s.EyeOuter)
		applyFill(&d.Style.EyePupil, s.EyePupil)
		d.Style.BackgroundCornerRadius = max(0, s.BackgroundCornerRadius)
		d.Style.Shadow = s.Shadow.Shadow()
	}
	return d
}

// applyFill replaces *dst with the style of f. A missing or unreadable
// fill keeps *dst; an explicit "none" clears it.
func applyFill(dst *fill.Style, f *document.Fill) {
	switch {
	case f == nil:
	case f.IsNone():
		*dst = nil
	default:
		if s := f.Style(); s != nil {
			*dst = s
		}
	}
}

// Save writes d to w in the given format.
func (d *Design) Save(w io.Writer, f document.Format) error {
	doc, err := d.ToDocument()
	if err != nil {
		return err
	}
	data, err := document.Marshal(doc, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("ggqr: save design: %w", err)
	}
	return nil
}

// LoadDesign reads a design in the given format from r.
func LoadDesign(r io.Reader, f document.Format) (*Design, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ggqr: load design: %w", err)
	}
	doc, err := document.Unmarshal(data, f)
	if err != nil {
		return nil, err
	}
	return DesignFromDocument(doc), nil
}
