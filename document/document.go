// Package document defines the persisted form of a design.
//
// A document is plain data: generator names with their settings maps, fill
// styles with hex colors and a shadow. It encodes as YAML, TOML or JSON.
// Decoding is tolerant. Unknown keys are ignored, missing keys keep their
// defaults, and unknown generator or fill names fall back to defaults with
// a warning.
//
//	data, err := document.Marshal(doc, document.YAML)
//	doc, err := document.Unmarshal(data, document.FormatFromPath("qr.toml"))
package document

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Version is the schema version written by Marshal.
const Version = 1

// ErrUnknownFormat is returned for a format other than YAML, TOML or JSON.
var ErrUnknownFormat = errors.New("document: unknown format")

// Format is a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// ParseFormat accepts a format name or file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension of path.
// Unrecognized extensions select YAML.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return YAML
	}
	return f
}

// Design is the root of a document.
type Design struct {
	Version             int    `json:"version" yaml:"version" toml:"version"`
	AdditionalQuietZone int    `json:"additionalQuietZone,omitempty" yaml:"additionalQuietZone,omitempty" toml:"additionalQuietZone,omitempty"`
	Shape               *Shape `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Style               *Style `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// Shape lists the generators of a design.
type Shape struct {
	OnPixels  *Generator `json:"onPixels,omitempty" yaml:"onPixels,omitempty" toml:"onPixels,omitempty"`
	OffPixels *Generator `json:"offPixels,omitempty" yaml:"offPixels,omitempty" toml:"offPixels,omitempty"`
	Eye       *Generator `json:"eye,omitempty" yaml:"eye,omitempty" toml:"eye,omitempty"`
	Pupil     *Generator `json:"pupil,omitempty" yaml:"pupil,omitempty" toml:"pupil,omitempty"`
}

// Generator is a generator name and its settings.
type Generator struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty"`
}

// Style lists the fills of a design.
type Style struct {
	Background             *Fill   `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	BackgroundCornerRadius float64 `json:"backgroundCornerRadius,omitempty" yaml:"backgroundCornerRadius,omitempty" toml:"backgroundCornerRadius,omitempty"`
	OnPixels               *Fill   `json:"onPixels,omitempty" yaml:"onPixels,omitempty" toml:"onPixels,omitempty"`
	OffPixels              *Fill   `json:"offPixels,omitempty" yaml:"offPixels,omitempty" toml:"offPixels,omitempty"`
	EyeOuter               *Fill   `json:"eyeOuter,omitempty" yaml:"eyeOuter,omitempty" toml:"eyeOuter,omitempty"`
	EyePupil               *Fill   `json:"eyePupil,omitempty" yaml:"eyePupil,omitempty" toml:"eyePupil,omitempty"`
	Shadow                 *Shadow `json:"shadow,omitempty" yaml:"shadow,omitempty" toml:"shadow,omitempty"`
}

// Fill is a persisted fill style. Type selects which fields apply:
//
//	solid:  Color
//	linear: Start, End, Stops
//	radial: Center, Stops
//	image:  Image (base64 PNG), Mode
type Fill struct {
	Type   string `json:"type" yaml:"type" toml:"type"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Start  *Point `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	End    *Point `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`
	Center *Point `json:"center,omitempty" yaml:"center,omitempty" toml:"center,omitempty"`
	Stops  []Stop `json:"stops,omitempty" yaml:"stops,omitempty" toml:"stops,omitempty"`
	Image  string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Mode   string `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
}

// Point is a position in unit coordinates of the filled rectangle.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64 `json:"offset" yaml:"offset" toml:"offset"`
	Color  string  `json:"color" yaml:"color" toml:"color"`
}

// Shadow is a persisted drop shadow.
type Shadow struct {
	DX    float64 `json:"dx" yaml:"dx" toml:"dx"`
	DY    float64 `json:"dy" yaml:"dy" toml:"dy"`
	Blur  float64 `json:"blur" yaml:"blur" toml:"blur"`
	Color string  `json:"color" yaml:"color" toml:"color"`
}

// Marshal encodes d in the given format.
func Marshal(d *Design, f Format) ([]byte, error) {
	if d.Version == 0 {
		d.Version = Version
	}
	var (
		data []byte
		err  error
	)
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(d); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case TOML:
		data, err = toml.Marshal(d)
	case JSON:
		data, err = json.MarshalIndent(d, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: encode %s: %w", f, err)
	}
	return data, nil
}

// Unmarshal decodes a document in the given format. Unknown keys are
// ignored.
func Unmarshal(data []byte, f Format) (*Design, error) {
	d := &Design{}
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, d)
	case TOML:
		err = toml.Unmarshal(data, d)
	case JSON:
		err = json.Unmarshal(data, d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", f, err)
	}
	return d, nil
}

func encodeImage(png []byte) string {
	return base64.StdEncoding.EncodeToString(png)
}

func decodeImage(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ";base64,"); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}
