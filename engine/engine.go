// Package engine defines the boundary to matrix barcode encoders.
//
// An Engine turns a payload into a grid.Grid. This module does not encode
// symbols itself; adapters for third-party encoders register by name:
//
//	import _ "github.com/gogpu/gg-qr/engine/goqrcode"
//
//	e, err := engine.New("goqrcode")
//	g, err := e.GenerateText("https://example.com", engine.Medium)
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg-qr/grid"
)

// ErrNoGenerator is returned when a grid is requested without a matrix
// engine.
var ErrNoGenerator = errors.New("engine: no matrix generator")

// ErrEmptyData is returned for an empty payload.
var ErrEmptyData = errors.New("engine: empty data")

// ErrorCorrection is the error recovery level of a symbol.
type ErrorCorrection uint8

const (
	Low      ErrorCorrection = iota // ~7% recovery
	Medium                          // ~15% recovery
	Quartile                        // ~25% recovery
	High                            // ~30% recovery
)

var ecNames = [...]string{"L", "M", "Q", "H"}

// String returns the single-letter level name.
func (ec ErrorCorrection) String() string {
	if int(ec) < len(ecNames) {
		return ecNames[ec]
	}
	return fmt.Sprintf("ErrorCorrection(%d)", ec)
}

// ParseErrorCorrection accepts a level letter (L, M, Q, H) or name (low,
// medium, quartile, high), case-insensitively.
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return Low, nil
	case "m", "medium":
		return Medium, nil
	case "q", "quartile":
		return Quartile, nil
	case "h", "high":
		return High, nil
	}
	return Medium, fmt.Errorf("engine: unknown error correction %q", s)
}

// Engine encodes payloads into grids.
type Engine interface {
	// Name identifies the engine.
	Name() string
	// Generate encodes raw bytes.
	Generate(data []byte, ec ErrorCorrection) (*grid.Grid, error)
	// GenerateText encodes a UTF-8 string.
	GenerateText(text string, ec ErrorCorrection) (*grid.Grid, error)
}

// None is the engine used when nothing else is configured. It always
// fails with ErrNoGenerator.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Generate returns ErrNoGenerator.
func (None) Generate([]byte, ErrorCorrection) (*grid.Grid, error) {
	return nil, ErrNoGenerator
}

// GenerateText returns ErrNoGenerator.
func (None) GenerateText(string, ErrorCorrection) (*grid.Grid, error) {
	return nil, ErrNoGenerator
}
