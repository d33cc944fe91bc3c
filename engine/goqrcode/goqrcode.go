// Package goqrcode adapts github.com/yeqown/go-qrcode/v2 as a matrix
// engine. Importing it registers the engine as "goqrcode".
package goqrcode

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/gogpu/gg-qr/engine"
	"github.com/gogpu/gg-qr/grid"
)

// Name is the registered engine name.
const Name = "goqrcode"

func init() {
	engine.Register(Name, func() engine.Engine { return New() })
}

// Engine encodes QR symbols with go-qrcode.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New creates the engine.
func New() *Engine {
	return &Engine{}
}

// Name returns "goqrcode".
func (e *Engine) Name() string { return Name }

// Generate encodes data in byte mode.
func (e *Engine) Generate(data []byte, ec engine.ErrorCorrection) (*grid.Grid, error) {
	if len(data) == 0 {
		return nil, engine.ErrEmptyData
	}
	return encode(string(data), ec, qrcode.WithEncodingMode(qrcode.EncModeByte))
}

// GenerateText encodes text, letting go-qrcode pick the densest mode.
func (e *Engine) GenerateText(text string, ec engine.ErrorCorrection) (*grid.Grid, error) {
	if text == "" {
		return nil, engine.ErrEmptyData
	}
	return encode(text, ec)
}

func encode(text string, ec engine.ErrorCorrection, opts ...qrcode.EncodeOption) (*grid.Grid, error) {
	opts = append(opts, level(ec))
	qrc, err := qrcode.NewWith(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("goqrcode: encode: %w", err)
	}
	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("goqrcode: save: %w", err)
	}
	return w.grid, w.err
}

func level(ec engine.ErrorCorrection) qrcode.EncodeOption {
	switch ec {
	case engine.Low:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case engine.Quartile:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case engine.High:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	}
}

// matrixWriter captures the symbol matrix instead of drawing it.
type matrixWriter struct {
	grid *grid.Grid
	err  error
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	if mat.Width() != mat.Height() {
		return fmt.Errorf("goqrcode: non-square matrix %dx%d", mat.Width(), mat.Height())
	}
	rows := make([][]bool, mat.Height())
	for i := range rows {
		rows[i] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		rows[y][x] = v.IsSet()
	})
	w.grid, w.err = grid.FromRows(rows)
	return w.err
}

func (w *matrixWriter) Close() error { return nil }
