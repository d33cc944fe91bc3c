package ggqr

import "github.com/gogpu/gg-qr/engine"

// DocumentOption configures a Document during creation.
//
// Example:
//
//	import _ "github.com/gogpu/gg-qr/engine/goqrcode"
//
//	e, _ := engine.New("goqrcode")
//	doc := ggqr.NewDocument(ggqr.WithEngine(e), ggqr.WithErrorCorrection(engine.High))
type DocumentOption func(*documentOptions)

type documentOptions struct {
	engine engine.Engine
	ec     engine.ErrorCorrection
	design *Design
}

func defaultDocumentOptions() documentOptions {
	return documentOptions{
		engine: engine.None{},
		ec:     engine.Medium,
	}
}

// WithEngine sets the matrix engine used to encode text and data.
// A nil engine keeps the default, which fails with engine.ErrNoGenerator.
func WithEngine(e engine.Engine) DocumentOption {
	return func(o *documentOptions) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithErrorCorrection sets the error correction level. The default is
// engine.Medium.
func WithErrorCorrection(ec engine.ErrorCorrection) DocumentOption {
	return func(o *documentOptions) {
		o.ec = ec
	}
}

// WithDesign sets the initial design. The document takes ownership of d.
func WithDesign(d *Design) DocumentOption {
	return func(o *documentOptions) {
		o.design = d
	}
}
