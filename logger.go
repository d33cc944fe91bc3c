package ggqr

import (
	"log/slog"

	"github.com/gogpu/gg-qr/internal/logging"
)

// SetLogger configures the logger for gg-qr and all its sub-packages.
// By default, gg-qr produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gg-qr:
//   - [slog.LevelDebug]: render diagnostics (layer sizes, backend selection)
//   - [slog.LevelWarn]: tolerated configuration problems (unknown generator
//     names replaced by defaults, settings that could not be applied)
//
// Example:
//
//	ggqr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by gg-qr.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
