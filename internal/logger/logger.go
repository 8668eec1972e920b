// Package logger configures the zerolog logger used for verbose tracing.
//
// The tool is silent by default; --verbose enables debug-level console
// output on stderr so the resolved target, headers and response timing can
// be inspected without polluting stdout.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. With verbose false the
// returned logger is disabled entirely.
func New(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
