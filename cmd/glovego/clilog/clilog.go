// Package clilog builds the CLI logger: colorized human-friendly output
// via the charmbracelet/log slog handler.
package clilog

import (
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/hupe1980/glovego"
)

// New creates a Logger writing pretty output to stderr. debug lowers the
// level from Info to Debug.
func New(debug bool) *glovego.Logger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	return glovego.NewLogger(handler)
}
