// Package log configures the zerolog logger used for CLI diagnostics.
// User-facing command output goes to the command writers, never here.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// EnvLevel overrides the log level when set ("debug", "info", ...).
const EnvLevel = "CK_LOG"

// New returns a console-format logger writing to w at the given level.
// An unparsable level falls back to warn; CK_LOG wins over level.
func New(w io.Writer, level string) zerolog.Logger {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
