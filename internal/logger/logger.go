package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the application logger.
//   - level: log level string (trace, debug, info, warn, error); unknown values fall back to warn
//   - format: "pretty" for human-readable output, anything else for JSON lines
//
// Logs are written to w, which is stderr in the CLI since stdout carries the
// quiz dialogue.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	writer := w
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
