// Package obslog wraps zerolog in a small independent package so that
// internal/rex and internal/textbuf never import a logging library
// directly, the way wazero's internal/logging exists "to avoid
// dependency cycles" between its engines and its CLI. Only
// cmd/gmtextd calls into obslog; REX, TEXT and pkg/gmtext stay pure.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger handed to the controller and CLI
// entrypoints. It is never a package-level global: callers construct
// one in main() and pass it down explicitly, matching TEXT's
// single-owner-thread design of keeping the algorithmic core ignorant
// of its host.
type Logger struct {
	zerolog.Logger
}

// New builds a Logger writing to w at the given minimum level. Passing
// a nil w defaults to os.Stderr.
func New(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return Logger{zl}
}

// NewConsole is New with zerolog's human-readable ConsoleWriter, for
// interactive cmd/ use (as opposed to New's default JSON, meant for
// piping to a log aggregator).
func NewConsole(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return Logger{zerolog.New(cw).Level(level).With().Timestamp().Logger()}
}

// ParseLevel is a thin wrapper over zerolog.ParseLevel returning
// zerolog.InfoLevel for an empty string, the default cmd/ flags bind to.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}
