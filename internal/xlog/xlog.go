// Package xlog is a minimal leveled logging seam for the isogeny walk: a
// two-method interface with a zerolog-backed implementation and a discard
// default, so the walk can trace its real/dummy steps without imposing a
// logging setup on callers who never enable it.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the narrow interface the isogeny walk uses to trace its
// progress. Implementations must be safe for concurrent use.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
}

// Discard is a Logger that drops everything; it is the default used
// throughout this module when no logger is supplied.
var Discard Logger = discard{}

type discard struct{}

func (discard) Tracef(string, ...any) {}
func (discard) Debugf(string, ...any) {}

// zlog adapts a zerolog.Logger to the Logger interface.
type zlog struct {
	l zerolog.Logger
}

// New wraps an existing zerolog.Logger, letting a caller fold the walk's
// trace lines into its own application-wide logger (shared fields, output
// writer, level filter) rather than spinning up a separate one.
func New(l zerolog.Logger) Logger {
	return zlog{l: l}
}

// Standard returns a Logger backed by a zerolog.Logger writing to
// os.Stderr, tagged with pkg=csidh the way a caller would fold this
// package's traces into a larger structured-logging setup.
func Standard() Logger {
	return StandardTo(os.Stderr)
}

// StandardTo is Standard, but writes to w instead of os.Stderr.
func StandardTo(w io.Writer) Logger {
	return New(zerolog.New(w).With().Timestamp().Str("pkg", "csidh").Logger())
}

func (z zlog) Tracef(format string, args ...any) {
	z.l.Trace().Msgf(format, args...)
}

func (z zlog) Debugf(format string, args ...any) {
	z.l.Debug().Msgf(format, args...)
}
