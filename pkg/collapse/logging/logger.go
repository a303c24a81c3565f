// Package logging provides the zerolog logger used by the collapse packages.
package logging

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger holds the package-level logger. Nil means no-op.
var logger atomic.Pointer[zerolog.Logger]

// SetLogger configures the package-level logger.
// Pass nil to disable logging.
//
// Example enabling console output on stderr:
//
//	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
//	logging.SetLogger(&l)
func SetLogger(l *zerolog.Logger) {
	if l == nil {
		nop := zerolog.Nop()
		logger.Store(&nop)
		return
	}
	logger.Store(l)
}

// Logger returns the package-level logger, a no-op logger if none was set.
func Logger() *zerolog.Logger {
	l := logger.Load()
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
		logger.Store(l)
	}
	return l
}

// New builds a logger writing to w at the given level name.
// Console formatting is used when console is true.
func New(w io.Writer, level string, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
