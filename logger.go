package lottie

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// quiet drops every record. Enabled is false, so attributes passed to a
// quiet logger are never formatted.
type quiet struct{}

func (quiet) Enabled(context.Context, slog.Level) bool  { return false }
func (quiet) Handle(context.Context, slog.Record) error { return nil }
func (q quiet) WithAttrs([]slog.Attr) slog.Handler      { return q }
func (q quiet) WithGroup(string) slog.Handler           { return q }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(quiet{}))
}

// SetLogger routes the logs of Composition.Resolve and the imageloader
// package to l. A nil l silences them again, which is also the default.
//
// Resolve writes a debug record per resolved composition and, with debug
// mode on, a warning for each problem Validate would return. The
// imageloader writes a debug record per decoded image.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(quiet{})
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
