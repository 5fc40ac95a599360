package swf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine advances a movie.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for swf and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by swf:
//   - [slog.LevelDebug]: per-tag tracing (unknown tags, skipped records)
//   - [slog.LevelWarn]: recoverable oddities in the input (morph style
//     mismatches, duplicate queued placements, truncated tag bodies)
//   - [slog.LevelError]: placements that were dropped (missing characters,
//     truncated tag streams)
//
// Logging is a diagnostic side channel only; it never changes results.
//
// Example:
//
//	swf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by swf.
// Sub-packages (library/, display/, render/) call this to share the same
// configuration without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
