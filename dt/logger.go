package dt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by dt. By default dt is silent.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Log levels used by dt:
//   - [slog.LevelDebug]: one record per axis pass (axis, lines, scale factor).
//   - [slog.LevelWarn]: a weight below MinWeight was replaced by WeightFloor.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current dt logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
