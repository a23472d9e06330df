package cli

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// logrusHandler forwards slog records from the dt package to a logrus logger,
// so library and command output share one format and one level.
type logrusHandler struct {
	log   *logrus.Logger
	attrs logrus.Fields
	group string
}

func newLogrusHandler(l *logrus.Logger) *logrusHandler {
	return &logrusHandler{log: l, attrs: logrus.Fields{}}
}

func (h *logrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.log.IsLevelEnabled(logrusLevel(level))
}

func (h *logrusHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.attrs)+r.NumAttrs())
	for k, v := range h.attrs {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.key(a.Key)] = a.Value.Any()
		return true
	})
	h.log.WithFields(fields).Log(logrusLevel(r.Level), r.Message)

	return nil
}

func (h *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &logrusHandler{log: h.log, attrs: make(logrus.Fields, len(h.attrs)+len(attrs)), group: h.group}
	for k, v := range h.attrs {
		next.attrs[k] = v
	}
	for _, a := range attrs {
		next.attrs[h.key(a.Key)] = a.Value.Any()
	}

	return next
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &logrusHandler{log: h.log, attrs: h.attrs, group: h.key(name)}
}

func (h *logrusHandler) key(k string) string {
	if h.group == "" {
		return k
	}

	return h.group + "." + k
}

// logrusLevel maps slog levels onto the closest logrus level.
func logrusLevel(l slog.Level) logrus.Level {
	switch {
	case l >= slog.LevelError:
		return logrus.ErrorLevel
	case l >= slog.LevelWarn:
		return logrus.WarnLevel
	case l >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
