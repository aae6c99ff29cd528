package conso

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// slogHandler adapts a Conso instance to the log/slog Handler interface so
// slog-based code can feed the reporter pipeline.
type slogHandler struct {
	logger *Conso
	prefix []string // pre-rendered key=value pairs from WithAttrs
	groups []string
}

// SlogHandler returns a slog.Handler that dispatches through this logger.
func (c *Conso) SlogHandler() slog.Handler {
	return &slogHandler{logger: c}
}

// slogType maps a slog level to the nearest log type.
func slogType(level slog.Level) LogType {
	switch {
	case level >= slog.LevelError:
		return TypeError
	case level >= slog.LevelWarn:
		return TypeWarn
	case level >= slog.LevelInfo:
		return TypeInfo
	default:
		return TypeDebug
	}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return typeLevels[slogType(level)] <= h.logger.Level()
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, p := range h.prefix {
		b.WriteString(" ")
		b.WriteString(p)
	}
	r.Attrs(func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			b.WriteString(" ")
			b.WriteString(h.renderAttr(a))
		}
		return true
	})

	t := slogType(r.Level)
	// The composed message goes through as a single argument so attr values
	// containing format verbs are never re-interpreted printf-style.
	rec := &LogRecord{
		Type:  t,
		Level: typeLevels[t],
		Tag:   h.logger.tag,
		Args:  []any{b.String()},
		Date:  r.Time,
	}
	h.logger.dispatch(rec)
	return nil
}

func (h *slogHandler) renderAttr(a slog.Attr) string {
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	return fmt.Sprintf("%s=%v", key, a.Value.Any())
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.prefix = append([]string(nil), h.prefix...)
	for _, a := range attrs {
		if !a.Equal(slog.Attr{}) {
			clone.prefix = append(clone.prefix, h.renderAttr(a))
		}
	}
	return &clone
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}
