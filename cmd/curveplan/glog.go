package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang/glog"
)

// glogHandler forwards slog records to glog. Debug records are logged at
// verbosity 1.
type glogHandler struct {
	prefix string
	attrs  []slog.Attr
}

func (h glogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

func (h glogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s%s=%v", h.prefix, a.Key, a.Value)
		return true
	})
	msg := sb.String()

	const depth = 3
	switch {
	case r.Level >= slog.LevelError:
		glog.ErrorDepth(depth, msg)
	case r.Level >= slog.LevelWarn:
		glog.WarningDepth(depth, msg)
	default:
		glog.InfoDepth(depth, msg)
	}
	return nil
}

func (h glogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := h
	out.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	out.attrs = append(out.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		out.attrs = append(out.attrs, a)
	}
	return out
}

func (h glogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := h
	out.prefix = h.prefix + name + "."
	return out
}
