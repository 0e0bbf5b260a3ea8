// Package logging provides a slog handler for terminal diagnostics.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// CLIHandler writes one line per record: "msg: k=v ...".
type CLIHandler struct {
	writer io.Writer
	level  slog.Level
	color  bool
	prefix string
	attrs  []slog.Attr
}

// NewCLIHandler returns a handler writing records at or above level to w.
func NewCLIHandler(w io.Writer, level slog.Level, color bool) *CLIHandler {
	return &CLIHandler{
		writer: w,
		level:  level,
		color:  color,
	}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			msg = colorRed + msg + colorReset
		case r.Level >= slog.LevelWarn:
			msg = colorYellow + msg + colorReset
		}
	}

	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.prefix = name
	return &next
}

// NewCLILogger builds a logger for w at the named level.
func NewCLILogger(w io.Writer, level string, color bool) *slog.Logger {
	return slog.New(NewCLIHandler(w, ParseLogLevel(level), color))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelWarn for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
