package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiCyan   = "\x1b[36m"
)

// consoleHandler renders compact single-line records for interactive use.
type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
	color  bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	color := false
	if file, ok := w.(*os.File); ok {
		fd := file.Fd()
		color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return &consoleHandler{writer: w, level: lvl, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	if !record.Time.IsZero() {
		b.WriteString(h.dim(record.Time.Format("15:04:05")))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelTag(record.Level))
	b.WriteByte(' ')

	var component string
	pairs := make([]string, 0, record.NumAttrs()+len(h.attrs))
	appendAttr := func(attr slog.Attr) {
		if attr.Key == FieldComponent && component == "" {
			component = attr.Value.String()
			return
		}
		key := attr.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, attr.Value.String()))
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})

	if component != "" {
		b.WriteString(h.paint(ansiCyan, "["+component+"]"))
		b.WriteByte(' ')
	}
	b.WriteString(strings.TrimSpace(record.Message))
	if len(pairs) > 0 {
		b.WriteByte(' ')
		b.WriteString(h.dim(strings.Join(pairs, " ")))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
		color:  h.color,
	}
}

func (h *consoleHandler) levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.paint(ansiRed, "ERROR")
	case level >= slog.LevelWarn:
		return h.paint(ansiYellow, "WARN ")
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return h.dim("DEBUG")
	}
}

func (h *consoleHandler) paint(code, text string) string {
	if !h.color {
		return text
	}
	return code + text + ansiReset
}

func (h *consoleHandler) dim(text string) string {
	return h.paint(ansiDim, text)
}
