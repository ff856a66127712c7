// Package diag is the leveled logging boundary of the pipeline. The core
// treats the Logger as a fire-and-forget collaborator: a logging failure
// never aborts parsing, resolution, or export.
package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level orders message severities; smaller is more severe.
type Level int

const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	VerboseLevel
	DebugLevel
)

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	}
	return "<unknown level>"
}

// ParseLevel reads a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "VERBOSE":
		return VerboseLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// Logger accepts leveled messages with optional key/value pairs. Callers
// assume fire-and-forget semantics.
type Logger interface {
	Error(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Verbose(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

type noop struct{}

func (noop) Error(string, ...any)   {}
func (noop) Warn(string, ...any)    {}
func (noop) Info(string, ...any)    {}
func (noop) Verbose(string, ...any) {}
func (noop) Debug(string, ...any)   {}

// Noop returns the default do-nothing logger.
func Noop() Logger { return noop{} }

var levelColors = map[Level]*color.Color{
	ErrorLevel:   color.New(color.FgRed, color.Bold),
	WarnLevel:    color.New(color.FgYellow),
	InfoLevel:    color.New(color.FgCyan),
	VerboseLevel: color.New(color.FgBlue),
	DebugLevel:   color.New(color.FgWhite),
}

// WriterLogger renders leveled lines to a destination writer, dropping
// messages below its threshold. Write errors are swallowed.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	color bool
}

// NewWriterLogger logs messages at or above level to w, colorizing the
// level tag when w is a terminal.
func NewWriterLogger(w io.Writer, level Level) *WriterLogger {
	useColor := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &WriterLogger{w: w, level: level, color: useColor}
}

// WithColor overrides terminal detection.
func (l *WriterLogger) WithColor(v bool) *WriterLogger {
	l.color = v
	return l
}

func (l *WriterLogger) Error(msg string, kv ...any)   { l.log(ErrorLevel, msg, kv) }
func (l *WriterLogger) Warn(msg string, kv ...any)    { l.log(WarnLevel, msg, kv) }
func (l *WriterLogger) Info(msg string, kv ...any)    { l.log(InfoLevel, msg, kv) }
func (l *WriterLogger) Verbose(msg string, kv ...any) { l.log(VerboseLevel, msg, kv) }
func (l *WriterLogger) Debug(msg string, kv ...any)   { l.log(DebugLevel, msg, kv) }

func (l *WriterLogger) log(level Level, msg string, kv []any) {
	if level > l.level {
		return
	}
	tag := level.String()
	if l.color {
		tag = levelColors[level].Sprint(tag)
	}
	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(msg)
	writeKV(&b, kv)
	b.WriteByte('\n')
	l.mu.Lock()
	defer l.mu.Unlock()
	// fire and forget
	_, _ = io.WriteString(l.w, b.String())
}

func writeKV(b *strings.Builder, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(b, " %v", kv[len(kv)-1])
	}
}

// Entry is one recorded message.
type Entry struct {
	Level   Level
	Message string
	KV      []any
}

// Collect records messages for inspection in tests.
type Collect struct {
	mu      sync.Mutex
	Entries []Entry
}

func (c *Collect) add(level Level, msg string, kv []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Entries = append(c.Entries, Entry{Level: level, Message: msg, KV: kv})
}

func (c *Collect) Error(msg string, kv ...any)   { c.add(ErrorLevel, msg, kv) }
func (c *Collect) Warn(msg string, kv ...any)    { c.add(WarnLevel, msg, kv) }
func (c *Collect) Info(msg string, kv ...any)    { c.add(InfoLevel, msg, kv) }
func (c *Collect) Verbose(msg string, kv ...any) { c.add(VerboseLevel, msg, kv) }
func (c *Collect) Debug(msg string, kv ...any)   { c.add(DebugLevel, msg, kv) }

// Has reports whether any recorded message at level contains substr.
func (c *Collect) Has(level Level, substr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.Entries {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
