// Package types holds the logging wrapper and byte ranges shared by the
// classifier packages.
package types

import (
	"context"
	"log/slog"
)

// LevelTrace logs once per classified line. It sits below Debug, which
// logs once per chunk or failure.
const LevelTrace = slog.Level(-8)

var background = context.Background()

// Logger is a nil-safe slog.Logger. The zero value discards everything
// without formatting attributes.
type Logger struct {
	L *slog.Logger
}

// Enabled reports whether a record at level would be emitted.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(background, level)
}

// Log emits msg at level when enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.Enabled(level) {
		l.L.LogAttrs(background, level, msg, attrs...)
	}
}

// Debug emits msg at Debug level.
func (l *Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}

// TraceEnabled reports whether per-line logging is on. Check it before
// building attributes in hot loops.
func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits msg at LevelTrace.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// ByteOffset is a byte position within one map line.
type ByteOffset uint32

// Span is the half-open byte range [Start, End) of a line.
type Span struct {
	Start ByteOffset
	End   ByteOffset
}

// NewSpan returns the span [start, end).
func NewSpan(start, end ByteOffset) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Text returns the bytes of line covered by the span.
func (s Span) Text(line string) string {
	return line[s.Start:s.End]
}
