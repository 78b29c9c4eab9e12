package types

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroLoggerDiscards(t *testing.T) {
	var l Logger
	if l.Enabled(slog.LevelError) {
		t.Error("zero Logger should not be enabled")
	}
	l.Debug("ignored")
	l.Trace("ignored")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	if l.TraceEnabled() {
		t.Error("trace should be off at Debug level")
	}
	l.Trace("per line")
	l.Debug("per chunk", slog.Int("chunk", 3))

	out := buf.String()
	if strings.Contains(out, "per line") {
		t.Errorf("trace record emitted: %s", out)
	}
	if !strings.Contains(out, "per chunk") || !strings.Contains(out, "chunk=3") {
		t.Errorf("debug record missing: %s", out)
	}
}

func TestSpan(t *testing.T) {
	line := "  00000000 000244 80003100  4 .init"
	s := NewSpan(2, 10)
	if s.Len() != 8 {
		t.Errorf("Len() = %d, want 8", s.Len())
	}
	if got := s.Text(line); got != "00000000" {
		t.Errorf("Text() = %q, want %q", got, "00000000")
	}
	if !NewSpan(4, 4).IsEmpty() {
		t.Error("[4,4) should be empty")
	}
}
