// Package mwmap classifies the lines of CodeWarrior linker map files into
// typed records.
//
// Every physical line of a map file maps to exactly one mapfile.Line. Use
// ParseLine for a single line, Parse for a whole file held in memory, or
// ParseFile to read and classify a file from disk.
//
// Example:
//
//	res, err := mwmap.ParseFile(ctx, "main.MAP",
//	    mwmap.WithLogger(slog.Default()),
//	    mwmap.WithErrorPolicy(mwmap.Skip),
//	)
package mwmap

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/mwtools/mwmap/internal/parser"
	"github.com/mwtools/mwmap/mapfile"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (lines, chunks).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ErrorPolicy selects what Parse does with lines that fail to classify.
type ErrorPolicy int

const (
	// Abort stops at the first failing line, by line number.
	Abort ErrorPolicy = iota
	// Skip records every failure and leaves a nil slot for the line.
	Skip
)

func (p ErrorPolicy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Option configures Parse and ParseFile.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	workers int
	policy  ErrorPolicy
}

func newConfig(opts []Option) config {
	cfg := config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithWorkers bounds the number of goroutines classifying lines.
// Values below one mean one. The default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithErrorPolicy sets how Parse handles unclassifiable lines.
// The default is Abort.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *config) { c.policy = p }
}

// ParseLine classifies a single line. Trailing line terminators are
// ignored. A failure is returned as a *mapfile.ParseError.
func ParseLine(text string) (mapfile.Line, error) {
	return parser.ParseLine(text)
}

// Matches returns the kinds of every line shape that accepts the whole of
// text. A well formed line matches exactly one.
func Matches(text string) []mapfile.Kind {
	return parser.Matches(text)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
