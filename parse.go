package mwmap

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mwtools/mwmap/internal/parser"
	"github.com/mwtools/mwmap/mapfile"
)

// minChunk is the smallest number of lines handed to one worker.
const minChunk = 256

// Result holds the classified lines of one map file.
type Result struct {
	// Lines has one slot per physical line, in input order. Under the Skip
	// policy a line that failed to classify has a nil slot.
	Lines []mapfile.Line
	// Errors lists the failures, ordered by line number.
	Errors []*mapfile.ParseError
}

// Counts returns the number of lines classified as each kind.
func (r *Result) Counts() map[mapfile.Kind]int {
	counts := make(map[mapfile.Kind]int)
	for _, l := range r.Lines {
		if l != nil {
			counts[l.Kind()]++
		}
	}
	return counts
}

// OK reports whether every line classified.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// SplitLines splits text into physical lines. Lines end at LF; a CR before
// the LF is dropped. A final line terminator does not start a new line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Parse classifies every line of text. Lines are classified concurrently in
// chunks; the result keeps input order.
//
// Under the Abort policy the first failing line, by line number, is returned
// as a *mapfile.ParseError and the result is nil. Under Skip the error is nil
// and failures are collected in Result.Errors.
//
// If ctx is cancelled, Parse returns ctx.Err().
func Parse(ctx context.Context, text string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	return parseLines(ctx, SplitLines(text), cfg)
}

// ParseFile reads the file at path and classifies it. The file is read
// whole, so the returned records do not depend on the file staying open.
func ParseFile(ctx context.Context, path string, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "unable to read map file %q", path)
	}
	return Parse(ctx, string(data), opts...)
}

func parseLines(ctx context.Context, lines []string, cfg config) (*Result, error) {
	logger := cfg.logger
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunk := max(minChunk, (len(lines)+cfg.workers-1)/cfg.workers)
	nchunks := (len(lines) + chunk - 1) / chunk

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parsing",
			slog.Int("lines", len(lines)),
			slog.Int("chunks", nchunks),
			slog.Int("workers", cfg.workers))
	}

	out := make([]mapfile.Line, len(lines))
	chunkErrs := make([][]*mapfile.ParseError, nchunks)

	// Lowest chunk index with a failure. Under Abort, chunks after it
	// cannot change the reported error and are skipped.
	var failed atomic.Int64
	failed.Store(math.MaxInt64)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for ci := range nchunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			lo := ci * chunk
			hi := min(lo+chunk, len(lines))
			p := parser.New(componentLogger(logger, "parser"))
			if logEnabled(logger, slog.LevelDebug) {
				logger.LogAttrs(gctx, slog.LevelDebug, "classifying chunk",
					slog.Int("chunk", ci),
					slog.Int("first", lo+1),
					slog.Int("last", hi))
			}
			for i := lo; i < hi; i++ {
				if (i-lo)%minChunk == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
					if cfg.policy == Abort && int64(ci) > failed.Load() {
						return nil
					}
				}
				l, err := p.ParseLine(lines[i])
				if err == nil {
					out[i] = l
					continue
				}
				var perr *mapfile.ParseError
				if !errors.As(err, &perr) {
					return err
				}
				perr.Line = i + 1
				chunkErrs[ci] = append(chunkErrs[ci], perr)
				if cfg.policy == Abort {
					lowerFailed(&failed, int64(ci))
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var errs []*mapfile.ParseError
	for _, ce := range chunkErrs {
		errs = append(errs, ce...)
	}
	slices.SortFunc(errs, func(a, b *mapfile.ParseError) int {
		return a.Line - b.Line
	})

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parsing complete",
			slog.Int("lines", len(lines)),
			slog.Int("errors", len(errs)))
	}

	if cfg.policy == Abort && len(errs) > 0 {
		return nil, errs[0]
	}
	return &Result{Lines: out, Errors: errs}, nil
}

func lowerFailed(failed *atomic.Int64, ci int64) {
	for {
		cur := failed.Load()
		if ci >= cur || failed.CompareAndSwap(cur, ci) {
			return
		}
	}
}
