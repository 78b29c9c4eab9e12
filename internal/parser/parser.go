// Package parser classifies single map file lines.
//
// A line is tried against every line shape in a fixed priority order. Each
// shape must consume the whole line; the first one that does wins. When no
// shape matches, the failure that reached furthest into the line is
// reported.
package parser

import (
	"log/slog"
	"strings"

	"github.com/mwtools/mwmap/internal/linker"
	"github.com/mwtools/mwmap/internal/memory"
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/internal/section"
	"github.com/mwtools/mwmap/internal/tree"
	"github.com/mwtools/mwmap/internal/types"
	"github.com/mwtools/mwmap/mapfile"
)

// alternative is one line shape in the classifier's priority list.
type alternative struct {
	kind  mapfile.Kind
	parse scan.Parser[mapfile.Line]
}

// shape lifts a sub-grammar producing a concrete line variant into a
// whole-line alternative.
func shape[T mapfile.Line](kind mapfile.Kind, p func(scan.Cursor) (T, scan.Cursor, *scan.Error)) alternative {
	return alternative{
		kind: kind,
		parse: scan.Complete(func(c scan.Cursor) (mapfile.Line, scan.Cursor, *scan.Error) {
			v, next, err := p(c)
			if err != nil {
				return nil, c, err
			}
			return v, next, nil
		}),
	}
}

func empty(c scan.Cursor) (mapfile.Empty, scan.Cursor, *scan.Error) {
	if err := c.End(); err != nil {
		return mapfile.Empty{}, c, err
	}
	return mapfile.Empty{}, c, nil
}

// alternatives is the classifier's priority order. The two memory entry
// shapes both yield KindMemoryEntry.
var alternatives = []alternative{
	shape(mapfile.KindEmpty, empty),
	shape(mapfile.KindTreeTitle, tree.Title),
	shape(mapfile.KindTreeNode, tree.Node),
	shape(mapfile.KindSectionTitle, section.Title),
	shape(mapfile.KindSectionColumns0, section.Columns0),
	shape(mapfile.KindSectionColumns1, section.Columns1),
	shape(mapfile.KindSectionSeparator, section.Separator),
	shape(mapfile.KindSectionSymbol, section.Symbol),
	shape(mapfile.KindSectionUnused, section.Unused),
	shape(mapfile.KindMemoryTitle, memory.Title),
	shape(mapfile.KindMemoryColumns0, memory.Columns0),
	shape(mapfile.KindMemoryColumns1, memory.Columns1),
	shape(mapfile.KindMemoryEntry, memory.Entry),
	shape(mapfile.KindMemoryEntry, memory.DebugEntry),
	shape(mapfile.KindLinkerTitle, linker.Title),
	shape(mapfile.KindLinkerEntry, linker.Entry),
}

// Parser classifies lines and logs what it does.
type Parser struct {
	types.Logger
}

// New returns a Parser. Pass nil for logger to disable logging.
func New(logger *slog.Logger) *Parser {
	return &Parser{Logger: types.Logger{L: logger}}
}

// TrimLine removes any trailing CR LF pairs.
func TrimLine(line string) string {
	for strings.HasSuffix(line, "\r\n") {
		line = line[:len(line)-2]
	}
	return line
}

// ParseLine classifies one line. Trailing CR LF pairs are ignored. The
// returned error is a *mapfile.ParseError with Line unset.
func (p *Parser) ParseLine(line string) (mapfile.Line, error) {
	line = TrimLine(line)
	c := scan.New(line)
	var furthest *scan.Error
	for _, alt := range alternatives {
		v, next, err := alt.parse(c)
		if err == nil {
			if p.TraceEnabled() {
				p.Trace("classified line",
					slog.String("kind", alt.kind.String()),
					slog.Int("len", int(next.SpanSince(c).Len())))
			}
			return v, nil
		}
		furthest = scan.Further(furthest, err)
	}
	perr := furthest.ParseError(line)
	p.Debug("unclassified line",
		slog.Int("offset", perr.Offset),
		slog.String("kind", perr.Kind.String()),
		slog.String("expected", perr.Expected))
	return nil, perr
}

// Matches returns the kind of every alternative that accepts the whole
// line, in priority order. A well-formed line matches exactly one.
func Matches(line string) []mapfile.Kind {
	c := scan.New(TrimLine(line))
	var kinds []mapfile.Kind
	for _, alt := range alternatives {
		if _, _, err := alt.parse(c); err == nil {
			kinds = append(kinds, alt.kind)
		}
	}
	return kinds
}

var quiet = New(nil)

// ParseLine classifies one line without logging.
func ParseLine(line string) (mapfile.Line, error) {
	return quiet.ParseLine(line)
}
