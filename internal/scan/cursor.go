// Package scan provides the lexical primitives shared by the map file
// grammars: a position-tracking cursor, fixed-width numeric and padded
// fields, identifier and filename tokens, origins and section names.
//
// A Cursor is a value. Every primitive returns the advanced cursor and leaves
// the receiver untouched, so callers backtrack by reusing the old value.
package scan

import (
	"fmt"
	"strings"

	"github.com/mwtools/mwmap/internal/types"
	"github.com/mwtools/mwmap/mapfile"
)

// Cursor is a read position within a line. A cursor produced by Field is
// limited to the field's extent, but positions stay relative to the line.
type Cursor struct {
	src string
	pos int
}

// New returns a cursor at the start of line.
func New(line string) Cursor {
	return Cursor{src: line}
}

// Pos returns the byte offset of the cursor within the line.
func (c Cursor) Pos() int {
	return c.pos
}

// AtEnd reports whether the cursor has consumed its whole input.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string {
	return c.src[c.pos:]
}

// Since returns the text consumed between start and c.
func (c Cursor) Since(start Cursor) string {
	return c.src[start.pos:c.pos]
}

// SpanSince returns the span consumed between start and c.
func (c Cursor) SpanSince(start Cursor) types.Span {
	return types.NewSpan(types.ByteOffset(start.pos), types.ByteOffset(c.pos))
}

// Fail returns an error positioned at the cursor.
func (c Cursor) Fail(kind mapfile.ErrorKind, expected string) *Error {
	return &Error{Pos: c.pos, Kind: kind, Expected: expected}
}

// End fails unless the cursor has consumed its whole input.
func (c Cursor) End() *Error {
	if c.AtEnd() {
		return nil
	}
	return c.Fail(mapfile.ErrNoMatch, "end of line")
}

func (c Cursor) peek() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

func (c Cursor) advance(n int) Cursor {
	c.pos += n
	return c
}

// HasPrefix reports whether the unconsumed input starts with lit.
func (c Cursor) HasPrefix(lit string) bool {
	return strings.HasPrefix(c.src[c.pos:], lit)
}

// Tag consumes the literal lit.
func (c Cursor) Tag(lit string) (Cursor, *Error) {
	if !c.HasPrefix(lit) {
		return c, c.Fail(mapfile.ErrNoMatch, fmt.Sprintf("%q", lit))
	}
	return c.advance(len(lit)), nil
}

// Char consumes the single byte b.
func (c Cursor) Char(b byte) (Cursor, *Error) {
	if got, ok := c.peek(); !ok || got != b {
		return c, c.Fail(mapfile.ErrNoMatch, fmt.Sprintf("%q", b))
	}
	return c.advance(1), nil
}

// OptChar consumes b if it is next.
func (c Cursor) OptChar(b byte) Cursor {
	if got, ok := c.peek(); ok && got == b {
		return c.advance(1)
	}
	return c
}

// Repeat consumes exactly n copies of b.
func (c Cursor) Repeat(b byte, n int) (Cursor, *Error) {
	for i := 0; i < n; i++ {
		got, ok := c.peek()
		if !ok || got != b {
			return c, c.Fail(mapfile.ErrNoMatch, fmt.Sprintf("%d of %q", n, b))
		}
		c = c.advance(1)
	}
	return c, nil
}

// Spaces consumes a possibly empty run of spaces.
func (c Cursor) Spaces() Cursor {
	return c.advance(c.count(func(b byte) bool { return b == ' ' }))
}

// TakeWhile1 consumes a non-empty run of bytes satisfying pred.
func (c Cursor) TakeWhile1(pred func(byte) bool, expected string) (string, Cursor, *Error) {
	n := c.count(pred)
	if n == 0 {
		return "", c, c.Fail(mapfile.ErrNoMatch, expected)
	}
	next := c.advance(n)
	return next.Since(c), next, nil
}

// Take splits off the next n bytes as a field cursor. The field cursor is
// limited to those bytes; rest continues after them.
func (c Cursor) Take(n int) (field, rest Cursor, err *Error) {
	if len(c.src)-c.pos < n {
		return c, c, c.Fail(mapfile.ErrNoMatch, fmt.Sprintf("%d more bytes", n))
	}
	field = Cursor{src: c.src[:c.pos+n], pos: c.pos}
	return field, c.advance(n), nil
}

func (c Cursor) count(pred func(byte) bool) int {
	n := 0
	for i := c.pos; i < len(c.src) && pred(c.src[i]); i++ {
		n++
	}
	return n
}
