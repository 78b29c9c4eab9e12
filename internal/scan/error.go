package scan

import (
	"fmt"

	"github.com/mwtools/mwmap/mapfile"
)

// Error is a failure of one grammar alternative at a position in the line.
type Error struct {
	Pos      int
	Kind     mapfile.ErrorKind
	Expected string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s: expected %s", e.Pos, e.Kind, e.Expected)
}

// Further returns whichever failure reached further into the line. On a tie
// the earlier failure wins unless the later one has a more specific kind:
// padding over number over plain mismatch.
func Further(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Pos > a.Pos:
		return b
	case b.Pos == a.Pos && b.Kind > a.Kind:
		return b
	default:
		return a
	}
}

// ParseError converts the failure into the public error for input.
func (e *Error) ParseError(input string) *mapfile.ParseError {
	return &mapfile.ParseError{
		Offset:   e.Pos,
		Kind:     e.Kind,
		Expected: e.Expected,
		Input:    input,
	}
}

// Parser is one grammar alternative.
type Parser[T any] func(Cursor) (T, Cursor, *Error)

// Alt tries each parser in order from c and returns the first success. When
// all fail it returns the furthest failure.
func Alt[T any](c Cursor, parsers ...Parser[T]) (T, Cursor, *Error) {
	var furthest *Error
	for _, p := range parsers {
		v, next, err := p(c)
		if err == nil {
			return v, next, nil
		}
		furthest = Further(furthest, err)
	}
	var zero T
	return zero, c, furthest
}

// Complete wraps p so that it only succeeds when it consumes all of its
// input.
func Complete[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, *Error) {
		v, next, err := p(c)
		if err != nil {
			return v, c, err
		}
		if err := next.End(); err != nil {
			var zero T
			return zero, c, err
		}
		return v, next, nil
	}
}
