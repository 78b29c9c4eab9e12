package mapfile

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors wrapped by ParseError, one per ErrorKind.
var (
	ErrNoAlternative   = errors.New("no alternative matched")
	ErrBadNumber       = errors.New("malformed numeric field")
	ErrPaddingTooLarge = errors.New("padding length is too large")
)

// ErrorKind classifies why a line failed to parse. Kinds are ordered from
// least to most specific.
type ErrorKind uint8

const (
	// ErrNoMatch means the text did not fit the expected shape.
	ErrNoMatch ErrorKind = iota
	// ErrNumber means a hex or decimal field had the wrong digits or overflowed.
	ErrNumber
	// ErrPadding means a right-justified field had more padding than its width.
	ErrPadding
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoMatch:
		return "no-match"
	case ErrNumber:
		return "number"
	case ErrPadding:
		return "padding"
	default:
		return "unknown"
	}
}

// Sentinel returns the sentinel error for the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case ErrNumber:
		return ErrBadNumber
	case ErrPadding:
		return ErrPaddingTooLarge
	default:
		return ErrNoAlternative
	}
}

// ParseError reports a line no alternative could classify. Offset is the
// byte offset of the furthest point any alternative reached.
type ParseError struct {
	Line     int // 1-based line number, 0 if not known
	Offset   int
	Kind     ErrorKind
	Expected string
	Input    string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	fmt.Fprintf(&b, "offset %d: %s", e.Offset, e.Kind.Sentinel())
	if e.Expected != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
	}
	return b.String()
}

// Unwrap returns the sentinel error for the failure kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.Sentinel()
}

// Column returns the 1-based column of the failure.
func (e *ParseError) Column() int {
	return e.Offset + 1
}
