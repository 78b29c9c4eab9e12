package scan

import (
	"fmt"
	"strconv"

	"github.com/mwtools/mwmap/mapfile"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Hex consumes exactly n hexadecimal digits. Further hex digits are left
// for the caller; fewer than n is an error.
func (c Cursor) Hex(n int) (uint32, Cursor, *Error) {
	end := c.pos
	for end < len(c.src) && end-c.pos < n && isHexDigit(c.src[end]) {
		end++
	}
	if end-c.pos < n {
		return 0, c, c.Fail(mapfile.ErrNumber, fmt.Sprintf("%d hex digits", n))
	}
	v, err := strconv.ParseUint(c.src[c.pos:end], 16, 32)
	if err != nil {
		return 0, c, c.Fail(mapfile.ErrNumber, fmt.Sprintf("%d hex digits", n))
	}
	return uint32(v), c.advance(n), nil
}

// ParseHex parses s as exactly n hexadecimal digits.
func ParseHex(s string, n int) (uint32, error) {
	v, c, err := New(s).Hex(n)
	if err != nil {
		return 0, err
	}
	if err := c.End(); err != nil {
		err.Kind = mapfile.ErrNumber
		err.Expected = fmt.Sprintf("%d hex digits", n)
		return 0, err
	}
	return v, nil
}

// Digits consumes a non-empty run of decimal digits.
func (c Cursor) Digits() (string, Cursor, *Error) {
	n := c.count(isDigit)
	if n == 0 {
		return "", c, c.Fail(mapfile.ErrNumber, "decimal digits")
	}
	next := c.advance(n)
	return next.Since(c), next, nil
}

func (c Cursor) decimal(bits int) (uint64, Cursor, *Error) {
	s, next, err := c.Digits()
	if err != nil {
		return 0, c, err
	}
	v, perr := strconv.ParseUint(s, 10, bits)
	if perr != nil {
		return 0, c, c.Fail(mapfile.ErrNumber, fmt.Sprintf("decimal fitting %d bits", bits))
	}
	return v, next, nil
}

// Uint32 consumes a decimal number that fits in 32 bits.
func (c Cursor) Uint32() (uint32, Cursor, *Error) {
	v, next, err := c.decimal(32)
	return uint32(v), next, err
}

// Uint8 consumes a decimal number that fits in 8 bits.
func (c Cursor) Uint8() (uint8, Cursor, *Error) {
	v, next, err := c.decimal(8)
	return uint8(v), next, err
}

// Padded consumes a right-justified field of the given width: a run of
// leading spaces followed by the remaining width-pad bytes, which are
// returned as a field cursor. It fails when the padding alone is wider than
// the field.
func (c Cursor) Padded(width int) (field, rest Cursor, err *Error) {
	body := c.Spaces()
	pad := body.pos - c.pos
	if pad > width {
		return c, c, body.Fail(mapfile.ErrPadding, fmt.Sprintf("field of width %d", width))
	}
	return body.Take(width - pad)
}
