package scan

import (
	"github.com/mwtools/mwmap/mapfile"
)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// IsIdentByte reports whether b may appear in any identifier form.
func IsIdentByte(b byte) bool {
	switch b {
	case '<', '>', ',', '_', '$', '@', '.', '-':
		return true
	}
	return isAlnum(b)
}

func isCNameStart(b byte) bool { return isAlpha(b) || b == '_' }
func isCNameByte(b byte) bool  { return isAlnum(b) || b == '_' }

func isCppNameStart(b byte) bool { return isAlpha(b) || b == '_' || b == '@' }

func isCppNameByte(b byte) bool {
	switch b {
	case '_', '@', '$', '<', '>', ',', '-':
		return true
	}
	return isAlnum(b)
}

// CName consumes a C identifier.
func (c Cursor) CName() (string, Cursor, *Error) {
	if b, ok := c.peek(); !ok || !isCNameStart(b) {
		return "", c, c.Fail(mapfile.ErrNoMatch, "C identifier")
	}
	next := c.advance(1)
	next = next.advance(next.count(isCNameByte))
	return next.Since(c), next, nil
}

// CppName consumes a C++ mangled name.
func (c Cursor) CppName() (string, Cursor, *Error) {
	if b, ok := c.peek(); !ok || !isCppNameStart(b) {
		return "", c, c.Fail(mapfile.ErrNoMatch, "mangled name")
	}
	next := c.advance(1)
	next = next.advance(next.count(isCppNameByte))
	return next.Since(c), next, nil
}

// isFilenameByte excludes control characters and the characters Windows
// reserves in file names.
func isFilenameByte(b byte) bool {
	if b < 0x20 {
		return false
	}
	switch b {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return false
	}
	return true
}

// Filename consumes a file name with at least one extension: a stem without
// dots, a dot, then everything up to the next space.
func (c Cursor) Filename() (string, Cursor, *Error) {
	_, next, err := c.TakeWhile1(func(b byte) bool {
		return isFilenameByte(b) && b != '.'
	}, "file name")
	if err != nil {
		return "", c, err
	}
	if next, err = next.Char('.'); err != nil {
		return "", c, err
	}
	if _, next, err = next.TakeWhile1(func(b byte) bool {
		return isFilenameByte(b) && b != ' '
	}, "file extension"); err != nil {
		return "", c, err
	}
	return next.Since(c), next, nil
}

// Origin consumes "<object> [<source>[ (asm)]]". The space after the object
// file is always present, even when no source file follows.
func (c Cursor) Origin() (mapfile.Origin, Cursor, *Error) {
	obj, next, err := c.Filename()
	if err != nil {
		return mapfile.Origin{}, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return mapfile.Origin{}, c, err
	}
	origin := mapfile.Origin{Object: obj}
	src, after, err := next.Filename()
	if err != nil {
		return origin, next, nil
	}
	origin.Source = src
	if asm, err := after.Tag(" (asm)"); err == nil {
		origin.Asm = true
		after = asm
	}
	return origin, after, nil
}
