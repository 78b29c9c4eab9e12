// Package linker parses the table of linker generated symbols at the end of
// a map file.
package linker

import (
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/mapfile"
)

const nameWidth = 25

// Title parses "Linker generated symbols:".
func Title(c scan.Cursor) (mapfile.LinkerTitle, scan.Cursor, *scan.Error) {
	next, err := c.Tag("Linker generated symbols:")
	if err != nil {
		return mapfile.LinkerTitle{}, c, err
	}
	return mapfile.LinkerTitle{}, next, nil
}

// Entry parses "<name> <virtual address>" with the name right-justified in
// a 25 column field.
func Entry(c scan.Cursor) (mapfile.LinkerEntry, scan.Cursor, *scan.Error) {
	field, next, err := c.Padded(nameWidth)
	if err != nil {
		return mapfile.LinkerEntry{}, c, err
	}
	name, _, err := field.CName()
	if err != nil {
		return mapfile.LinkerEntry{}, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return mapfile.LinkerEntry{}, c, err
	}
	addr, next, err := next.Hex(8)
	if err != nil {
		return mapfile.LinkerEntry{}, c, err
	}
	return mapfile.LinkerEntry{Name: name, VirtAddr: addr}, next, nil
}
