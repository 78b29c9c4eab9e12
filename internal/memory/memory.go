// Package memory parses the memory map table that follows the section
// layouts:
//
//	Memory map:
//	                   Starting Size     File
//	                   address           Offset
//	           .init  80003100 000023a8 000001c0
//	  .debug_srcinfo           000000 00000000
package memory

import (
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/mapfile"
)

// nameWidth is the right-justified width of the section name column.
const nameWidth = 17

// Title parses "Memory map:".
func Title(c scan.Cursor) (mapfile.MemoryTitle, scan.Cursor, *scan.Error) {
	next, err := c.Tag("Memory map:")
	if err != nil {
		return mapfile.MemoryTitle{}, c, err
	}
	return mapfile.MemoryTitle{}, next, nil
}

// Columns0 parses the first column header line.
func Columns0(c scan.Cursor) (mapfile.MemoryColumns0, scan.Cursor, *scan.Error) {
	next, err := c.Repeat(' ', 19)
	if err != nil {
		return mapfile.MemoryColumns0{}, c, err
	}
	if next, err = next.Tag("Starting Size"); err != nil {
		return mapfile.MemoryColumns0{}, c, err
	}
	if next, err = next.Repeat(' ', 5); err != nil {
		return mapfile.MemoryColumns0{}, c, err
	}
	if next, err = next.Tag("File"); err != nil {
		return mapfile.MemoryColumns0{}, c, err
	}
	return mapfile.MemoryColumns0{}, next, nil
}

// Columns1 parses the second column header line.
func Columns1(c scan.Cursor) (mapfile.MemoryColumns1, scan.Cursor, *scan.Error) {
	next, err := c.Repeat(' ', 19)
	if err != nil {
		return mapfile.MemoryColumns1{}, c, err
	}
	if next, err = next.Tag("address"); err != nil {
		return mapfile.MemoryColumns1{}, c, err
	}
	if next, err = next.Repeat(' ', 11); err != nil {
		return mapfile.MemoryColumns1{}, c, err
	}
	if next, err = next.Tag("Offset"); err != nil {
		return mapfile.MemoryColumns1{}, c, err
	}
	return mapfile.MemoryColumns1{}, next, nil
}

// Entry parses a loadable section row:
// "<name> <virtual> <size> <file offset>".
func Entry(c scan.Cursor) (mapfile.MemoryEntry, scan.Cursor, *scan.Error) {
	var e mapfile.MemoryEntry
	field, next, err := c.Padded(nameWidth)
	if err != nil {
		return e, c, err
	}
	name, _, err := field.SectionName()
	if err != nil {
		return e, c, err
	}
	if next, err = next.Repeat(' ', 2); err != nil {
		return e, c, err
	}
	virt, next, err := next.Hex(8)
	if err != nil {
		return e, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return e, c, err
	}
	if e.Size, next, err = next.Hex(8); err != nil {
		return e, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return e, c, err
	}
	if e.FileAddr, next, err = next.Hex(8); err != nil {
		return e, c, err
	}
	e.Data = mapfile.MainSection{Name: name, VirtAddr: virt}
	return e, next, nil
}

// DebugEntry parses a debug section row, which has no virtual address and a
// six digit size: "<name>           <size> <file offset>".
func DebugEntry(c scan.Cursor) (mapfile.MemoryEntry, scan.Cursor, *scan.Error) {
	var e mapfile.MemoryEntry
	field, next, err := c.Padded(nameWidth)
	if err != nil {
		return e, c, err
	}
	name, _, err := field.DebugSectionName()
	if err != nil {
		return e, c, err
	}
	if next, err = next.Repeat(' ', 11); err != nil {
		return e, c, err
	}
	if e.Size, next, err = next.Hex(6); err != nil {
		return e, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return e, c, err
	}
	if e.FileAddr, next, err = next.Hex(8); err != nil {
		return e, c, err
	}
	e.Data = mapfile.DebugSection{Name: name}
	return e, next, nil
}
