// Package section parses the per-section symbol tables of a map file:
//
//	.init section layout
//	  Starting        Virtual
//	  address  Size   address
//	  -----------------------
//	  00000000 0000f0 80003100  4 __start 	__start.o
//	  00000250 000000 80003350 __fill_mem (entry of memset) 	__mem.o
//	  UNUSED   000004 ........ ........    OSVReport os.a OSError.o
//
// Layouts that carry a file offset column add "  File" and "  offset" to the
// headers and an extra address to each row.
package section

import (
	"github.com/mwtools/mwmap/internal/ident"
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/mapfile"
)

// minSeparator is the dash count of the layout without file offsets.
const minSeparator = 23

// Title parses "<section> section layout".
func Title(c scan.Cursor) (mapfile.SectionTitle, scan.Cursor, *scan.Error) {
	name, next, err := c.SectionName()
	if err != nil {
		return mapfile.SectionTitle{}, c, err
	}
	if next, err = next.Tag(" section layout"); err != nil {
		return mapfile.SectionTitle{}, c, err
	}
	return mapfile.SectionTitle{Name: name}, next, nil
}

// Columns0 parses the first column header line.
func Columns0(c scan.Cursor) (mapfile.SectionColumns0, scan.Cursor, *scan.Error) {
	next, err := c.Tag("  Starting        Virtual")
	if err != nil {
		return mapfile.SectionColumns0{}, c, err
	}
	file, next := optTag(next, "  File")
	return mapfile.SectionColumns0{File: file}, next, nil
}

// Columns1 parses the second column header line.
func Columns1(c scan.Cursor) (mapfile.SectionColumns1, scan.Cursor, *scan.Error) {
	next, err := c.Tag("  address  Size   address")
	if err != nil {
		return mapfile.SectionColumns1{}, c, err
	}
	file, next := optTag(next, "  offset")
	return mapfile.SectionColumns1{File: file}, next, nil
}

func optTag(c scan.Cursor, lit string) (bool, scan.Cursor) {
	if next, err := c.Tag(lit); err == nil {
		return true, next
	}
	return false, c
}

// Separator parses the dashed rule under the column headers.
func Separator(c scan.Cursor) (mapfile.SectionSeparator, scan.Cursor, *scan.Error) {
	next, err := c.Repeat(' ', 2)
	if err != nil {
		return mapfile.SectionSeparator{}, c, err
	}
	dashes, after, err := next.TakeWhile1(func(b byte) bool { return b == '-' }, "dashes")
	if err != nil {
		return mapfile.SectionSeparator{}, c, err
	}
	if len(dashes) < minSeparator {
		return mapfile.SectionSeparator{}, c, after.Fail(mapfile.ErrNoMatch, "at least 23 dashes")
	}
	return mapfile.SectionSeparator{Width: len(dashes)}, after, nil
}

// row is the part of a symbol row between the section offset and the tab.
type row struct {
	virtAddr    uint32
	fileAddr    uint32
	hasFileAddr bool
	data        mapfile.SymbolData
	id          mapfile.Identifier
}

var rowForms = []scan.Parser[row]{
	parent,
	child,
}

// Symbol parses a symbol row.
func Symbol(c scan.Cursor) (mapfile.SectionSymbol, scan.Cursor, *scan.Error) {
	var sym mapfile.SectionSymbol
	next, err := c.Repeat(' ', 2)
	if err != nil {
		return sym, c, err
	}
	if sym.Addr, next, err = next.Hex(8); err != nil {
		return sym, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return sym, c, err
	}
	r, next, err := scan.Alt(next, rowForms...)
	if err != nil {
		return sym, c, err
	}
	if tab, terr := next.Tag(" \t"); terr == nil {
		next = tab
	} else if next, err = next.Char('\t'); err != nil {
		return sym, c, scan.Further(terr, err)
	}
	if sym.Origin, next, err = next.Origin(); err != nil {
		return sym, c, err
	}
	sym.VirtAddr = r.virtAddr
	sym.FileAddr, sym.HasFileAddr = r.fileAddr, r.hasFileAddr
	sym.Data = r.data
	sym.ID = r.id
	return sym, next, nil
}

// addrs parses "<virtual> [<file> ]".
func addrs(c scan.Cursor) (row, scan.Cursor, *scan.Error) {
	var r row
	var err *scan.Error
	next := c
	if r.virtAddr, next, err = next.Hex(8); err != nil {
		return r, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return r, c, err
	}
	if file, after, err := next.Hex(8); err == nil {
		if after, err = after.Char(' '); err == nil {
			r.fileAddr, r.hasFileAddr = file, true
			next = after
		}
	}
	return r, next, nil
}

// parent parses "<size> <virtual> [<file> ]<align> <identifier>".
func parent(c scan.Cursor) (row, scan.Cursor, *scan.Error) {
	size, next, err := c.Hex(6)
	if err != nil {
		return row{}, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return row{}, c, err
	}
	r, next, err := addrs(next)
	if err != nil {
		return row{}, c, err
	}
	align, next, err := alignment(next)
	if err != nil {
		return row{}, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return row{}, c, err
	}
	if r.id, next, err = ident.Parse(next); err != nil {
		return row{}, c, err
	}
	r.data = mapfile.Parent{Size: size, Align: align}
	return r, next, nil
}

// alignment parses the right-justified two column decimal alignment.
func alignment(c scan.Cursor) (uint8, scan.Cursor, *scan.Error) {
	field, next, err := c.Padded(2)
	if err != nil {
		return 0, c, err
	}
	align, _, err := field.Uint8()
	if err != nil {
		return 0, c, err
	}
	return align, next, nil
}

// child parses "000000 <virtual> [<file> ]<identifier> (entry of <parent>)".
func child(c scan.Cursor) (row, scan.Cursor, *scan.Error) {
	next, err := c.Repeat('0', 6)
	if err != nil {
		return row{}, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return row{}, c, err
	}
	r, next, err := addrs(next)
	if err != nil {
		return row{}, c, err
	}
	if r.id, next, err = ident.Parse(next); err != nil {
		return row{}, c, err
	}
	if next, err = next.Tag(" (entry of "); err != nil {
		return row{}, c, err
	}
	owner, next, err := ident.Parse(next)
	if err != nil {
		return row{}, c, err
	}
	if next, err = next.Char(')'); err != nil {
		return row{}, c, err
	}
	r.data = mapfile.Child{Parent: owner}
	return r, next, nil
}

// Unused parses a dead-stripped symbol row:
// "  UNUSED   <size> ........ [........ ]   <identifier> <origin>[ ]".
func Unused(c scan.Cursor) (mapfile.SectionUnused, scan.Cursor, *scan.Error) {
	var u mapfile.SectionUnused
	next, err := c.Tag("  UNUSED   ")
	if err != nil {
		return u, c, err
	}
	if u.Size, next, err = next.Hex(6); err != nil {
		return u, c, err
	}
	if next, err = next.Tag(" ........ "); err != nil {
		return u, c, err
	}
	_, next = optTag(next, "........ ")
	if next, err = next.Repeat(' ', 3); err != nil {
		return u, c, err
	}
	if u.ID, next, err = ident.Parse(next); err != nil {
		return u, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return u, c, err
	}
	if u.Origin, next, err = next.Origin(); err != nil {
		return u, c, err
	}
	return u, next.OptChar(' '), nil
}
