// Package ident recognizes the naming forms a symbol takes in a map file.
package ident

import (
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/mapfile"
)

// forms is the priority order of identifier forms. Each form must consume
// the whole identifier run. Plain names come before mangled names because
// every C identifier is also a valid mangled name. Mangled names accept a
// leading '@', so "@stringBase0" classifies as mangled and stringBase only
// runs for runs the mangled form rejects.
var forms = []scan.Parser[mapfile.Identifier]{
	scan.Complete(localLabel),
	scan.Complete(relative),
	scan.Complete(sectionSymbol),
	scan.Complete(section),
	scan.Complete(named),
	scan.Complete(mangled),
	scan.Complete(stringBase),
}

// Parse consumes the maximal run of identifier characters at c and
// classifies it. The returned cursor points just past the run.
func Parse(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	run, next, err := c.TakeWhile1(scan.IsIdentByte, "identifier")
	if err != nil {
		return nil, c, err
	}
	field, _, _ := c.Take(len(run))
	id, _, err := scan.Alt(field, forms...)
	if err != nil {
		return nil, c, err
	}
	return id, next, nil
}

// ParseString classifies s, which must be a single identifier.
func ParseString(s string) (mapfile.Identifier, error) {
	id, next, err := Parse(scan.New(s))
	if err != nil {
		return nil, err
	}
	if err := next.End(); err != nil {
		return nil, err
	}
	return id, nil
}

func localLabel(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	next, err := c.Tag(".L")
	if err != nil {
		return nil, c, err
	}
	name, next, err := next.CName()
	if err != nil {
		return nil, c, err
	}
	return mapfile.LocalLabelIdent{Name: name}, next, nil
}

func relative(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	next, err := c.Char('@')
	if err != nil {
		return nil, c, err
	}
	idx, next, err := next.Uint32()
	if err != nil {
		return nil, c, err
	}
	return mapfile.RelativeIdent{Index: idx}, next, nil
}

// sectionSymbol matches "..<section>.<index>", e.g. "...data.0".
func sectionSymbol(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	next, err := c.Tag("..")
	if err != nil {
		return nil, c, err
	}
	name, next, err := next.SectionName()
	if err != nil {
		return nil, c, err
	}
	if next, err = next.Char('.'); err != nil {
		return nil, c, err
	}
	idx, next, err := next.Uint8()
	if err != nil {
		return nil, c, err
	}
	return mapfile.SectionIdent{Name: name, Index: idx, HasIndex: true}, next, nil
}

func section(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	name, next, err := c.SectionName()
	if err != nil {
		return nil, c, err
	}
	return mapfile.SectionIdent{Name: name}, next, nil
}

// named matches a C identifier with an optional "$<instance>" suffix. A
// malformed suffix is left unconsumed.
func named(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	name, next, err := c.CName()
	if err != nil {
		return nil, c, err
	}
	id := mapfile.NamedIdent{Name: name}
	if suffix, err := next.Char('$'); err == nil {
		if instance, after, err := suffix.Uint32(); err == nil {
			id.Instance, id.HasInstance = instance, true
			next = after
		}
	}
	return id, next, nil
}

func stringBase(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	next, err := c.Tag("@stringBase")
	if err != nil {
		return nil, c, err
	}
	idx, next, err := next.Uint8()
	if err != nil {
		return nil, c, err
	}
	return mapfile.StringBaseIdent{Index: idx}, next, nil
}

func mangled(c scan.Cursor) (mapfile.Identifier, scan.Cursor, *scan.Error) {
	name, next, err := c.CppName()
	if err != nil {
		return nil, c, err
	}
	return mapfile.MangledIdent{Name: name}, next, nil
}
