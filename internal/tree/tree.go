// Package tree parses the symbol reference tree at the top of a map file:
//
//	Link map of __start
//	  1] __start (func,weak) found in os.a __start.c
//	   2] _stack_addr found as linker generated symbol
//	                16] >>> UNREFERENCED DUPLICATE __dt__15CMemoryInStreamFv
//	                16] >>> (func,weak) found in Kyoto_CW1.a CMemoryInStream.cpp
package tree

import (
	"github.com/mwtools/mwmap/internal/ident"
	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/mapfile"
)

// Title parses "Link map of <root>".
func Title(c scan.Cursor) (mapfile.TreeTitle, scan.Cursor, *scan.Error) {
	next, err := c.Tag("Link map of ")
	if err != nil {
		return mapfile.TreeTitle{}, c, err
	}
	root, next, err := next.CName()
	if err != nil {
		return mapfile.TreeTitle{}, c, err
	}
	return mapfile.TreeTitle{Root: root}, next, nil
}

var nodeForms = []scan.Parser[mapfile.NodeData]{
	linkerData,
	objectData,
	duplicate,
}

// Node parses one reference tree entry. The first node form that matches
// wins even if the rest of the line is left over.
func Node(c scan.Cursor) (mapfile.TreeNode, scan.Cursor, *scan.Error) {
	depth, next, err := Depth(c)
	if err != nil {
		return mapfile.TreeNode{}, c, err
	}
	data, next, err := scan.Alt(next, nodeForms...)
	if err != nil {
		return mapfile.TreeNode{}, c, err
	}
	return mapfile.TreeNode{Depth: depth, Data: data}, next, nil
}

// Depth parses the indentation and "<depth>] " prefix of a node.
func Depth(c scan.Cursor) (uint32, scan.Cursor, *scan.Error) {
	depth, next, err := c.Spaces().Uint32()
	if err != nil {
		return 0, c, err
	}
	if next, err = next.Tag("] "); err != nil {
		return 0, c, err
	}
	return depth, next, nil
}

func linkerData(c scan.Cursor) (mapfile.NodeData, scan.Cursor, *scan.Error) {
	name, next, err := c.CName()
	if err != nil {
		return nil, c, err
	}
	if next, err = next.Tag(" found as linker generated symbol"); err != nil {
		return nil, c, err
	}
	return mapfile.LinkerRef{Name: name}, next, nil
}

func objectData(c scan.Cursor) (mapfile.NodeData, scan.Cursor, *scan.Error) {
	id, next, err := ident.Parse(c)
	if err != nil {
		return nil, c, err
	}
	if next, err = next.Char(' '); err != nil {
		return nil, c, err
	}
	spec, next, err := Specifier(next)
	if err != nil {
		return nil, c, err
	}
	return mapfile.ObjectRef{ID: id, Spec: spec}, next, nil
}

func duplicate(c scan.Cursor) (mapfile.NodeData, scan.Cursor, *scan.Error) {
	body, err := c.Tag(">>> ")
	if err != nil {
		return nil, c, err
	}
	if next, err := body.Tag("UNREFERENCED DUPLICATE "); err == nil {
		id, next, err := ident.Parse(next)
		if err != nil {
			return nil, c, err
		}
		return mapfile.DuplicateIdent{ID: id}, next, nil
	}
	spec, next, err := Specifier(body)
	if err != nil {
		return nil, c, err
	}
	return mapfile.DuplicateSpec{Spec: spec}, next, nil
}

// Specifier parses "(<type>,<scope>) found in <origin>".
func Specifier(c scan.Cursor) (mapfile.Specifier, scan.Cursor, *scan.Error) {
	var spec mapfile.Specifier
	next, err := c.Char('(')
	if err != nil {
		return spec, c, err
	}
	if spec.Type, next, err = symbolType(next); err != nil {
		return spec, c, err
	}
	if next, err = next.Char(','); err != nil {
		return spec, c, err
	}
	if spec.Scope, next, err = scope(next); err != nil {
		return spec, c, err
	}
	if next, err = next.Tag(") found in "); err != nil {
		return spec, c, err
	}
	if spec.Origin, next, err = next.Origin(); err != nil {
		return spec, c, err
	}
	return spec, next, nil
}

var symbolTypes = []struct {
	word string
	typ  mapfile.SymbolType
}{
	{"section", mapfile.TypeSection},
	{"object", mapfile.TypeObject},
	{"func", mapfile.TypeFunction},
	{"notype", mapfile.TypeNone},
}

func symbolType(c scan.Cursor) (mapfile.SymbolType, scan.Cursor, *scan.Error) {
	for _, t := range symbolTypes {
		if next, err := c.Tag(t.word); err == nil {
			return t.typ, next, nil
		}
	}
	return 0, c, c.Fail(mapfile.ErrNoMatch, "symbol type")
}

var scopes = []struct {
	word  string
	scope mapfile.Scope
}{
	{"global", mapfile.ScopeGlobal},
	{"local", mapfile.ScopeLocal},
	{"weak", mapfile.ScopeWeak},
}

func scope(c scan.Cursor) (mapfile.Scope, scan.Cursor, *scan.Error) {
	for _, s := range scopes {
		if next, err := c.Tag(s.word); err == nil {
			return s.scope, next, nil
		}
	}
	return 0, c, c.Fail(mapfile.ErrNoMatch, "symbol scope")
}
