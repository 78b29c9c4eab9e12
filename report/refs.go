package report

import (
	"github.com/mwtools/mwmap/internal/graph"
	"github.com/mwtools/mwmap/mapfile"
)

// Ref names a link tree entry: the object that defines it and its name.
// Linker generated symbols have an empty Object.
type Ref = graph.Symbol

// Duplicate is an unreferenced duplicate definition reported in the link
// tree. Spec is the zero value when the map omits the specifier line.
type Duplicate struct {
	Name    string
	Depth   uint32
	Spec    mapfile.Specifier
	HasSpec bool
}

// References is the reference graph recovered from the link tree.
type References struct {
	Roots      []string
	Duplicates []Duplicate

	g *graph.Graph
}

// BuildReferences reads the link tree of a map file. A node at depth d is
// referenced by the nearest preceding node at depth d-1. Nil lines are
// ignored.
func BuildReferences(lines []mapfile.Line) *References {
	r := &References{g: graph.New()}

	var path []Ref
	var pending *Duplicate
	flush := func() {
		if pending != nil {
			r.Duplicates = append(r.Duplicates, *pending)
			pending = nil
		}
	}

	for _, line := range lines {
		switch l := line.(type) {
		case mapfile.TreeTitle:
			flush()
			r.Roots = append(r.Roots, l.Root)
			path = path[:0]
			continue
		case mapfile.TreeNode:
		default:
			if line != nil {
				flush()
				path = path[:0]
			}
			continue
		}

		node := line.(mapfile.TreeNode)
		var sym Ref
		switch d := node.Data.(type) {
		case mapfile.ObjectRef:
			flush()
			sym = Ref{Object: d.Spec.Origin.Object, Name: d.ID.String()}
		case mapfile.LinkerRef:
			flush()
			sym = Ref{Name: d.Name}
		case mapfile.DuplicateIdent:
			flush()
			pending = &Duplicate{Name: d.ID.String(), Depth: node.Depth}
			continue
		case mapfile.DuplicateSpec:
			if pending != nil && pending.Depth == node.Depth {
				pending.Spec = d.Spec
				pending.HasSpec = true
			}
			flush()
			continue
		default:
			continue
		}

		depth := int(node.Depth)
		if depth < 1 {
			depth = 1
		}
		parent := min(depth-1, len(path))
		if parent > 0 {
			r.g.AddEdge(path[parent-1], sym)
		} else {
			r.g.AddNode(sym)
		}
		path = append(path[:parent], sym)
	}
	flush()
	return r
}

// Len returns the number of distinct symbols in the tree.
func (r *References) Len() int {
	return r.g.Len()
}

// Symbols returns every symbol in the tree, sorted by name then object.
func (r *References) Symbols() []Ref {
	return r.g.Nodes()
}

// Lookup returns the symbols with the given name, sorted by object.
func (r *References) Lookup(name string) []Ref {
	return r.g.Named(name)
}

// Callees returns the symbols ref references, in tree order.
func (r *References) Callees(ref Ref) []Ref {
	return r.g.References(ref)
}

// Callers returns the symbols that reference ref, in tree order.
func (r *References) Callers(ref Ref) []Ref {
	return r.g.ReferencedBy(ref)
}

// Cycles returns the groups of mutually referencing symbols.
func (r *References) Cycles() [][]Ref {
	return r.g.FindCycles()
}

// Order returns the symbols with every symbol after the symbols it
// references. Symbols caught in cycles are returned separately.
func (r *References) Order() (order []Ref, cyclic []Ref) {
	return r.g.LinkOrder()
}
