// Package graph holds the symbol reference graph recovered from the link
// tree of a map file.
package graph

import (
	"cmp"
	"slices"
)

// Symbol identifies a tree entry by the object file that defines it and its
// name. Linker generated symbols have no object.
type Symbol struct {
	Object string
	Name   string
}

func (s Symbol) String() string {
	if s.Object == "" {
		return s.Name
	}
	return s.Name + " (" + s.Object + ")"
}

// Compare orders symbols by name, then object.
func Compare(a, b Symbol) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Object, b.Object)
}

// Graph is a directed graph where an edge from a to b means a references b.
type Graph struct {
	nodes   map[Symbol]struct{}
	edges   map[Symbol][]Symbol
	reverse map[Symbol][]Symbol
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes:   make(map[Symbol]struct{}),
		edges:   make(map[Symbol][]Symbol),
		reverse: make(map[Symbol][]Symbol),
	}
}

// AddNode registers a symbol. Duplicate calls are no-ops.
func (g *Graph) AddNode(sym Symbol) {
	g.nodes[sym] = struct{}{}
}

// AddEdge records that from references to. Missing nodes are created
// implicitly. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to Symbol) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
	g.reverse[to] = append(g.reverse[to], from)
}

// References returns the symbols sym references, in insertion order.
func (g *Graph) References(sym Symbol) []Symbol {
	return g.edges[sym]
}

// ReferencedBy returns the symbols that reference sym, in insertion order.
func (g *Graph) ReferencedBy(sym Symbol) []Symbol {
	return g.reverse[sym]
}

// HasNode reports whether the symbol exists in the graph.
func (g *Graph) HasNode(sym Symbol) bool {
	_, ok := g.nodes[sym]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns every symbol, sorted.
func (g *Graph) Nodes() []Symbol {
	sorted := make([]Symbol, 0, len(g.nodes))
	for sym := range g.nodes {
		sorted = append(sorted, sym)
	}
	slices.SortFunc(sorted, Compare)
	return sorted
}

// Named returns every symbol with the given name, sorted by object.
func (g *Graph) Named(name string) []Symbol {
	var out []Symbol
	for sym := range g.nodes {
		if sym.Name == name {
			out = append(out, sym)
		}
	}
	slices.SortFunc(out, Compare)
	return out
}
