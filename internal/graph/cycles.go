package graph

import "slices"

// FindCycles returns all strongly connected components with more than one
// node, or a single node that references itself, found via Tarjan's
// algorithm. Each cycle is sorted and the result is ordered by first member.
func (g *Graph) FindCycles() [][]Symbol {
	var (
		index    int
		stack    []Symbol
		onStack  = make(map[Symbol]bool)
		indices  = make(map[Symbol]int)
		lowlinks = make(map[Symbol]int)
		sccs     [][]Symbol
	)

	var strongConnect func(sym Symbol)
	strongConnect = func(sym Symbol) {
		indices[sym] = index
		lowlinks[sym] = index
		index++
		stack = append(stack, sym)
		onStack[sym] = true

		for _, ref := range g.edges[sym] {
			if _, visited := indices[ref]; !visited {
				strongConnect(ref)
				lowlinks[sym] = min(lowlinks[sym], lowlinks[ref])
			} else if onStack[ref] {
				lowlinks[sym] = min(lowlinks[sym], indices[ref])
			}
		}

		if lowlinks[sym] != indices[sym] {
			return
		}
		var scc []Symbol
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == sym {
				break
			}
		}
		if len(scc) > 1 || slices.Contains(g.edges[scc[0]], scc[0]) {
			slices.SortFunc(scc, Compare)
			sccs = append(sccs, scc)
		}
	}

	for _, sym := range g.Nodes() {
		if _, visited := indices[sym]; !visited {
			strongConnect(sym)
		}
	}

	slices.SortFunc(sccs, func(a, b []Symbol) int {
		return Compare(a[0], b[0])
	})
	return sccs
}

// HasCycles reports whether the graph contains any cycles.
func (g *Graph) HasCycles() bool {
	return len(g.FindCycles()) > 0
}
