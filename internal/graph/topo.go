package graph

import "slices"

// TopologicalOrder returns symbols ordered so that referencing symbols come
// before the symbols they reference (Kahn's algorithm). Symbols involved in
// or reachable only through cycles are returned separately, sorted.
func (g *Graph) TopologicalOrder() (order []Symbol, cyclic []Symbol) {
	inDegree := make(map[Symbol]int)
	for _, refs := range g.edges {
		for _, ref := range refs {
			inDegree[ref]++
		}
	}

	var queue []Symbol
	for _, sym := range g.Nodes() {
		if inDegree[sym] == 0 {
			queue = append(queue, sym)
		}
	}

	for len(queue) > 0 {
		sym := queue[0]
		queue = queue[1:]
		order = append(order, sym)

		for _, ref := range g.edges[sym] {
			inDegree[ref]--
			if inDegree[ref] == 0 {
				queue = append(queue, ref)
			}
		}
	}

	for sym, degree := range inDegree {
		if degree > 0 {
			cyclic = append(cyclic, sym)
		}
	}
	slices.SortFunc(cyclic, Compare)

	return order, cyclic
}

// LinkOrder returns symbols with referenced symbols before the symbols that
// reference them, the reverse of TopologicalOrder.
func (g *Graph) LinkOrder() (order []Symbol, cyclic []Symbol) {
	order, cyclic = g.TopologicalOrder()
	slices.Reverse(order)
	return order, cyclic
}
