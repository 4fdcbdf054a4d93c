// File: edges.go
// Role: Edge lifecycle and edge-level state queries.
//
// Both endpoint lists are always updated inside the same call, which is
// what keeps the adjacency-consistency invariant intact between any two
// public operations.
package dirgraph

// AddEdge inserts the directed edge (from, to, weight).
//
// Missing endpoints are registered automatically. Returns false (no-op)
// if the exact triple already exists; parallel edges with a different
// weight are accepted as distinct.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, weight float64) bool {
	e := Edge[N]{From: from, To: to, Weight: weight}
	if _, dup := g.edgeAt[e]; dup {
		return false
	}

	g.AddNode(from)
	g.AddNode(to)

	ei := g.allocEdge(e)
	g.slots[g.index[from]].out = append(g.slots[g.index[from]].out, ei)
	g.slots[g.index[to]].in = append(g.slots[g.index[to]].in, ei)

	g.checkRep()

	return true
}

// RemoveEdge deletes the directed edge (from, to, weight) from both
// incident lists.
//
// Returns false (no-op) if the triple is absent.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph[N]) RemoveEdge(from, to N, weight float64) bool {
	e := Edge[N]{From: from, To: to, Weight: weight}
	ei, ok := g.edgeAt[e]
	if !ok {
		return false
	}

	fromSlot := &g.slots[g.index[from]]
	fromSlot.out = removeIndex(fromSlot.out, ei)
	toSlot := &g.slots[g.index[to]]
	toSlot.in = removeIndex(toSlot.in, ei)

	delete(g.edgeAt, e)
	g.edges[ei] = Edge[N]{}
	g.freeEdges = append(g.freeEdges, ei)

	g.checkRep()

	return true
}

// ContainsEdge reports whether the exact triple (from, to, weight) exists.
// Complexity: O(1).
func (g *Graph[N]) ContainsEdge(from, to N, weight float64) bool {
	_, ok := g.edgeAt[Edge[N]{From: from, To: to, Weight: weight}]
	return ok
}

// EdgeCount returns the number of edges currently stored.
// Complexity: O(1).
func (g *Graph[N]) EdgeCount() int { return len(g.edgeAt) }

// HasNoEdges reports whether the graph contains no edges at all.
// Complexity: O(1).
func (g *Graph[N]) HasNoEdges() bool { return len(g.edgeAt) == 0 }

// allocEdge stores e in the arena, recycling a vacated position when one
// is available, and records its triple in the duplicate guard.
func (g *Graph[N]) allocEdge(e Edge[N]) int {
	var ei int
	if n := len(g.freeEdges); n > 0 {
		ei = g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		g.edges[ei] = e
	} else {
		ei = len(g.edges)
		g.edges = append(g.edges, e)
	}
	g.edgeAt[e] = ei

	return ei
}

// removeIndex deletes the first occurrence of ei from list, preserving the
// order of the remaining entries so enumeration stays insertion-ordered.
func removeIndex(list []int, ei int) []int {
	for i, v := range list {
		if v == ei {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
