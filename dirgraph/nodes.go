// File: nodes.go
// Role: Node lifecycle and whole-graph state queries.
package dirgraph

// AddNode registers a new, edge-less node.
//
// Returns false (no-op) if the label is already present; true once the
// node has been added. Adding an existing node never disturbs its edges.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(label N) bool {
	if _, exists := g.index[label]; exists {
		return false
	}

	var pos int
	if n := len(g.freeSlots); n > 0 {
		// Recycle a vacated slot.
		pos = g.freeSlots[n-1]
		g.freeSlots = g.freeSlots[:n-1]
		g.slots[pos] = slot[N]{label: label, used: true}
	} else {
		pos = len(g.slots)
		g.slots = append(g.slots, slot[N]{label: label, used: true})
	}
	g.index[label] = pos

	g.checkRep()

	return true
}

// RemoveNode deletes a node together with every incident edge, incoming
// and outgoing, preserving adjacency consistency throughout.
//
// Returns false (no-op) if the label is absent.
//
// Complexity: O(deg(v)) where deg counts both directions.
func (g *Graph[N]) RemoveNode(label N) bool {
	pos, exists := g.index[label]
	if !exists {
		return false
	}

	// Detach incident edges through RemoveEdge so both endpoint lists stay
	// paired at every step. Copies are needed: removal mutates the lists.
	out := append([]int(nil), g.slots[pos].out...)
	for _, ei := range out {
		e := g.edges[ei]
		g.RemoveEdge(e.From, e.To, e.Weight)
	}
	in := append([]int(nil), g.slots[pos].in...)
	for _, ei := range in {
		e := g.edges[ei]
		g.RemoveEdge(e.From, e.To, e.Weight)
	}

	delete(g.index, label)
	g.slots[pos] = slot[N]{}
	g.freeSlots = append(g.freeSlots, pos)

	g.checkRep()

	return true
}

// ContainsNode reports whether the label is registered.
// Complexity: O(1).
func (g *Graph[N]) ContainsNode(label N) bool {
	_, ok := g.index[label]
	return ok
}

// Nodes returns the labels of all nodes. Order is unspecified.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	out := make([]N, 0, len(g.index))
	for label := range g.index {
		out = append(out, label)
	}

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[N]) NodeCount() int { return len(g.index) }

// IsEmpty reports whether the graph has no nodes.
// Complexity: O(1).
func (g *Graph[N]) IsEmpty() bool { return len(g.index) == 0 }

// ClearAll removes every node and edge, returning the graph to its
// freshly constructed state.
// Complexity: O(1) beyond garbage collection.
func (g *Graph[N]) ClearAll() {
	g.index = make(map[N]int)
	g.slots = nil
	g.freeSlots = nil
	g.edges = nil
	g.freeEdges = nil
	g.edgeAt = make(map[Edge[N]]int)
}

// ClearEdges removes every edge while keeping all nodes registered.
// Complexity: O(V).
func (g *Graph[N]) ClearEdges() {
	for pos := range g.slots {
		if !g.slots[pos].used {
			continue
		}
		g.slots[pos].out = nil
		g.slots[pos].in = nil
	}
	g.edges = nil
	g.freeEdges = nil
	g.edgeAt = make(map[Edge[N]]int)

	g.checkRep()
}
