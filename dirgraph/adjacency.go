// File: adjacency.go
// Role: Per-node adjacency queries consumed by search engines and callers.
//
// Querying a node that is not registered is a caller error and yields
// ErrNodeNotFound; it is deliberately distinct from the false no-op
// results of the mutation methods.
package dirgraph

// OutgoingEdges returns the edges leaving node, in insertion order.
//
// The returned slice is a fresh copy owned by the caller. Returns
// ErrNodeNotFound if the node is not registered.
//
// Complexity: O(outdeg(node)).
func (g *Graph[N]) OutgoingEdges(node N) ([]Edge[N], error) {
	pos, ok := g.index[node]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Edge[N], 0, len(g.slots[pos].out))
	for _, ei := range g.slots[pos].out {
		out = append(out, g.edges[ei])
	}

	return out, nil
}

// IncomingEdges returns the edges entering node, in insertion order.
//
// The returned slice is a fresh copy owned by the caller. Returns
// ErrNodeNotFound if the node is not registered.
//
// Complexity: O(indeg(node)).
func (g *Graph[N]) IncomingEdges(node N) ([]Edge[N], error) {
	pos, ok := g.index[node]
	if !ok {
		return nil, ErrNodeNotFound
	}

	in := make([]Edge[N], 0, len(g.slots[pos].in))
	for _, ei := range g.slots[pos].in {
		in = append(in, g.edges[ei])
	}

	return in, nil
}

// NeighborsForward returns the distinct labels reachable from node by one
// outgoing hop, in order of first appearance among its outgoing edges.
//
// Returns ErrNodeNotFound if the node is not registered.
//
// Complexity: O(outdeg(node)).
func (g *Graph[N]) NeighborsForward(node N) ([]N, error) {
	edges, err := g.OutgoingEdges(node)
	if err != nil {
		return nil, err
	}

	return distinctEndpoints(edges, func(e Edge[N]) N { return e.To }), nil
}

// NeighborsBackward returns the distinct labels with an edge into node,
// in order of first appearance among its incoming edges.
//
// Returns ErrNodeNotFound if the node is not registered.
//
// Complexity: O(indeg(node)).
func (g *Graph[N]) NeighborsBackward(node N) ([]N, error) {
	edges, err := g.IncomingEdges(node)
	if err != nil {
		return nil, err
	}

	return distinctEndpoints(edges, func(e Edge[N]) N { return e.From }), nil
}

// distinctEndpoints projects one endpoint of each edge and drops repeats,
// keeping first-appearance order. Parallel edges therefore contribute a
// single neighbor.
func distinctEndpoints[N comparable](edges []Edge[N], pick func(Edge[N]) N) []N {
	seen := make(map[N]struct{}, len(edges))
	out := make([]N, 0, len(edges))
	for _, e := range edges {
		label := pick(e)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	return out
}
