// File: types.go
// Role: Edge value type, Graph storage layout, sentinel errors, constructor.
//
// Determinism:
//   - OutgoingEdges/IncomingEdges return edges in insertion order.
//   - Nodes() order is unspecified (label types are only comparable).
package dirgraph

import "errors"

// ErrNodeNotFound indicates an adjacency query referenced a node that is
// not present in the graph. This is a precondition violation by the caller,
// not a normal negative outcome.
var ErrNodeNotFound = errors.New("dirgraph: node not found")

// Edge is a free-standing immutable directed edge value.
//
// Identity is the full (From, To, Weight) triple, so the type is directly
// usable as a map key and parallel edges with different weights compare
// unequal. Weight is expected to be non-negative when the graph is used
// for shortest-path search; the graph itself does not enforce this.
type Edge[N comparable] struct {
	// From is the source node label.
	From N

	// To is the destination node label.
	To N

	// Weight is the cost attached to this edge.
	Weight float64
}

// slot is the per-node record inside the graph.
//
// out and in hold indices into the edge arena. The adjacency-consistency
// invariant ties the two lists together across slots: an index stored in
// out here is stored in in at the destination's slot, and vice versa.
type slot[N comparable] struct {
	label N
	out   []int // arena indices of edges leaving this node
	in    []int // arena indices of edges entering this node
	used  bool  // false once the slot is on the free list
}

// Graph is a mutable directed multigraph keyed by node label.
//
// Layout:
//   - index maps a node label to its slot position.
//   - slots holds per-node records; vacated positions are recycled via
//     freeSlots so edge-index lists stay small and allocation-friendly.
//   - edges is a shared arena of edge values; vacated positions are
//     recycled via freeEdges.
//   - edgeAt maps a triple to its arena position and doubles as the
//     duplicate-triple guard.
//
// The zero value is not usable; call New.
type Graph[N comparable] struct {
	index     map[N]int
	slots     []slot[N]
	freeSlots []int

	edges     []Edge[N]
	freeEdges []int
	edgeAt    map[Edge[N]]int
}

// New returns an empty graph.
// Complexity: O(1).
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		index:  make(map[N]int),
		edgeAt: make(map[Edge[N]]int),
	}
}
