// Package shortpath implements Dijkstra's shortest-path search over any
// source of outgoing edges.
//
// The engine depends on a single capability, NeighborProvider: given a
// node, enumerate the directed edges leaving it. dirgraph.Graph satisfies
// the capability, and so can any other structure (or test double) that can
// produce outgoing edges, which keeps the engine free of concrete storage.
//
// Between computes the minimum-cost edge sequence from a source node to a
// destination node:
//
//   - distances grow from {source: 0} by relaxation; a candidate replaces
//     the known best only when strictly smaller, so among equal-cost routes
//     the first relaxation wins.
//   - the frontier is a binary min-heap under lazy deletion: finding a
//     better distance pushes a fresh entry, and stale entries are skipped
//     when popped. This trades a little memory for avoiding in-place
//     priority updates.
//   - popping the destination finalizes its distance (Dijkstra's exchange
//     property), so the search stops there.
//   - an unreachable destination is a normal outcome, reported through the
//     found flag rather than an error.
//
// Precondition: every edge weight reachable from the source is
// non-negative. The algorithm is not correct otherwise and the engine does
// not check it.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each node is finalized at most once, each
//     relaxation may push one heap entry, each heap operation is O(log V).
//   - Space: O(V + E) for the distance/predecessor maps and the frontier
//     under lazy deletion.
package shortpath
