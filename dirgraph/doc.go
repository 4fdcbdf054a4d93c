// Package dirgraph provides a mutable directed multigraph with generically
// labeled nodes and weighted edges.
//
// The graph G = (V,E) is described by a set of node labels and a set of
// directed edges, where every edge is the value triple (From, To, Weight).
// Edge identity is the full triple: two edges between the same endpoints
// with different weights are distinct and may coexist, while inserting an
// identical triple twice is rejected.
//
// Storage is index based: a label registry maps each node label to an
// internal slot, and every slot keeps outgoing and incoming edge-index
// lists into a shared edge arena. The structural invariant is
// adjacency consistency: an edge index appears in its From slot's outgoing
// list if and only if the same index appears in its To slot's incoming list.
// Every mutating operation preserves this invariant; violation is a
// programming defect and fails fast when representation checks are enabled
// (see SetRepCheck in tests).
//
// Mutation semantics:
//
//   - AddNode(label)              – false (no-op) if the label exists.
//   - AddEdge(from, to, weight)   – auto-registers missing endpoints;
//     false (no-op) on a duplicate triple.
//   - RemoveNode(label)           – removes every incident edge first;
//     false if the label is absent.
//   - RemoveEdge(from, to, weight)– false if the triple is absent.
//
// Query semantics:
//
//   - ContainsNode / ContainsEdge – pure membership checks.
//   - OutgoingEdges / IncomingEdges – edge sets of an existing node;
//     querying an absent node returns ErrNodeNotFound (caller error,
//     distinct from a false no-op result).
//   - NeighborsForward / NeighborsBackward – distinct one-hop labels.
//
// Concurrency:
//
// The graph carries no internal synchronization. Concurrent mutation is
// undefined; callers must serialize writers. Read-only queries may run
// concurrently with each other once construction is complete.
//
// Complexity: all single-element mutations and membership checks are O(1)
// amortized; RemoveNode is O(deg(v)); enumeration is linear in the result.
package dirgraph
