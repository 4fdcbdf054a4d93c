// File: dijkstra.go
// Role: Dijkstra search with a lazy-deletion binary-heap frontier.
package shortpath

import (
	"container/heap"
	"fmt"

	"campusways/dirgraph"
)

// Between computes a minimum-cost path from source to dest over the edges
// enumerated by p.
//
// Returns:
//
//   - edges: the path in source→dest order; empty (non-nil) when
//     source == dest.
//   - found: false when dest is unreachable from source. This is a normal
//     outcome, not an error.
//   - err:   ErrNilProvider for a nil provider, or a wrapped provider
//     error (for example dirgraph.ErrNodeNotFound for an unregistered
//     source).
//
// Precondition: all reachable edge weights are non-negative (unchecked).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Between[N comparable](p NeighborProvider[N], source, dest N) ([]dirgraph.Edge[N], bool, error) {
	if p == nil {
		return nil, false, ErrNilProvider
	}

	// A node is its own zero-cost path; no frontier work needed.
	if source == dest {
		return []dirgraph.Edge[N]{}, true, nil
	}

	s := &search[N]{
		provider: p,
		dist:     map[N]float64{source: 0},
		parent:   make(map[N]dirgraph.Edge[N]),
		final:    make(map[N]bool),
	}
	heap.Init(&s.frontier)
	heap.Push(&s.frontier, &frontierItem[N]{node: source, dist: 0})

	if err := s.run(dest); err != nil {
		return nil, false, err
	}

	if _, reached := s.parent[dest]; !reached {
		return nil, false, nil
	}

	return s.reconstruct(source, dest), true, nil
}

// search holds the mutable state of one Between execution.
type search[N comparable] struct {
	provider NeighborProvider[N]
	dist     map[N]float64          // best known cost from source
	parent   map[N]dirgraph.Edge[N] // best known incoming edge, for reconstruction
	final    map[N]bool             // nodes whose distance is finalized
	frontier frontierPQ[N]
}

// run pops minimum-distance nodes and relaxes their outgoing edges until
// dest is finalized or the frontier is exhausted.
func (s *search[N]) run(dest N) error {
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*frontierItem[N])
		u := item.node

		// Stale lazy-deletion entry: a cheaper route to u was already
		// finalized after this entry was pushed.
		if s.final[u] {
			continue
		}
		s.final[u] = true

		// A popped node's distance is final, so the destination cannot be
		// improved by anything still on the frontier.
		if u == dest {
			return nil
		}

		if err := s.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every node one hop from u.
// Only a strictly smaller candidate replaces the known best, so an
// equal-cost route never displaces an existing predecessor.
func (s *search[N]) relax(u N) error {
	edges, err := s.provider.OutgoingEdges(u)
	if err != nil {
		return fmt.Errorf("shortpath: outgoing edges of %v: %w", u, err)
	}

	base := s.dist[u]
	for _, e := range edges {
		candidate := base + e.Weight
		known, seen := s.dist[e.To]
		if seen && candidate >= known {
			continue
		}

		s.dist[e.To] = candidate
		s.parent[e.To] = e
		heap.Push(&s.frontier, &frontierItem[N]{node: e.To, dist: candidate})
	}

	return nil
}

// reconstruct follows predecessor edges backward from dest to source and
// reverses the sequence into source→dest order.
func (s *search[N]) reconstruct(source, dest N) []dirgraph.Edge[N] {
	var path []dirgraph.Edge[N]
	for at := dest; at != source; {
		e := s.parent[at]
		path = append(path, e)
		at = e.From
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is a (node, distance) pair ordered by distance.
type frontierItem[N comparable] struct {
	node N
	dist float64
}

// frontierPQ is a min-heap of *frontierItem under lazy deletion: improved
// distances push fresh entries and outdated ones are skipped on pop.
type frontierPQ[N comparable] []*frontierItem[N]

func (pq frontierPQ[N]) Len() int            { return len(pq) }
func (pq frontierPQ[N]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq frontierPQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem[N])) }

func (pq *frontierPQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
