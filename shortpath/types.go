// File: types.go
// Role: NeighborProvider capability and sentinel errors.
package shortpath

import (
	"errors"

	"campusways/dirgraph"
)

// ErrNilProvider indicates that a nil NeighborProvider was passed to the
// search.
var ErrNilProvider = errors.New("shortpath: neighbor provider is nil")

// NeighborProvider is the single capability the search engine depends on:
// enumerate the directed edges leaving a node.
//
// Implementations return an error when the queried node is unknown to
// them (a caller precondition violation); the engine propagates such
// errors unchanged in meaning.
type NeighborProvider[N comparable] interface {
	OutgoingEdges(node N) ([]dirgraph.Edge[N], error)
}
