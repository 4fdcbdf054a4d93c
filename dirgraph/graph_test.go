// Package dirgraph_test verifies the directed multigraph ADT: mutation
// no-op semantics, the adjacency-consistency invariant under add/remove
// sequences, and the caller-error contract of adjacency queries.
package dirgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"campusways/dirgraph"
)

type GraphSuite struct {
	suite.Suite
	g *dirgraph.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	// Every mutation in the suite runs with invariant checks on.
	dirgraph.SetRepCheck(true)
	s.g = dirgraph.New[string]()
}

func (s *GraphSuite) TearDownTest() {
	dirgraph.SetRepCheck(false)
}

func (s *GraphSuite) TestAddNodeIdempotence() {
	require := require.New(s.T())

	require.True(s.g.AddNode("A"), "first AddNode should report insertion")
	require.True(s.g.ContainsNode("A"))
	require.False(s.g.AddNode("A"), "second AddNode must be a no-op")
	require.Equal(1, s.g.NodeCount())
}

func (s *GraphSuite) TestAddEdgeAutoAddsEndpoints() {
	require := require.New(s.T())

	require.True(s.g.AddEdge("A", "B", 2.5))
	require.True(s.g.ContainsNode("A"), "AddEdge should register the source")
	require.True(s.g.ContainsNode("B"), "AddEdge should register the destination")
	require.True(s.g.ContainsEdge("A", "B", 2.5))
	require.False(s.g.ContainsEdge("B", "A", 2.5), "no implicit reverse edge")
}

func (s *GraphSuite) TestAddEdgeDuplicateTriple() {
	require := require.New(s.T())

	require.True(s.g.AddEdge("A", "B", 1))
	require.False(s.g.AddEdge("A", "B", 1), "identical triple must be rejected")
	require.Equal(1, s.g.EdgeCount())

	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Len(out, 1, "duplicate insert must not grow the outgoing set")
	in, err := s.g.IncomingEdges("B")
	require.NoError(err)
	require.Len(in, 1, "duplicate insert must not grow the incoming set")
}

func (s *GraphSuite) TestParallelEdgesDistinctWeights() {
	require := require.New(s.T())

	require.True(s.g.AddEdge("A", "B", 1))
	require.True(s.g.AddEdge("A", "B", 7), "different weight is a distinct edge")
	require.Equal(2, s.g.EdgeCount())

	// Parallel edges still collapse to a single forward neighbor.
	nb, err := s.g.NeighborsForward("A")
	require.NoError(err)
	require.Equal([]string{"B"}, nb)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "B", 7)

	require.True(s.g.RemoveEdge("A", "B", 1))
	require.False(s.g.RemoveEdge("A", "B", 1), "removing an absent triple is a no-op")
	require.True(s.g.ContainsEdge("A", "B", 7), "the parallel edge must survive")

	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Equal([]dirgraph.Edge[string]{{From: "A", To: "B", Weight: 7}}, out)
	in, err := s.g.IncomingEdges("B")
	require.NoError(err)
	require.Equal([]dirgraph.Edge[string]{{From: "A", To: "B", Weight: 7}}, in)
}

func (s *GraphSuite) TestRemoveNodePurgesIncidentEdges() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("B", "C", 2)
	s.g.AddEdge("C", "B", 3)
	s.g.AddEdge("B", "B", 4) // self-loop

	require.True(s.g.RemoveNode("B"))
	require.False(s.g.ContainsNode("B"))
	require.False(s.g.RemoveNode("B"), "second removal is a no-op")

	// No surviving node may reference B as an endpoint.
	for _, n := range s.g.Nodes() {
		out, err := s.g.OutgoingEdges(n)
		require.NoError(err)
		for _, e := range out {
			require.NotEqual("B", e.From)
			require.NotEqual("B", e.To)
		}
		in, err := s.g.IncomingEdges(n)
		require.NoError(err)
		for _, e := range in {
			require.NotEqual("B", e.From)
			require.NotEqual("B", e.To)
		}
	}
	require.True(s.g.HasNoEdges())
}

func (s *GraphSuite) TestNodeReinsertionAfterRemoval() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.RemoveNode("A")
	require.True(s.g.AddNode("A"), "a removed label can be registered again")

	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Empty(out, "a re-added node starts edge-less")
}

func (s *GraphSuite) TestAdjacencyTracksMutationSequence() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "C", 2)
	s.g.AddEdge("D", "A", 3)
	s.g.RemoveEdge("A", "C", 2)
	s.g.AddEdge("A", "C", 5)

	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.ElementsMatch([]dirgraph.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 5},
	}, out)

	in, err := s.g.IncomingEdges("A")
	require.NoError(err)
	require.Equal([]dirgraph.Edge[string]{{From: "D", To: "A", Weight: 3}}, in)
}

func (s *GraphSuite) TestAdjacencyOfMissingNode() {
	require := require.New(s.T())

	_, err := s.g.OutgoingEdges("ghost")
	require.ErrorIs(err, dirgraph.ErrNodeNotFound)
	_, err = s.g.IncomingEdges("ghost")
	require.ErrorIs(err, dirgraph.ErrNodeNotFound)
	_, err = s.g.NeighborsForward("ghost")
	require.ErrorIs(err, dirgraph.ErrNodeNotFound)
	_, err = s.g.NeighborsBackward("ghost")
	require.ErrorIs(err, dirgraph.ErrNodeNotFound)
}

func (s *GraphSuite) TestNeighborsBothDirections() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "C", 1)
	s.g.AddEdge("C", "A", 1)

	fwd, err := s.g.NeighborsForward("A")
	require.NoError(err)
	require.Equal([]string{"B", "C"}, fwd)

	back, err := s.g.NeighborsBackward("A")
	require.NoError(err)
	require.Equal([]string{"C"}, back)
}

func (s *GraphSuite) TestBulkStateQueriesAndResets() {
	require := require.New(s.T())

	require.True(s.g.IsEmpty())
	require.True(s.g.HasNoEdges())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("B", "C", 2)
	require.False(s.g.IsEmpty())
	require.False(s.g.HasNoEdges())

	s.g.ClearEdges()
	require.True(s.g.HasNoEdges())
	require.Equal(3, s.g.NodeCount(), "ClearEdges keeps nodes registered")
	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Empty(out)

	s.g.ClearAll()
	require.True(s.g.IsEmpty())
	require.Equal(0, s.g.NodeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// Labels only need to be comparable; a struct key must behave identically
// to a string key.
func TestStructLabels(t *testing.T) {
	type point struct{ X, Y float64 }

	g := dirgraph.New[point]()
	a, b := point{0, 0}, point{3, 4}

	require.True(t, g.AddEdge(a, b, 5))
	require.True(t, g.ContainsNode(point{3, 4}), "label equality is by value")
	require.False(t, g.AddEdge(a, b, 5))

	out, err := g.OutgoingEdges(a)
	require.NoError(t, err)
	require.Equal(t, []dirgraph.Edge[point]{{From: a, To: b, Weight: 5}}, out)
}
