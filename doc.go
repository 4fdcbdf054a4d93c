// Package campusways models a campus as a weighted directed multigraph
// and answers named way-finding queries over it.
//
// The module is organized in layers, each usable on its own:
//
//	dirgraph/   — generic directed multigraph: labeled nodes, weighted
//	              parallel edges, bidirectional adjacency
//	shortpath/  — minimum-cost route search over any neighbor source
//	campus/     — buildings, walkway segments, and the named query surface
//	campusdata/ — CSV dataset loaders
//
// A small HTTP service wrapping the query surface lives under cmd/server
// with its plumbing in internal/.
//
// Typical use:
//
//	buildings, _ := campusdata.LoadBuildingsFile("data/campus_buildings.csv")
//	segments, _ := campusdata.LoadSegmentsFile("data/campus_paths.csv")
//	m, _ := campus.NewMap(buildings, segments)
//	path, _ := m.FindShortestPath("CSE", "ODE")
package campusways
