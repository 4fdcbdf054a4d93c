// File: map.go
// Role: Map construction from records and the named-location query surface.
package campus

import (
	"fmt"

	"campusways/dirgraph"
	"campusways/shortpath"
)

// Map is a campus model: a coordinate graph plus a short-name registry.
//
// Build once with NewMap, then query freely; queries never mutate. The
// underlying graph carries no locking, so construction must complete
// before queries run concurrently.
type Map struct {
	graph     *dirgraph.Graph[Point]
	buildings map[string]Building
}

// NewMap builds a Map from building and segment records.
//
// Every building coordinate and every segment endpoint becomes a node
// (deduplicated by coordinate equality); every segment becomes one
// directed edge weighted by its distance. Records are validated at this
// boundary: empty or duplicate short names and negative distances are
// construction errors.
//
// Complexity: O(B + S) for B buildings and S segments.
func NewMap(buildings []Building, segments []Segment) (*Map, error) {
	m := &Map{
		graph:     dirgraph.New[Point](),
		buildings: make(map[string]Building, len(buildings)),
	}

	for _, b := range buildings {
		if b.ShortName == "" {
			return nil, fmt.Errorf("%w: building %q", ErrEmptyShortName, b.LongName)
		}
		if _, dup := m.buildings[b.ShortName]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShortName, b.ShortName)
		}
		m.buildings[b.ShortName] = b
		m.graph.AddNode(b.Location())
	}

	for _, s := range segments {
		if s.Distance < 0 {
			return nil, fmt.Errorf("%w: segment (%v,%v)->(%v,%v) distance %v",
				ErrNegativeDistance, s.X1, s.Y1, s.X2, s.Y2, s.Distance)
		}
		// AddEdge registers missing endpoint coordinates itself; a repeated
		// identical record is a harmless no-op.
		m.graph.AddEdge(Point{X: s.X1, Y: s.Y1}, Point{X: s.X2, Y: s.Y2}, s.Distance)
	}

	return m, nil
}

// ShortNameExists reports whether the short name is registered.
func (m *Map) ShortNameExists(name string) bool {
	_, ok := m.buildings[name]
	return ok
}

// LongNameForShort returns the long name registered for the short name.
// Returns ErrUnknownBuilding if the short name is unregistered.
func (m *Map) LongNameForShort(name string) (string, error) {
	b, ok := m.buildings[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBuilding, name)
	}

	return b.LongName, nil
}

// BuildingForShort returns the full building record for the short name.
// Returns ErrUnknownBuilding if the short name is unregistered.
func (m *Map) BuildingForShort(name string) (Building, error) {
	b, ok := m.buildings[name]
	if !ok {
		return Building{}, fmt.Errorf("%w: %q", ErrUnknownBuilding, name)
	}

	return b, nil
}

// BuildingNames returns the short→long mapping of every registered
// building. The returned map is a fresh copy owned by the caller.
func (m *Map) BuildingNames() map[string]string {
	names := make(map[string]string, len(m.buildings))
	for short, b := range m.buildings {
		names[short] = b.LongName
	}

	return names
}

// FindShortestPath returns the minimum-cost route between two named
// buildings.
//
// Returns ErrUnknownBuilding if either short name is unregistered. An
// unreachable destination yields an empty Path with zero total cost — a
// normal outcome, matching the engine. A building is reachable from
// itself at zero cost.
func (m *Map) FindShortestPath(startShort, endShort string) (Path, error) {
	start, ok := m.buildings[startShort]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownBuilding, startShort)
	}
	end, ok := m.buildings[endShort]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownBuilding, endShort)
	}

	edges, found, err := shortpath.Between[Point](m.graph, start.Location(), end.Location())
	if err != nil {
		return Path{}, fmt.Errorf("campus: path %q->%q: %w", startShort, endShort, err)
	}

	path := Path{Segments: make([]PathSegment, 0, len(edges))}
	if !found {
		return path, nil
	}
	for _, e := range edges {
		path.Segments = append(path.Segments, PathSegment{Start: e.From, End: e.To, Cost: e.Weight})
		path.TotalCost += e.Weight
	}

	return path, nil
}
