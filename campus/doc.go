// Package campus adapts the directed-graph ADT and the shortest-path
// engine into a campus way-finding model.
//
// A Map is built once from building records (short name, long name,
// coordinate) and path-segment records (two coordinates and a distance).
// Buildings and segment endpoints become graph nodes keyed by coordinate,
// and every segment becomes one directed edge weighted by its distance —
// bidirectional travel requires two records, no reverse edge is
// synthesized.
//
// After construction the Map is read-only and answers named-location
// queries: short-name existence and long-name lookup, the full short→long
// catalog, and minimum-cost routes between two named buildings. Unknown
// short names surface as ErrUnknownBuilding; an unreachable destination is
// a normal outcome and yields an empty Path with zero total cost.
package campus
