// File: types.go
// Role: Input records, the external path representation, sentinel errors.
package campus

import "errors"

// Sentinel errors for map construction and queries.
var (
	// ErrUnknownBuilding indicates a lookup or path query used a short name
	// that is not registered in the map.
	ErrUnknownBuilding = errors.New("campus: unknown building short name")

	// ErrEmptyShortName indicates a building record with an empty short name.
	ErrEmptyShortName = errors.New("campus: building short name is empty")

	// ErrDuplicateShortName indicates two building records share a short name.
	ErrDuplicateShortName = errors.New("campus: duplicate building short name")

	// ErrNegativeDistance indicates a path segment with a negative distance.
	ErrNegativeDistance = errors.New("campus: segment distance is negative")
)

// Point is a campus coordinate and the graph node label.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Building is an input record describing one named building.
type Building struct {
	ShortName string  `json:"shortName"`
	LongName  string  `json:"longName"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Location returns the building's coordinate.
func (b Building) Location() Point { return Point{X: b.X, Y: b.Y} }

// Segment is an input record describing one directed walkway segment.
type Segment struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Distance float64 `json:"distance"`
}

// PathSegment is one step of a computed route with its own cost.
type PathSegment struct {
	Start Point   `json:"start"`
	End   Point   `json:"end"`
	Cost  float64 `json:"cost"`
}

// Path is the external representation of a computed route: ordered
// segments plus the aggregate cost. A fresh value is produced per query
// and owned by the caller.
type Path struct {
	Segments  []PathSegment `json:"segments"`
	TotalCost float64       `json:"totalCost"`
}
