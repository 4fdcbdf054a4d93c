// Package campusdata decodes the CSV datasets a campus.Map is built from.
//
// Two file formats are supported, each with a mandatory header line:
//
//	buildings: shortName,longName,x,y
//	paths:     x1,y1,x2,y2,distance
//
// The loaders only produce records; validation of record semantics
// (duplicate names, negative distances) happens in campus.NewMap, and
// graph population is entirely the adapter's concern. Malformed rows are
// reported with their line number.
package campusdata
