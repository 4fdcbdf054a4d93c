// File: loader.go
// Role: CSV decoding of building and path-segment records.
package campusdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"campusways/campus"
)

// ErrMissingHeader indicates a dataset without its mandatory header line.
var ErrMissingHeader = errors.New("campusdata: missing header line")

const (
	buildingFields = 4 // shortName,longName,x,y
	segmentFields  = 5 // x1,y1,x2,y2,distance
)

// LoadBuildings decodes building records from r.
func LoadBuildings(r io.Reader) ([]campus.Building, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = buildingFields

	if err := skipHeader(cr); err != nil {
		return nil, err
	}

	var out []campus.Building
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("campusdata: buildings line %d: %w", line, err)
		}

		x, err := parseCoord(rec[2])
		if err != nil {
			return nil, fmt.Errorf("campusdata: buildings line %d: x: %w", line, err)
		}
		y, err := parseCoord(rec[3])
		if err != nil {
			return nil, fmt.Errorf("campusdata: buildings line %d: y: %w", line, err)
		}

		out = append(out, campus.Building{
			ShortName: rec[0],
			LongName:  rec[1],
			X:         x,
			Y:         y,
		})
	}
}

// LoadSegments decodes path-segment records from r.
func LoadSegments(r io.Reader) ([]campus.Segment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = segmentFields

	if err := skipHeader(cr); err != nil {
		return nil, err
	}

	var out []campus.Segment
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("campusdata: paths line %d: %w", line, err)
		}

		vals := make([]float64, segmentFields)
		for i, field := range rec {
			v, err := parseCoord(field)
			if err != nil {
				return nil, fmt.Errorf("campusdata: paths line %d, column %d: %w", line, i+1, err)
			}
			vals[i] = v
		}

		out = append(out, campus.Segment{
			X1: vals[0], Y1: vals[1],
			X2: vals[2], Y2: vals[3],
			Distance: vals[4],
		})
	}
}

// LoadBuildingsFile decodes building records from the named file.
func LoadBuildingsFile(path string) ([]campus.Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campusdata: %w", err)
	}
	defer f.Close()

	return LoadBuildings(f)
}

// LoadSegmentsFile decodes path-segment records from the named file.
func LoadSegmentsFile(path string) ([]campus.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campusdata: %w", err)
	}
	defer f.Close()

	return LoadSegments(f)
}

// skipHeader consumes the mandatory header line. A completely empty input
// is rejected: a dataset file always carries at least its header.
func skipHeader(cr *csv.Reader) error {
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingHeader
		}

		return fmt.Errorf("campusdata: header: %w", err)
	}

	return nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	return v, nil
}
