// Package campusdata_test checks CSV decoding of the two dataset formats,
// including header enforcement and line-numbered malformed-row errors.
package campusdata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"campusways/campus"
	"campusways/campusdata"
)

func TestLoadBuildings(t *testing.T) {
	in := strings.Join([]string{
		"shortName,longName,x,y",
		"CSE,Computer Science Building,2259.7112,1715.5273",
		"KNE,Kane Hall,1876.6109,1165.2467",
	}, "\n")

	got, err := campusdata.LoadBuildings(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []campus.Building{
		{ShortName: "CSE", LongName: "Computer Science Building", X: 2259.7112, Y: 1715.5273},
		{ShortName: "KNE", LongName: "Kane Hall", X: 1876.6109, Y: 1165.2467},
	}, got)
}

func TestLoadBuildings_HeaderOnly(t *testing.T) {
	got, err := campusdata.LoadBuildings(strings.NewReader("shortName,longName,x,y\n"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadBuildings_EmptyInput(t *testing.T) {
	_, err := campusdata.LoadBuildings(strings.NewReader(""))
	require.ErrorIs(t, err, campusdata.ErrMissingHeader)
}

func TestLoadBuildings_BadCoordinate(t *testing.T) {
	in := "shortName,longName,x,y\nCSE,Computer Science Building,not-a-number,4\n"

	_, err := campusdata.LoadBuildings(strings.NewReader(in))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2", "errors must carry the line number")
}

func TestLoadBuildings_WrongFieldCount(t *testing.T) {
	in := "shortName,longName,x,y\nCSE,Computer Science Building,1\n"

	_, err := campusdata.LoadBuildings(strings.NewReader(in))
	require.Error(t, err)
}

func TestLoadSegments(t *testing.T) {
	in := strings.Join([]string{
		"x1,y1,x2,y2,distance",
		"0,0,10,0,12.5",
		"10,0,0,0,12.5",
	}, "\n")

	got, err := campusdata.LoadSegments(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []campus.Segment{
		{X1: 0, Y1: 0, X2: 10, Y2: 0, Distance: 12.5},
		{X1: 10, Y1: 0, X2: 0, Y2: 0, Distance: 12.5},
	}, got)
}

func TestLoadSegments_BadColumnReported(t *testing.T) {
	in := "x1,y1,x2,y2,distance\n0,0,10,oops,12.5\n"

	_, err := campusdata.LoadSegments(strings.NewReader(in))
	require.Error(t, err)
	require.Contains(t, err.Error(), "column 4")
}

func TestLoadFiles_RoundTripIntoMap(t *testing.T) {
	buildings, err := campusdata.LoadBuildingsFile("testdata/campus_buildings.csv")
	require.NoError(t, err)
	require.Len(t, buildings, 4)

	segments, err := campusdata.LoadSegmentsFile("testdata/campus_paths.csv")
	require.NoError(t, err)
	require.Len(t, segments, 6)

	m, err := campus.NewMap(buildings, segments)
	require.NoError(t, err)

	// CSE → ODE exists only through SUZ and KNE; both directions are listed
	// in the dataset so the route works both ways.
	p, err := m.FindShortestPath("CSE", "ODE")
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)
	require.InDelta(t, 412.5+161.7+248.9, p.TotalCost, 1e-9)

	back, err := m.FindShortestPath("ODE", "CSE")
	require.NoError(t, err)
	require.InDelta(t, p.TotalCost, back.TotalCost, 1e-9)
}

func TestLoadBuildingsFile_Missing(t *testing.T) {
	_, err := campusdata.LoadBuildingsFile("testdata/does_not_exist.csv")
	require.Error(t, err)
}
