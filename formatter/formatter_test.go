package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subwayindex "github.com/theoremus-urban-solutions/subway-index"
	"github.com/theoremus-urban-solutions/subway-index/commands"
	"github.com/theoremus-urban-solutions/subway-index/gtfsrt"
)

type fakeQuerier struct {
	stations  map[string][]string // station -> entrances
	lines     map[string][]string // line -> stations
	nearest   []string
	nearestEr error
}

func (f fakeQuerier) ListLineStations(line string) ([]string, error) {
	s, ok := f.lines[strings.ToUpper(line)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", subwayindex.ErrUnknownLine, line)
	}
	return s, nil
}

func (f fakeQuerier) ListAllStations() ([]string, error) {
	var out []string
	for name := range f.stations {
		out = append(out, name)
	}
	return out, nil
}

func (f fakeQuerier) ListEntrances(station string) ([]string, error) {
	e, ok := f.stations[station]
	if !ok {
		return nil, fmt.Errorf("station %q: %w", station, subwayindex.ErrNotFound)
	}
	return e, nil
}

func (f fakeQuerier) NearestStation(lat, lon float64) ([]string, error) {
	return f.nearest, f.nearestEr
}

func (f fakeQuerier) NearestLines(lat, lon float64) ([]string, error) {
	return []string{"N", "Q", "R"}, f.nearestEr
}

func (f fakeQuerier) NearestEntrance(lat, lon float64) ([]string, error) {
	return f.nearest, f.nearestEr
}

func testQuerier() fakeQuerier {
	return fakeQuerier{
		stations: map[string][]string{"Union Sq": {"Union Sq", "Union Sq at NE corner"}},
		lines:    map[string][]string{"L": {"Union Sq", "3rd Av"}, "SIR": {}},
		nearest:  []string{"Union Sq"},
	}
}

func render(t *testing.T, q Querier, script string) string {
	t.Helper()
	cmds, err := commands.Parse(strings.NewReader(script))
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewText(&buf)
	for _, c := range cmds {
		res, err := Evaluate(q, c)
		require.NoError(t, err)
		require.NoError(t, w.WriteResult(res))
	}
	require.NoError(t, w.Flush())
	return buf.String()
}

func TestText_Listings(t *testing.T) {
	got := render(t, testQuerier(), "list_line_stations l\nlist_entrances Union   Sq\n")
	want := "Stations serving Line L:\nUnion Sq\n3rd Av\n\n" +
		"The entrances for station 'Union Sq' are:\nUnion Sq\nUnion Sq at NE corner\n\n"
	assert.Equal(t, want, got)
}

func TestText_Missing(t *testing.T) {
	got := render(t, testQuerier(), "list_line_stations w\nlist_entrances Times Sq\nfly_to 1 2\n")
	want := "Line named 'W' does not exist\n\n" +
		"Station 'Times Sq' does not exist\n\n" +
		"Invalid command\n"
	assert.Equal(t, want, got)
}

func TestText_Nearest(t *testing.T) {
	got := render(t, testQuerier(), "nearest_station 40.7359 -73.9906\nnearest_lines 40.73590000001 -73.99\n")
	want := "Stations nearest to 40.7359, -73.9906:\nUnion Sq\n\n" +
		"Nearest lines to 40.7359, -73.99:\nN\nQ\nR\n\n"
	assert.Equal(t, want, got)
}

func TestText_EmptyLine(t *testing.T) {
	got := render(t, testQuerier(), "list_line_stations SIR\n")
	assert.Equal(t, "Stations serving Line SIR:\n\n", got)
}

func TestEvaluate_NothingIndexed(t *testing.T) {
	q := testQuerier()
	q.nearest, q.nearestEr = nil, fmt.Errorf("nearest station: %w", subwayindex.ErrNotFound)
	res, err := Evaluate(q, commands.ParseLine("nearest_entrance 0 0"))
	require.NoError(t, err)
	assert.Empty(t, res.Names)
	assert.Empty(t, res.Error)
}

func TestEvaluate_PropagatesOtherErrors(t *testing.T) {
	q := testQuerier()
	q.nearestEr = subwayindex.ErrNotFinalized
	_, err := Evaluate(q, commands.ParseLine("nearest_station 0 0"))
	assert.True(t, errors.Is(err, subwayindex.ErrNotFinalized))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := New("json", &buf)
	require.NoError(t, err)

	for _, line := range []string{"nearest_station 1.5 2", "list_line_stations Q", "bogus"} {
		res, err := Evaluate(testQuerier(), commands.ParseLine(line))
		require.NoError(t, err)
		require.NoError(t, w.WriteResult(res))
	}
	require.NoError(t, w.WriteVehicle(gtfsrt.VehicleMatch{VehicleID: "L-1", Stations: []string{"3rd Av"}, DistanceKM: 0.2}))
	require.NoError(t, w.Flush())

	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, out, 4)

	var r Result
	require.NoError(t, json.Unmarshal([]byte(out[0]), &r))
	assert.Equal(t, "nearest_station", r.Command)
	assert.Equal(t, &Point{Lat: 1.5, Lon: 2}, r.Point)
	assert.Equal(t, []string{"Union Sq"}, r.Names)

	r = Result{}
	require.NoError(t, json.Unmarshal([]byte(out[1]), &r))
	assert.Equal(t, "Line named 'Q' does not exist", r.Error)
	assert.Equal(t, "Q", r.Line)

	r = Result{}
	require.NoError(t, json.Unmarshal([]byte(out[2]), &r))
	assert.Equal(t, "Invalid command", r.Error)

	var m gtfsrt.VehicleMatch
	require.NoError(t, json.Unmarshal([]byte(out[3]), &m))
	assert.Equal(t, "L-1", m.VehicleID)
}

func TestText_Vehicle(t *testing.T) {
	var buf bytes.Buffer
	w := NewText(&buf)
	require.NoError(t, w.WriteVehicle(gtfsrt.VehicleMatch{
		VehicleID:  "L-101",
		RouteID:    "L",
		Lat:        40.7,
		Lon:        -73.95,
		Timestamp:  1700000000,
		Stations:   []string{"Bedford Av"},
		DistanceKM: 0.01,
	}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "Vehicle L-101 (route L) at 40.7, -73.95 [2023-11-14T22:13:20Z]: Bedford Av, at station\n", buf.String())
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
