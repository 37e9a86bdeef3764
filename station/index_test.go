package station

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/subway-index/lines"
)

func planar(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Hypot(lat2-lat1, lon2-lon1)
}

func mustMask(t *testing.T, names ...string) lines.Mask {
	t.Helper()
	m, err := lines.Parse(names...)
	require.NoError(t, err)
	return m
}

func fixture(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex(IndexOptions{})
	stations := []Station{
		{Name: "Union Sq", Lines: mustMask(t, "L", "N", "Q", "R", "4", "5", "6"), Lat: 0, Lon: 0, Entrances: []int{0, 1}},
		{Name: "1st Av", Lines: mustMask(t, "L"), Lat: 0, Lon: 2, Entrances: []int{2}},
		{Name: "8th St-NYU", Lines: mustMask(t, "N", "R"), Lat: 1, Lon: 0, Entrances: []int{3}},
		{Name: "Astor Pl", Lines: mustMask(t, "6"), Lat: -1, Lon: 0, Entrances: []int{4}},
	}
	for _, s := range stations {
		ok, err := idx.AddStation(s)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, idx.BuildLines())
	return idx
}

func TestIndex_FindStationIgnoresCase(t *testing.T) {
	idx := fixture(t)
	a, ok := idx.FindStation("union sq")
	require.True(t, ok)
	b, ok := idx.FindStation("UNION SQ")
	require.True(t, ok)
	assert.Equal(t, a, b)
	assert.Equal(t, "Union Sq", a.Name)
	assert.Equal(t, []int{0, 1}, a.Entrances)

	_, ok = idx.FindStation("Times Sq")
	assert.False(t, ok)
}

func TestIndex_DuplicateNameIsDropped(t *testing.T) {
	idx := fixture(t)
	ok, err := idx.AddStation(Station{Name: "ASTOR PL", Lines: mustMask(t, "R")})
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = idx.AddStation(Station{Name: " Astor   Pl", Lines: mustMask(t, "R")})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, idx.StationCount())
}

func TestIndex_BuildLines(t *testing.T) {
	idx := fixture(t)
	assert.Equal(t, lines.Count, idx.LineCount())

	tests := []struct {
		line string
		want []string
	}{
		{line: "L", want: []string{"Union Sq", "1st Av"}},
		{line: "R", want: []string{"Union Sq", "8th St-NYU"}},
		{line: "6", want: []string{"Union Sq", "Astor Pl"}},
		{line: "A", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			l, ok := idx.FindLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, lines.Of(lines.MustPosition(tt.line)), l.Mask)
			assert.ElementsMatch(t, tt.want, l.StationNames())
		})
	}

	_, ok := idx.FindLine("W")
	assert.False(t, ok)
}

func TestIndex_LineStationsAreCopies(t *testing.T) {
	idx := fixture(t)
	l, ok := idx.FindLine("L")
	require.True(t, ok)
	for i := range l.Stations {
		if l.Stations[i].Name == "Union Sq" {
			l.Stations[i].Entrances[0] = 99
		}
	}
	s, ok := idx.FindStation("Union Sq")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, s.Entrances)
}

func TestIndex_StationNames(t *testing.T) {
	idx := fixture(t)
	names := idx.StationNames()
	assert.Len(t, names, idx.StationCount())
	assert.ElementsMatch(t, []string{"Union Sq", "1st Av", "8th St-NYU", "Astor Pl"}, names)
	assert.Len(t, idx.Stations(), idx.StationCount())
}

func TestIndex_NearestStations(t *testing.T) {
	idx := fixture(t)

	got, d := idx.NearestStations(0.1, 0.1, planar)
	require.Len(t, got, 1)
	assert.Equal(t, "Union Sq", got[0].Name)
	assert.InDelta(t, math.Sqrt(0.02), d, 1e-12)

	got, _ = idx.NearestStations(0, -5, planar)
	require.Len(t, got, 1)
	assert.Equal(t, "Union Sq", got[0].Name)

	var names []string
	for _, s := range mustNearest(t, idx, 0, 1) {
		names = append(names, s.Name)
	}
	// (0,1) is exactly 1 from Union Sq and 1st Av
	assert.ElementsMatch(t, []string{"Union Sq", "1st Av"}, names)
}

func mustNearest(t *testing.T, idx *Index, lat, lon float64) []Station {
	t.Helper()
	got, _ := idx.NearestStations(lat, lon, planar)
	require.NotEmpty(t, got)
	return got
}

func TestIndex_NearestLines(t *testing.T) {
	idx := fixture(t)

	// nearest is 8th St-NYU alone
	assert.Equal(t, []string{"N", "R"}, idx.NearestLines(1.2, 0, planar).Names())

	// tie between 1st Av and Union Sq unions their masks
	assert.Equal(t, mustMask(t, "L", "N", "Q", "R", "4", "5", "6"), idx.NearestLines(0, 1, planar))
}

func TestIndex_EmptyNearest(t *testing.T) {
	idx := NewIndex(IndexOptions{})
	got, _ := idx.NearestStations(0, 0, planar)
	assert.Empty(t, got)
	assert.True(t, idx.NearestLines(0, 0, planar).IsEmpty())
}

func TestIndex_RehashKeepsStations(t *testing.T) {
	var grown []string
	idx := NewIndex(IndexOptions{
		StationCapacity:       11,
		StationRehashCapacity: 101,
		OnRehash:              func(table string, from, to int) { grown = append(grown, fmt.Sprintf("%s:%d->%d", table, from, to)) },
	})
	for i := 0; i < 30; i++ {
		_, err := idx.AddStation(Station{Name: fmt.Sprintf("Station %d", i), Lines: mustMask(t, "G")})
		require.NoError(t, err)
	}
	require.NoError(t, idx.BuildLines())

	assert.Equal(t, []string{"stations:11->101"}, grown)
	assert.Equal(t, 30, idx.StationCount())
	for i := 0; i < 30; i++ {
		_, ok := idx.FindStation(fmt.Sprintf("station %d", i))
		assert.True(t, ok, i)
	}
	g, ok := idx.FindLine("G")
	require.True(t, ok)
	assert.Len(t, g.Stations, 30)
}
