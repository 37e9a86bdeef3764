// Package subwayindex indexes subway entrances, stations and lines and
// answers lookup and nearest-neighbor queries over them.
//
// Usage:
//
//	sys := subwayindex.NewSystem()
//	for _, e := range loaded {
//		_ = sys.Ingest(e)
//	}
//	if err := sys.Finalize(); err != nil {
//		log.Fatal(err)
//	}
//	names, err := sys.NearestStation(40.7359, -73.9906)
//
// Ingest every entrance first, then call Finalize exactly once. Queries
// before Finalize return ErrNotFinalized. After Finalize the System is
// read-only and safe for concurrent readers.
package subwayindex

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/subway-index/cluster"
	"github.com/theoremus-urban-solutions/subway-index/config"
	"github.com/theoremus-urban-solutions/subway-index/entrances"
	"github.com/theoremus-urban-solutions/subway-index/lines"
	"github.com/theoremus-urban-solutions/subway-index/spatial"
	"github.com/theoremus-urban-solutions/subway-index/station"
)

// System owns the entrance list and the station and line indexes built from it.
type System struct {
	opts      options
	entrances []entrances.Entrance
	clusterer *cluster.Clusterer
	groups    []cluster.Group
	index     *station.Index
	finalized bool
	dropped   int
}

// NewSystem creates an empty system.
func NewSystem(opts ...Option) *System {
	o := buildOptions(opts)
	c := cluster.New(o.threshold, o.dist)
	if o.rtree {
		c = cluster.NewGeo(o.threshold, o.dist)
	}
	return &System{opts: o, clusterer: c}
}

// NewSystemFromConfig creates an empty system configured from cfg.
func NewSystemFromConfig(cfg config.AppConfig, opts ...Option) *System {
	return NewSystem(append(OptionsFromConfig(cfg), opts...)...)
}

// Ingest adds one entrance and merges it into an existing group when it
// qualifies.
func (s *System) Ingest(e entrances.Entrance) error {
	if s.finalized {
		return ErrFinalized
	}
	s.entrances = append(s.entrances, e)
	s.clusterer.Add(cluster.Item{Lat: e.Lat, Lon: e.Lon, Lines: e.Lines})
	return nil
}

// Finalize groups the entrances into stations and builds the station and
// line indexes. It may only be called once.
func (s *System) Finalize() error {
	if s.finalized {
		return ErrFinalized
	}
	idxOpts := s.opts.index
	idxOpts.OnRehash = func(table string, from, to int) {
		s.opts.logger.Printf("subway system: %s index rehashed %d -> %d", table, from, to)
	}
	s.index = station.NewIndex(idxOpts)
	s.groups = s.clusterer.Finalize()

	for _, g := range s.groups {
		st := station.Station{
			Name:      s.entrances[g.Root].Name,
			Lines:     g.Lines,
			Lat:       g.Lat,
			Lon:       g.Lon,
			Entrances: g.Members,
		}
		added, err := s.index.AddStation(st)
		if err != nil {
			return fmt.Errorf("adding station %q: %w", st.Name, err)
		}
		if !added {
			s.dropped++
		}
	}
	if err := s.index.BuildLines(); err != nil {
		return fmt.Errorf("building lines: %w", err)
	}
	s.finalized = true
	s.opts.logger.Printf("subway system: %d entrances, %d groups, %d stations, %d lines (%d duplicate station names dropped)",
		len(s.entrances), len(s.groups), s.index.StationCount(), s.index.LineCount(), s.dropped)
	return nil
}

// Finalized reports whether Finalize has completed.
func (s *System) Finalized() bool { return s.finalized }

func (s *System) ready() error {
	if !s.finalized {
		return ErrNotFinalized
	}
	return nil
}

// FindLine returns the line named name.
func (s *System) FindLine(name string) (station.Line, error) {
	if err := s.ready(); err != nil {
		return station.Line{}, err
	}
	p, ok := lines.Position(name)
	if !ok {
		return station.Line{}, fmt.Errorf("%w: %q", ErrUnknownLine, name)
	}
	l, ok := s.index.FindLine(lines.Name(p))
	if !ok {
		return station.Line{}, fmt.Errorf("line %q: %w", name, ErrNotFound)
	}
	return l, nil
}

// FindStation returns the station named name, ignoring case and runs of spaces.
func (s *System) FindStation(name string) (station.Station, error) {
	if err := s.ready(); err != nil {
		return station.Station{}, err
	}
	name = station.NormalizeName(name)
	st, ok := s.index.FindStation(name)
	if !ok {
		return station.Station{}, fmt.Errorf("station %q: %w", name, ErrNotFound)
	}
	return st, nil
}

// ListAllStations returns every station name in index order.
func (s *System) ListAllStations() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.index.StationNames(), nil
}

// ListLineStations returns the names of the stations on a line.
func (s *System) ListLineStations(line string) ([]string, error) {
	l, err := s.FindLine(line)
	if err != nil {
		return nil, err
	}
	return l.StationNames(), nil
}

// ListEntrances returns the entrance names of a station. Names ending in
// ')' are annotations of another entrance and are left out.
func (s *System) ListEntrances(stationName string) ([]string, error) {
	st, err := s.FindStation(stationName)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(st.Entrances))
	for _, i := range st.Entrances {
		name := s.entrances[i].Name
		if strings.HasSuffix(name, ")") {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// NearestStation returns the names of the station(s) closest to (lat, lon).
func (s *System) NearestStation(lat, lon float64) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	nearest, _ := s.index.NearestStations(lat, lon, s.opts.dist)
	if len(nearest) == 0 {
		return nil, fmt.Errorf("nearest station: %w", ErrNotFound)
	}
	out := make([]string, len(nearest))
	for i, st := range nearest {
		out[i] = st.Name
	}
	return out, nil
}

// NearestStations returns the closest station records and their distance in km.
func (s *System) NearestStations(lat, lon float64) ([]station.Station, float64, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}
	nearest, d := s.index.NearestStations(lat, lon, s.opts.dist)
	if len(nearest) == 0 {
		return nil, 0, fmt.Errorf("nearest station: %w", ErrNotFound)
	}
	return nearest, d, nil
}

// NearestLines returns the lines served by the station(s) closest to
// (lat, lon), in line order.
func (s *System) NearestLines(lat, lon float64) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	m := s.index.NearestLines(lat, lon, s.opts.dist)
	if m.IsEmpty() {
		return nil, fmt.Errorf("nearest lines: %w", ErrNotFound)
	}
	return m.Names(), nil
}

func entranceCoords(e entrances.Entrance) (float64, float64) { return e.Lat, e.Lon }

// NearestEntrance returns the names of the entrance(s) closest to (lat, lon).
func (s *System) NearestEntrance(lat, lon float64) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	nearest, _ := spatial.Nearest(spatial.Slice(s.entrances), entranceCoords, lat, lon, s.opts.dist)
	if len(nearest) == 0 {
		return nil, fmt.Errorf("nearest entrance: %w", ErrNotFound)
	}
	out := make([]string, len(nearest))
	for i, e := range nearest {
		out[i] = e.Name
	}
	return out, nil
}

// Entrance returns the entrance at index i of the ingest order.
func (s *System) Entrance(i int) (entrances.Entrance, bool) {
	if i < 0 || i >= len(s.entrances) {
		return entrances.Entrance{}, false
	}
	return s.entrances[i], true
}

// Groups returns the station groups produced by Finalize.
func (s *System) Groups() []cluster.Group { return s.groups }

// EntranceCount is the number of ingested entrances.
func (s *System) EntranceCount() int { return len(s.entrances) }

// StationCount is the number of indexed stations; 0 before Finalize.
func (s *System) StationCount() int {
	if s.index == nil {
		return 0
	}
	return s.index.StationCount()
}

// DroppedStations is the number of groups whose name was already taken.
func (s *System) DroppedStations() int { return s.dropped }
