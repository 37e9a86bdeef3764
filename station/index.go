package station

import (
	"strings"

	"github.com/theoremus-urban-solutions/subway-index/hashtable"
	"github.com/theoremus-urban-solutions/subway-index/lines"
)

const (
	DefaultStationCapacity       = 977
	DefaultStationRehashCapacity = 1973
	DefaultLineCapacity          = 59
	DefaultLineRehashCapacity    = 127
)

// IndexOptions sizes the two tables. Zero fields take the defaults.
type IndexOptions struct {
	StationCapacity       int
	StationRehashCapacity int
	LineCapacity          int
	LineRehashCapacity    int
	// OnRehash is told which table ("stations" or "lines") grew.
	OnRehash func(table string, from, to int)
}

func (o IndexOptions) withDefaults() IndexOptions {
	if o.StationCapacity <= 0 {
		o.StationCapacity = DefaultStationCapacity
	}
	if o.StationRehashCapacity <= 0 {
		o.StationRehashCapacity = DefaultStationRehashCapacity
	}
	if o.LineCapacity <= 0 {
		o.LineCapacity = DefaultLineCapacity
	}
	if o.LineRehashCapacity <= 0 {
		o.LineRehashCapacity = DefaultLineRehashCapacity
	}
	return o
}

// NormalizeName trims a station name and collapses runs of spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Index holds stations keyed by name and lines keyed by line name.
type Index struct {
	stations *hashtable.Table[Station]
	lines    *hashtable.Table[Line]
}

// NewIndex creates empty station and line tables.
func NewIndex(opts IndexOptions) *Index {
	opts = opts.withDefaults()
	notify := func(table string) func(int, int) {
		if opts.OnRehash == nil {
			return nil
		}
		return func(from, to int) { opts.OnRehash(table, from, to) }
	}
	return &Index{
		stations: hashtable.New[Station](hashtable.Options{
			Capacity:       opts.StationCapacity,
			RehashCapacity: opts.StationRehashCapacity,
			Hasher:         hashtable.Polynomial(38, 2),
			FoldCase:       true,
			Normalize:      NormalizeName,
			OnRehash:       notify("stations"),
		}),
		lines: hashtable.New[Line](hashtable.Options{
			Capacity:       opts.LineCapacity,
			RehashCapacity: opts.LineRehashCapacity,
			Hasher:         hashtable.Polynomial(25, 1),
			OnRehash:       notify("lines"),
		}),
	}
}

// AddStation inserts s by name. It returns false when a station with the
// same name (ignoring case and runs of spaces) is already present.
func (x *Index) AddStation(s Station) (bool, error) {
	if x.stations.Contains(s.Name) {
		return false, nil
	}
	if err := x.stations.Insert(s.Name, s.Clone()); err != nil {
		return false, err
	}
	return true, nil
}

// BuildLines creates one Line per declared line and attaches every station
// that serves it.
func (x *Index) BuildLines() error {
	for _, name := range lines.Names() {
		l := Line{Name: name, Mask: lines.Of(lines.MustPosition(name))}
		for s := range x.stations.Values() {
			if s.Serves(l.Mask) {
				l.Stations = append(l.Stations, s.Clone())
			}
		}
		if err := x.lines.Insert(l.Name, l); err != nil {
			return err
		}
	}
	return nil
}

// FindStation looks a station up by name, ignoring case and runs of spaces.
func (x *Index) FindStation(name string) (Station, bool) {
	s, ok := x.stations.Find(name)
	if !ok {
		return Station{}, false
	}
	return s.Clone(), true
}

// FindLine looks a line up by its exact name.
func (x *Index) FindLine(name string) (Line, bool) {
	return x.lines.Find(name)
}

// StationNames lists station names in table order.
func (x *Index) StationNames() []string {
	out := make([]string, 0, x.stations.Len())
	for s := range x.stations.Values() {
		out = append(out, s.Name)
	}
	return out
}

// Stations returns copies of all stations in table order.
func (x *Index) Stations() []Station {
	out := make([]Station, 0, x.stations.Len())
	for s := range x.stations.Values() {
		out = append(out, s.Clone())
	}
	return out
}

func (x *Index) StationCount() int { return x.stations.Len() }

func (x *Index) LineCount() int { return x.lines.Len() }
