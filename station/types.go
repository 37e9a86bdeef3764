package station

import (
	"slices"

	"github.com/theoremus-urban-solutions/subway-index/lines"
)

// Station is a group of entrances that share a line mask.
type Station struct {
	Name      string     `json:"name"`
	Lines     lines.Mask `json:"-"`
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Entrances []int      `json:"entrances"` // indices into the entrance list
}

// Serves reports whether the station serves every line in m.
func (s Station) Serves(m lines.Mask) bool { return s.Lines.Contains(m) }

// LineNames returns the names of the lines the station serves.
func (s Station) LineNames() []string { return s.Lines.Names() }

// Clone returns a copy that shares no slices with s.
func (s Station) Clone() Station {
	s.Entrances = slices.Clone(s.Entrances)
	return s
}

// Line is a subway line and the stations it stops at.
type Line struct {
	Name     string     `json:"name"`
	Mask     lines.Mask `json:"-"`
	Stations []Station  `json:"stations"`
}

// StationNames returns the names of the stations on the line.
func (l Line) StationNames() []string {
	out := make([]string, len(l.Stations))
	for i, s := range l.Stations {
		out[i] = s.Name
	}
	return out
}
