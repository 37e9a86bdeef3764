package entrances

import (
	"github.com/theoremus-urban-solutions/subway-index/lines"
)

// Entrance is a single subway entrance or exit.
type Entrance struct {
	ID    int        `json:"id"`
	URL   string     `json:"url"`
	Name  string     `json:"name"`
	Lat   float64    `json:"lat"`
	Lon   float64    `json:"lon"`
	Lines lines.Mask `json:"-"`
}

// New builds an entrance from line names. Unknown names are an error.
func New(id int, url, name string, lat, lon float64, lineNames ...string) (Entrance, error) {
	m, err := lines.Parse(lineNames...)
	if err != nil {
		return Entrance{}, err
	}
	return Entrance{ID: id, URL: url, Name: name, Lat: lat, Lon: lon, Lines: m}, nil
}

// LineNames returns the names of the lines reachable from the entrance.
func (e Entrance) LineNames() []string { return e.Lines.Names() }
