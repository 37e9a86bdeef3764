package formatter

import (
	"errors"
	"strings"

	subwayindex "github.com/theoremus-urban-solutions/subway-index"
	"github.com/theoremus-urban-solutions/subway-index/commands"
)

// Querier answers the queries a command file can issue.
// *subwayindex.System satisfies it.
type Querier interface {
	ListLineStations(line string) ([]string, error)
	ListAllStations() ([]string, error)
	ListEntrances(station string) ([]string, error)
	NearestStation(lat, lon float64) ([]string, error)
	NearestLines(lat, lon float64) ([]string, error)
	NearestEntrance(lat, lon float64) ([]string, error)
}

// Point is a query coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Result is the outcome of one command.
type Result struct {
	Kind    commands.Kind `json:"-"`
	Command string        `json:"command"`
	Line    string        `json:"line,omitempty"`
	Station string        `json:"station,omitempty"`
	Point   *Point        `json:"point,omitempty"`
	Names   []string      `json:"results"`
	Error   string        `json:"error,omitempty"`
}

// Evaluate runs cmd against q. Missing lines and stations and invalid
// commands are reported inside the Result. Any other error is returned.
func Evaluate(q Querier, cmd commands.Command) (Result, error) {
	res := Result{Kind: cmd.Kind, Command: cmd.Kind.String(), Names: []string{}}
	var (
		names []string
		err   error
	)

	switch cmd.Kind {
	case commands.ListLineStations:
		res.Line = strings.ToUpper(cmd.Line)
		names, err = q.ListLineStations(cmd.Line)
		if errors.Is(err, subwayindex.ErrUnknownLine) || errors.Is(err, subwayindex.ErrNotFound) {
			res.Error = "Line named '" + res.Line + "' does not exist"
			return res, nil
		}
	case commands.ListAllStations:
		names, err = q.ListAllStations()
	case commands.ListEntrances:
		res.Station = cmd.Station
		names, err = q.ListEntrances(cmd.Station)
		if errors.Is(err, subwayindex.ErrNotFound) {
			res.Error = "Station '" + res.Station + "' does not exist"
			return res, nil
		}
	case commands.NearestStation, commands.NearestLines, commands.NearestEntrance:
		res.Point = &Point{Lat: cmd.Lat, Lon: cmd.Lon}
		names, err = nearest(q, cmd)
		if errors.Is(err, subwayindex.ErrNotFound) {
			// nothing indexed: an empty answer
			return res, nil
		}
	default:
		res.Error = "Invalid command"
		return res, nil
	}
	if err != nil {
		return res, err
	}
	if names != nil {
		res.Names = names
	}
	return res, nil
}

func nearest(q Querier, cmd commands.Command) ([]string, error) {
	switch cmd.Kind {
	case commands.NearestStation:
		return q.NearestStation(cmd.Lat, cmd.Lon)
	case commands.NearestLines:
		return q.NearestLines(cmd.Lat, cmd.Lon)
	default:
		return q.NearestEntrance(cmd.Lat, cmd.Lon)
	}
}
