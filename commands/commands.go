// Package commands parses query command files.
//
// A command file holds one command per line. Blank lines and lines starting
// with '#' are ignored:
//
//	list_all_stations
//	list_line_stations L
//	list_entrances Union Sq - 14th St
//	nearest_station 40.7359 -73.9906
//	nearest_lines 40.7359 -73.9906
//	nearest_entrance 40.7359 -73.9906
//
// Lines that do not match the grammar come back as Bad commands so the
// caller can report them and continue.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind identifies a command.
type Kind int

const (
	Bad Kind = iota
	ListLineStations
	ListAllStations
	ListEntrances
	NearestStation
	NearestLines
	NearestEntrance
)

var kindNames = map[string]Kind{
	"list_line_stations": ListLineStations,
	"list_all_stations":  ListAllStations,
	"list_entrances":     ListEntrances,
	"nearest_station":    NearestStation,
	"nearest_lines":      NearestLines,
	"nearest_entrance":   NearestEntrance,
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "bad_command"
}

// Command is one parsed line. Only the fields relevant to Kind are set.
type Command struct {
	Kind    Kind
	Line    string  // ListLineStations
	Station string  // ListEntrances
	Lat     float64 // Nearest*
	Lon     float64 // Nearest*
	Raw     string
	Err     error // why a Bad command was rejected
}

// Parse reads every command from r. Only read errors are returned; malformed
// lines become Bad commands.
func Parse(r io.Reader) ([]Command, error) {
	var out []Command
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, ParseLine(text))
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("reading commands: %w", err)
	}
	return out, nil
}

// ParseLine parses a single command.
func ParseLine(text string) Command {
	raw := strings.TrimSpace(text)
	fields := strings.Fields(raw)
	bad := func(format string, args ...any) Command {
		return Command{Kind: Bad, Raw: raw, Err: fmt.Errorf(format, args...)}
	}
	if len(fields) == 0 {
		return bad("empty command")
	}
	kind, ok := kindNames[strings.ToLower(fields[0])]
	if !ok {
		return bad("unknown command %q", fields[0])
	}
	args := fields[1:]
	cmd := Command{Kind: kind, Raw: raw}

	switch kind {
	case ListAllStations:
		if len(args) != 0 {
			return bad("%s takes no arguments", kind)
		}
	case ListLineStations:
		if len(args) != 1 {
			return bad("%s takes one line name", kind)
		}
		cmd.Line = args[0]
	case ListEntrances:
		if len(args) == 0 {
			return bad("%s needs a station name", kind)
		}
		// Fields already collapsed repeated spaces
		cmd.Station = strings.Join(args, " ")
	case NearestStation, NearestLines, NearestEntrance:
		if len(args) != 2 {
			return bad("%s takes latitude and longitude", kind)
		}
		lat, err := parseCoord(args[0], 90)
		if err != nil {
			return bad("latitude: %w", err)
		}
		lon, err := parseCoord(args[1], 180)
		if err != nil {
			return bad("longitude: %w", err)
		}
		cmd.Lat, cmd.Lon = lat, lon
	}
	return cmd
}

func parseCoord(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || v < -limit || v > limit {
		return 0, fmt.Errorf("%v out of range", v)
	}
	return v, nil
}
