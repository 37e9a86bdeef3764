package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/subway-index/commands"
	"github.com/theoremus-urban-solutions/subway-index/gtfsrt"
	"github.com/theoremus-urban-solutions/subway-index/utils"
)

// Writer renders results to an output stream.
type Writer interface {
	WriteResult(Result) error
	WriteVehicle(gtfsrt.VehicleMatch) error
	Flush() error
}

// New returns the writer for format, "text" or "json".
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "", "text":
		return NewText(w), nil
	case "json":
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textWriter struct {
	w *bufio.Writer
}

// NewText renders results in the plain text report format.
func NewText(w io.Writer) Writer {
	return &textWriter{w: bufio.NewWriter(w)}
}

func coord(v float64) string { return strconv.FormatFloat(v, 'g', 12, 64) }

// Heading is the first line printed for a successful result.
func Heading(r Result) string {
	switch r.Kind {
	case commands.ListLineStations:
		return "Stations serving Line " + r.Line + ":"
	case commands.ListAllStations:
		return "All stations:"
	case commands.ListEntrances:
		return "The entrances for station '" + r.Station + "' are:"
	case commands.NearestStation:
		return "Stations nearest to " + coord(r.Point.Lat) + ", " + coord(r.Point.Lon) + ":"
	case commands.NearestLines:
		return "Nearest lines to " + coord(r.Point.Lat) + ", " + coord(r.Point.Lon) + ":"
	case commands.NearestEntrance:
		return "Nearest entrances to " + coord(r.Point.Lat) + ", " + coord(r.Point.Lon) + ":"
	}
	return ""
}

func (t *textWriter) WriteResult(r Result) error {
	var b strings.Builder
	switch {
	case r.Kind == commands.Bad:
		// no trailing blank line
		b.WriteString(r.Error + "\n")
	case r.Error != "":
		b.WriteString(r.Error + "\n\n")
	default:
		b.WriteString(Heading(r) + "\n")
		for _, n := range r.Names {
			b.WriteString(n + "\n")
		}
		b.WriteString("\n")
	}
	_, err := t.w.WriteString(b.String())
	return err
}

func (t *textWriter) WriteVehicle(m gtfsrt.VehicleMatch) error {
	label := "Vehicle " + m.VehicleID
	if m.RouteID != "" {
		label += " (route " + m.RouteID + ")"
	}
	when := utils.Iso8601FromUnixSeconds(m.Timestamp)
	if when == "" {
		when = "unknown time"
	}
	_, err := fmt.Fprintf(t.w, "%s at %s, %s [%s]: %s, %s\n",
		label, coord(m.Lat), coord(m.Lon), when,
		strings.Join(m.Stations, " / "), utils.PresentableDistance(m.DistanceKM))
	return err
}

func (t *textWriter) Flush() error { return t.w.Flush() }
