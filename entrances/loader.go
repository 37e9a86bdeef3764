package entrances

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/subway-index/lines"
)

const (
	colID = iota
	colURL
	colName
	colGeom
	colLines
	numCols
)

// Stats summarizes a load.
type Stats struct {
	Rows         int
	Loaded       int
	Skipped      int
	UnknownLines int
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, logger *log.Logger) ([]Entrance, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open entrances file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f, logger)
}

// Load reads entrance rows from r. A nil logger uses log.Default().
func Load(r io.Reader, logger *log.Logger) ([]Entrance, Stats, error) {
	if logger == nil {
		logger = log.Default()
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	csvr.TrimLeadingSpace = true

	var (
		out   []Entrance
		stats Stats
	)
	for line := 1; ; line++ {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, stats, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 && isHeader(row) {
			continue
		}
		stats.Rows++
		e, unknown, err := parseRow(row)
		stats.UnknownLines += len(unknown)
		for _, u := range unknown {
			logger.Printf("entrances: line %d: unknown line %q dropped", line, u)
		}
		if err != nil {
			stats.Skipped++
			logger.Printf("entrances: line %d skipped: %v", line, err)
			continue
		}
		out = append(out, e)
		stats.Loaded++
	}
	return out, stats, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[colID]))
	return err != nil
}

func parseRow(row []string) (Entrance, []string, error) {
	if len(row) < numCols {
		return Entrance{}, nil, fmt.Errorf("expected %d fields, got %d", numCols, len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[colID]))
	if err != nil {
		return Entrance{}, nil, fmt.Errorf("bad id %q: %w", row[colID], err)
	}
	lon, lat, err := ParsePoint(row[colGeom])
	if err != nil {
		return Entrance{}, nil, err
	}

	var (
		mask    lines.Mask
		unknown []string
	)
	for _, name := range lines.Split(row[colLines]) {
		p, ok := lines.Position(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		mask |= lines.Of(p)
	}
	if mask.IsEmpty() {
		return Entrance{}, unknown, fmt.Errorf("no known lines in %q", row[colLines])
	}

	return Entrance{
		ID:    id,
		URL:   strings.TrimSpace(row[colURL]),
		Name:  strings.TrimSpace(row[colName]),
		Lat:   lat,
		Lon:   lon,
		Lines: mask,
	}, unknown, nil
}

// ParsePoint parses a WKT point "POINT (lon lat)" and returns lon, lat.
func ParsePoint(s string) (float64, float64, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(strings.ToUpper(s), "POINT")
	if !ok {
		return 0, 0, fmt.Errorf("bad geometry %q", s)
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "(")
	rest = strings.TrimSuffix(rest, ")")
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad geometry %q", s)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude in %q: %w", s, err)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude in %q: %w", s, err)
	}
	return lon, lat, nil
}
