package formatter

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/theoremus-urban-solutions/subway-index/gtfsrt"
)

type jsonWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSON renders one JSON object per line.
func NewJSON(w io.Writer) Writer {
	bw := bufio.NewWriter(w)
	return &jsonWriter{w: bw, enc: json.NewEncoder(bw)}
}

func (j *jsonWriter) WriteResult(r Result) error { return j.enc.Encode(r) }

func (j *jsonWriter) WriteVehicle(m gtfsrt.VehicleMatch) error { return j.enc.Encode(m) }

func (j *jsonWriter) Flush() error { return j.w.Flush() }
