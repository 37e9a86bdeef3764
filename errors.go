package subwayindex

import (
	"errors"

	"github.com/theoremus-urban-solutions/subway-index/hashtable"
	"github.com/theoremus-urban-solutions/subway-index/lines"
)

var (
	// ErrNotFound is returned when a station, line or nearest result does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotFinalized is returned by queries issued before Finalize.
	ErrNotFinalized = errors.New("subway system not finalized")
	// ErrFinalized is returned by Ingest or Finalize after Finalize.
	ErrFinalized = errors.New("subway system already finalized")
	// ErrUnknownLine is returned for line names outside the declared set.
	ErrUnknownLine = lines.ErrUnknownLine
	// ErrIndexExhausted means a hash index ran out of reachable slots.
	ErrIndexExhausted = hashtable.ErrExhausted
)
