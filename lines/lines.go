package lines

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLine is returned for names outside the declared line set.
var ErrUnknownLine = errors.New("unknown line")

// declared holds the line names in bit order: A is bit 0, GS is bit 25.
var declared = [...]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "J", "L", "M", "N", "Q", "R", "S", "Z",
	"1", "2", "3", "4", "5", "6", "7",
	"SIR", "FS", "GS",
}

// Count is the number of declared lines.
const Count = len(declared)

var positions = func() map[string]int {
	m := make(map[string]int, Count)
	for i, n := range declared {
		m[n] = i
	}
	return m
}()

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Position returns the bit position of a line name.
func Position(name string) (int, bool) {
	p, ok := positions[normalize(name)]
	return p, ok
}

// MustPosition is Position for names known to be declared. It panics otherwise.
func MustPosition(name string) int {
	p, ok := Position(name)
	if !ok {
		panic(fmt.Sprintf("lines: %q is not a declared line", name))
	}
	return p
}

// Name returns the line name at pos, or "" when pos is out of range.
func Name(pos int) string {
	if pos < 0 || pos >= Count {
		return ""
	}
	return declared[pos]
}

// Names returns all declared line names in bit order.
func Names() []string {
	out := make([]string, Count)
	copy(out, declared[:])
	return out
}

// Parse builds a mask from line names. Unknown names fail the whole parse.
func Parse(names ...string) (Mask, error) {
	var m Mask
	for _, n := range names {
		p, ok := Position(n)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownLine, n)
		}
		m |= Of(p)
	}
	return m, nil
}

// Split breaks a dash-joined line list such as "A-C-E" into its tokens.
// Single tokens like "SIR" come back unchanged. Empty tokens are dropped.
func Split(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	parts := strings.Split(field, "-")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
