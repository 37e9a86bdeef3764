package lines

import (
	"math/bits"
	"strings"
)

// Mask is a set of lines, one bit per declared line.
type Mask uint64

// Of returns the single-bit mask for pos. Out-of-range positions yield 0.
func Of(pos int) Mask {
	if pos < 0 || pos >= Count {
		return 0
	}
	return Mask(1) << uint(pos)
}

// All returns the mask with every declared line set.
func All() Mask {
	return Mask(1)<<uint(Count) - 1
}

// Has reports whether the line at pos is in m.
func (m Mask) Has(pos int) bool {
	b := Of(pos)
	return b != 0 && m&b == b
}

// Contains reports whether every line in other is also in m.
func (m Mask) Contains(other Mask) bool { return m&other == other }

// Union returns m | other.
func (m Mask) Union(other Mask) Mask { return m | other }

// Len is the number of lines in m.
func (m Mask) Len() int { return bits.OnesCount64(uint64(m & All())) }

// IsEmpty reports whether no declared line is set.
func (m Mask) IsEmpty() bool { return m&All() == 0 }

// Positions returns the set bit positions in ascending order.
func (m Mask) Positions() []int {
	out := make([]int, 0, m.Len())
	for p := 0; p < Count; p++ {
		if m.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the line names in m in declaration order.
func (m Mask) Names() []string {
	ps := m.Positions()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = declared[p]
	}
	return out
}

func (m Mask) String() string { return strings.Join(m.Names(), "-") }
