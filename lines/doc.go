// Package lines maps subway line names to bit positions and back.
//
// The set of lines is fixed at compile time. Every line owns exactly one bit
// of a Mask, so an entrance or station that serves several lines carries the
// OR of their bits:
//
//	m, err := lines.Parse("A", "C", "E")
//	m.Has(lines.MustPosition("C")) // true
//	m.Names()                      // [A C E]
package lines
