// Package entrances reads subway entrance records from the NYC open data
// CSV export.
//
// Each row is
//
//	id,url,name,POINT (lon lat),lines
//
// where lines is one line name ("A", "SIR") or a dash-joined list ("2-3",
// "A-C-E"). An optional header row is skipped. Rows that cannot be parsed
// are logged and skipped; unknown line names are logged and dropped from
// the row's mask.
package entrances
