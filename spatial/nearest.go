// Package spatial holds the distance contract and the nearest-neighbor scan
// shared by station, line and entrance queries.
package spatial

import (
	"iter"
	"math"
)

// DistanceFunc returns the great-circle distance in kilometers between two
// points given in degrees.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// Nearest scans seq and returns every item at the minimum distance from
// (lat, lon), in scan order, together with that distance. A strictly closer
// item replaces the result set; an item at exactly the same distance is
// appended. An empty sequence returns nil and +Inf.
func Nearest[T any](seq iter.Seq[T], at func(T) (float64, float64), lat, lon float64, dist DistanceFunc) ([]T, float64) {
	var out []T
	best := math.Inf(1)
	for item := range seq {
		ilat, ilon := at(item)
		d := dist(lat, lon, ilat, ilon)
		switch {
		case out == nil || d < best:
			best = d
			out = append(out[:0], item)
		case d == best:
			out = append(out, item)
		}
	}
	return out, best
}

// Slice adapts a slice to the sequence Nearest expects.
func Slice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}
