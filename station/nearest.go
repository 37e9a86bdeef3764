package station

import (
	"github.com/theoremus-urban-solutions/subway-index/lines"
	"github.com/theoremus-urban-solutions/subway-index/spatial"
)

func stationCoords(s Station) (float64, float64) { return s.Lat, s.Lon }

// NearestStations returns every station at the minimum distance from
// (lat, lon), with that distance in km.
func (x *Index) NearestStations(lat, lon float64, dist spatial.DistanceFunc) ([]Station, float64) {
	return spatial.Nearest(x.stations.Values(), stationCoords, lat, lon, dist)
}

// NearestLines returns the union of the line masks of the nearest stations.
func (x *Index) NearestLines(lat, lon float64, dist spatial.DistanceFunc) lines.Mask {
	var m lines.Mask
	nearest, _ := x.NearestStations(lat, lon, dist)
	for _, s := range nearest {
		m = m.Union(s.Lines)
	}
	return m
}
