package utils

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKM is the mean radius used by HaversineKM.
	EarthRadiusKM     = 6372.8
	MilesPerKilometer = 0.621371
	FeetPerMile       = 5280.0
)

// HaversineKM returns the great-circle distance in kilometers between two
// points given in degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(a))
}

// OrbHaversineKM is HaversineKM computed by orb/geo on the WGS84 radius.
func OrbHaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}) / 1000
}

// PresentableDistance formats a distance to a station for display.
func PresentableDistance(km float64) string {
	const (
		atStationFt   = 100.0
		approachingFt = 500.0
		showMilesMi   = 0.5
	)
	mi := km * MilesPerKilometer
	if mi > showMilesMi {
		return fmt.Sprintf("%.2g mile%s", mi, ternary(mi == 1, "", "s"))
	}
	ft := mi * FeetPerMile
	if ft < atStationFt {
		return "at station"
	}
	if ft < approachingFt {
		return "approaching"
	}
	return fmt.Sprintf("%.0f ft", ft)
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
