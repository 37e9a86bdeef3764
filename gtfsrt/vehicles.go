package gtfsrt

import (
	"errors"
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/paulmach/orb"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/subway-index/lines"
	"github.com/theoremus-urban-solutions/subway-index/station"
)

// ErrNoStations is returned by a StationLocator with nothing to match against.
var ErrNoStations = errors.New("no stations to match against")

// StationLocator finds the stations closest to a coordinate.
// *subwayindex.System satisfies it.
type StationLocator interface {
	NearestStations(lat, lon float64) ([]station.Station, float64, error)
}

// VehiclePosition is one vehicle report taken from a feed.
type VehiclePosition struct {
	VehicleID string
	TripID    string
	RouteID   string
	Position  orb.Point // lon, lat
	Timestamp int64
}

// VehicleMatch pairs a vehicle report with its nearest station(s).
type VehicleMatch struct {
	VehicleID   string   `json:"vehicle_id"`
	TripID      string   `json:"trip_id,omitempty"`
	RouteID     string   `json:"route_id,omitempty"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Timestamp   int64    `json:"timestamp,omitempty"`
	Stations    []string `json:"stations"`
	DistanceKM  float64  `json:"distance_km"`
	ServesRoute bool     `json:"serves_route"` // a matched station serves RouteID
}

// Decode unmarshals a FeedMessage.
func Decode(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return &fm, nil
}

// Positions extracts every vehicle report that carries coordinates. Reports
// without their own timestamp inherit the header's.
func Positions(fm *gtfsrtpb.FeedMessage) []VehiclePosition {
	var headerTS int64
	if fm.Header != nil && fm.Header.Timestamp != nil {
		headerTS = int64(*fm.Header.Timestamp)
	}

	var out []VehiclePosition
	for _, e := range fm.Entity {
		if e.Vehicle == nil || e.Vehicle.Position == nil {
			continue
		}
		pos := e.Vehicle.Position
		if pos.Latitude == nil || pos.Longitude == nil {
			continue
		}
		vp := VehiclePosition{
			VehicleID: e.GetId(),
			Position:  orb.Point{float64(*pos.Longitude), float64(*pos.Latitude)},
			Timestamp: headerTS,
		}
		if e.Vehicle.Vehicle != nil && e.Vehicle.Vehicle.Id != nil {
			vp.VehicleID = *e.Vehicle.Vehicle.Id
		}
		if e.Vehicle.Trip != nil {
			vp.TripID = e.Vehicle.Trip.GetTripId()
			vp.RouteID = e.Vehicle.Trip.GetRouteId()
		}
		if e.Vehicle.Timestamp != nil {
			vp.Timestamp = int64(*e.Vehicle.Timestamp)
		}
		out = append(out, vp)
	}
	return out
}

// Match finds the nearest station(s) for each vehicle report.
func Match(loc StationLocator, positions []VehiclePosition) ([]VehicleMatch, error) {
	out := make([]VehicleMatch, 0, len(positions))
	for _, vp := range positions {
		lat, lon := vp.Position.Lat(), vp.Position.Lon()
		sts, d, err := loc.NearestStations(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("vehicle %s: %w", vp.VehicleID, err)
		}
		if len(sts) == 0 {
			return nil, fmt.Errorf("vehicle %s: %w", vp.VehicleID, ErrNoStations)
		}

		m := VehicleMatch{
			VehicleID:  vp.VehicleID,
			TripID:     vp.TripID,
			RouteID:    vp.RouteID,
			Lat:        lat,
			Lon:        lon,
			Timestamp:  vp.Timestamp,
			Stations:   make([]string, len(sts)),
			DistanceKM: d,
		}
		route, routeErr := lines.Parse(vp.RouteID)
		for i, st := range sts {
			m.Stations[i] = st.Name
			if routeErr == nil && vp.RouteID != "" && st.Serves(route) {
				m.ServesRoute = true
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// MatchVehicles decodes a VehiclePositions feed and matches every vehicle
// with coordinates.
func MatchVehicles(loc StationLocator, feed []byte) ([]VehicleMatch, error) {
	fm, err := Decode(feed)
	if err != nil {
		return nil, err
	}
	return Match(loc, Positions(fm))
}
