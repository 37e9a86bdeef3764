/*
Package station holds stations and lines and the two hash indexes over them.

Stations are keyed by display name, case-insensitively. Lines are keyed by
line name and each carries a copy of every station that serves it:

	idx := station.NewIndex(station.IndexOptions{})
	idx.AddStation(station.Station{Name: "Union Sq", Lines: m, Lat: 40.73, Lon: -73.99})
	idx.BuildLines()

	s, ok := idx.FindStation("UNION SQ")
	l, ok := idx.FindLine("L")

# Capacities

The station table starts at 977 slots and rehashes to 1973; the line table
starts at 59 and rehashes to 127. Both comfortably hold the NYC system (about
450 stations, 26 lines) at under half load.

# Nearest queries

NearestStations and NearestLines scan every active station. Stations at the
exact same distance are all returned.
*/
package station
