// Package gtfsrt decodes GTFS-Realtime VehiclePositions feeds and matches
// each vehicle to the subway station(s) nearest to it.
//
// Feeds come either from a local protobuf file or from an HTTP endpoint via
// Client.
package gtfsrt
