// Package utils provides small helpers shared by the subway index packages.
//
// It contains:
//   - Great-circle distance functions (haversine, orb)
//   - Distance presentation for human readable output
//   - Time formatting for feed timestamps
//   - Shared unit constants
package utils
