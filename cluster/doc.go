// Package cluster groups entrances into stations with a disjoint-set forest.
//
// An item joins the first earlier item that carries exactly the same line
// mask and lies within the distance threshold. Groups therefore chain: three
// entrances 0.1 km apart end up together even though the outer two are only
// connected through the middle one.
//
// NewGeo looks merge candidates up in an R-tree and produces the same groups
// for coordinates in degrees.
package cluster
