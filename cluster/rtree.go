package cluster

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/theoremus-urban-solutions/subway-index/utils"
)

const (
	// kmPerDegree of latitude on the utils.EarthRadiusKM sphere.
	kmPerDegree  = 2 * math.Pi * utils.EarthRadiusKM / 360
	searchMargin = 1.1
	pointTol     = 1e-9
)

type treeItem struct {
	rect  rtreego.Rect
	index int
}

func (item treeItem) Bounds() rtreego.Rect {
	return item.rect
}

// geoIndex finds earlier items near a coordinate. Boxes do not wrap the
// antimeridian.
type geoIndex struct {
	tree *rtreego.Rtree
}

func newGeoIndex() *geoIndex {
	return &geoIndex{tree: rtreego.NewTree(2, 25, 50)}
}

func (g *geoIndex) insert(index int, it Item) {
	rect := rtreego.Point{it.Lat, it.Lon}.ToRect(pointTol)
	g.tree.Insert(treeItem{rect: rect, index: index})
}

// candidates returns, ascending, every indexed item that may lie within km
// of (lat, lon).
func (g *geoIndex) candidates(lat, lon, km float64) []int {
	tol := km / kmPerDegree * searchMargin
	if cos := math.Cos(lat * math.Pi / 180); cos > 1e-6 {
		tol /= cos
	} else {
		tol = 360
	}
	hits := g.tree.SearchIntersect(rtreego.Point{lat, lon}.ToRect(tol))
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.(treeItem).index
	}
	slices.Sort(out)
	return out
}
