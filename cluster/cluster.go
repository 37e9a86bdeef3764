package cluster

import (
	"fmt"

	"github.com/theoremus-urban-solutions/subway-index/lines"
	"github.com/theoremus-urban-solutions/subway-index/spatial"
)

// DefaultThresholdKM is the largest hop between two entrances of one station.
const DefaultThresholdKM = 0.28

// Item is the part of an entrance the clusterer needs.
type Item struct {
	Lat, Lon float64
	Lines    lines.Mask
}

// Group is one finalized set.
type Group struct {
	Root     int
	Members  []int // root first, then ascending
	Lines    lines.Mask
	Lat, Lon float64 // centroid
}

// Clusterer is a union-by-size forest with path compression. parent is -1
// at roots; size is only meaningful at roots.
type Clusterer struct {
	threshold float64
	dist      spatial.DistanceFunc
	items     []Item
	parent    []int
	size      []int
	geo       *geoIndex
}

// New creates a clusterer. A non-positive threshold uses DefaultThresholdKM.
func New(threshold float64, dist spatial.DistanceFunc) *Clusterer {
	if threshold <= 0 {
		threshold = DefaultThresholdKM
	}
	return &Clusterer{threshold: threshold, dist: dist}
}

// NewGeo creates a clusterer for coordinates in degrees that looks up merge
// candidates in an R-tree instead of scanning every earlier item. It groups
// exactly like New for thresholds of a few kilometers away from the poles,
// provided dist is never more than 10% below the great-circle distance on a
// sphere of radius utils.EarthRadiusKM.
func NewGeo(threshold float64, dist spatial.DistanceFunc) *Clusterer {
	c := New(threshold, dist)
	c.geo = newGeoIndex()
	return c
}

// Add appends it and merges it with the first qualifying earlier item.
// It returns the index of the new item.
func (c *Clusterer) Add(it Item) int {
	idx := len(c.items)
	c.items = append(c.items, it)
	c.parent = append(c.parent, -1)
	c.size = append(c.size, 1)

	if c.geo != nil {
		for _, i := range c.geo.candidates(it.Lat, it.Lon, c.threshold) {
			if c.qualifies(i, it) {
				c.union(c.Find(i), c.Find(idx))
				break
			}
		}
		c.geo.insert(idx, it)
		return idx
	}

	for i := 0; i < idx; i++ {
		if c.qualifies(i, it) {
			c.union(c.Find(i), c.Find(idx))
			break
		}
	}
	return idx
}

func (c *Clusterer) qualifies(i int, it Item) bool {
	prev := c.items[i]
	return prev.Lines == it.Lines && c.dist(it.Lat, it.Lon, prev.Lat, prev.Lon) <= c.threshold
}

// Find returns the root of x and points every element on the way directly
// at it. Compression never changes a root's size.
func (c *Clusterer) Find(x int) int {
	root := x
	for c.parent[root] >= 0 {
		root = c.parent[root]
	}
	for x != root {
		next := c.parent[x]
		c.parent[x] = root
		x = next
	}
	return root
}

// union merges two roots; the bigger set absorbs the smaller, the earlier
// root wins a tie.
func (c *Clusterer) union(a, b int) {
	if a == b {
		return
	}
	if c.size[b] > c.size[a] || (c.size[b] == c.size[a] && b < a) {
		a, b = b, a
	}
	c.parent[b] = a
	c.size[a] += c.size[b]
	c.size[b] = 0
}

// Len is the number of items added.
func (c *Clusterer) Len() int { return len(c.items) }

// Sets is the number of disjoint sets.
func (c *Clusterer) Sets() int {
	n := 0
	for _, p := range c.parent {
		if p < 0 {
			n++
		}
	}
	return n
}

// SetSize returns the size of the set holding x.
func (c *Clusterer) SetSize(x int) int { return c.size[c.Find(x)] }

// CheckSizes verifies that root sizes add up to Len and match the real
// membership of every root.
func (c *Clusterer) CheckSizes() error {
	counts := make(map[int]int)
	for i := range c.items {
		counts[c.Find(i)]++
	}
	total := 0
	for i, p := range c.parent {
		if p >= 0 {
			continue
		}
		total += c.size[i]
		if counts[i] != c.size[i] {
			return fmt.Errorf("root %d: size %d, members %d", i, c.size[i], counts[i])
		}
	}
	if total != len(c.items) {
		return fmt.Errorf("root sizes sum to %d, want %d", total, len(c.items))
	}
	return nil
}

// Finalize compresses every chain and returns one Group per root, ordered by
// root index.
func (c *Clusterer) Finalize() []Group {
	members := make(map[int][]int)
	for i := range c.items {
		r := c.Find(i)
		if i != r {
			members[r] = append(members[r], i)
		}
	}

	groups := make([]Group, 0, c.Sets())
	for r, p := range c.parent {
		if p >= 0 {
			continue
		}
		ms := append([]int{r}, members[r]...)
		var lat, lon float64
		for _, m := range ms {
			lat += c.items[m].Lat
			lon += c.items[m].Lon
		}
		n := float64(len(ms))
		groups = append(groups, Group{
			Root:    r,
			Members: ms,
			Lines:   c.items[r].Lines,
			Lat:     lat / n,
			Lon:     lon / n,
		})
	}
	return groups
}
