package subwayindex

import (
	"log"

	"github.com/theoremus-urban-solutions/subway-index/cluster"
	"github.com/theoremus-urban-solutions/subway-index/config"
	"github.com/theoremus-urban-solutions/subway-index/spatial"
	"github.com/theoremus-urban-solutions/subway-index/station"
	"github.com/theoremus-urban-solutions/subway-index/utils"
)

type options struct {
	dist      spatial.DistanceFunc
	threshold float64
	rtree     bool
	index     station.IndexOptions
	logger    *log.Logger
}

// Option configures a System.
type Option func(*options)

// WithDistance replaces the great-circle distance function.
func WithDistance(fn spatial.DistanceFunc) Option {
	return func(o *options) { o.dist = fn }
}

// WithThreshold sets the largest entrance-to-entrance hop, in km, inside a station.
func WithThreshold(km float64) Option {
	return func(o *options) { o.threshold = km }
}

// WithRTree looks up clustering candidates in an R-tree. Coordinates must be
// degrees and the distance function a great-circle distance.
func WithRTree() Option {
	return func(o *options) { o.rtree = true }
}

// WithIndexOptions sizes the station and line tables.
func WithIndexOptions(idx station.IndexOptions) Option {
	return func(o *options) { o.index = idx }
}

// WithLogger sets the logger used for build summaries.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// DistanceByName maps a configured distance name to its function.
func DistanceByName(name string) spatial.DistanceFunc {
	if name == "orb" {
		return utils.OrbHaversineKM
	}
	return utils.HaversineKM
}

// OptionsFromConfig translates an AppConfig into System options.
func OptionsFromConfig(cfg config.AppConfig) []Option {
	opts := []Option{
		WithDistance(DistanceByName(cfg.Distance)),
		WithThreshold(cfg.Cluster.ThresholdKM),
		WithIndexOptions(station.IndexOptions{
			StationCapacity:       cfg.Index.StationCapacity,
			StationRehashCapacity: cfg.Index.StationRehashCapacity,
			LineCapacity:          cfg.Index.LineCapacity,
			LineRehashCapacity:    cfg.Index.LineRehashCapacity,
		}),
	}
	if cfg.Cluster.SpatialIndex == "rtree" {
		opts = append(opts, WithRTree())
	}
	return opts
}

func buildOptions(opts []Option) options {
	o := options{
		dist:      utils.HaversineKM,
		threshold: cluster.DefaultThresholdKM,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}
