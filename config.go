package density

import (
	"log/slog"
)

// Config controls DBSCAN and OPTICS clustering behavior.
// Start with [DefaultDBSCANConfig] or [DefaultOPTICSConfig] and override the
// fields you need. Zero-valued fields are replaced by the engine defaults.
type Config struct {
	// Epsilon is the neighborhood radius. Two points are neighbors when their
	// distance is strictly less than Epsilon. A negative radius finds no
	// neighbors at all. Default: 1.
	Epsilon float64

	// MinPts is the number of neighbors (excluding the point itself) a point
	// needs to be a core point. Default: 2 for DBSCAN, 1 for OPTICS.
	MinPts int

	// Metric is the distance function used to measure point similarity.
	// Built-in: EuclideanMetric, ManhattanMetric, ChebyshevMetric,
	// MinkowskiMetric, CosineMetric. Use DistanceFunc to wrap a custom
	// function. Default: EuclideanMetric.
	Metric Metric

	// Logger receives one debug record per run. Default: discards output.
	Logger *slog.Logger
}

const (
	defaultEpsilon      = 1
	defaultDBSCANMinPts = 2
	defaultOPTICSMinPts = 1
)

// DefaultDBSCANConfig returns the DBSCAN defaults: Epsilon 1, MinPts 2,
// Euclidean distance.
func DefaultDBSCANConfig() Config {
	return Config{
		Epsilon: defaultEpsilon,
		MinPts:  defaultDBSCANMinPts,
		Metric:  EuclideanMetric{},
	}
}

// DefaultOPTICSConfig returns the OPTICS defaults: Epsilon 1, MinPts 1,
// Euclidean distance.
func DefaultOPTICSConfig() Config {
	return Config{
		Epsilon: defaultEpsilon,
		MinPts:  defaultOPTICSMinPts,
		Metric:  EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config, minPts int) {
	if cfg.Epsilon == 0 {
		cfg.Epsilon = defaultEpsilon
	}
	if cfg.MinPts == 0 {
		cfg.MinPts = minPts
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}
