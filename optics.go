package density

import (
	"context"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// OPTICSResult holds the output of an OPTICS run.
type OPTICSResult struct {
	// Clusters groups the ordering: a new cluster starts each time the scan
	// meets a point that no earlier expansion reached.
	Clusters [][]int

	// Ordering lists the points in the order OPTICS processed them.
	Ordering []int

	// Reachability holds, per point index, the smallest reachability distance
	// recorded for the point. Cluster seeds stay unset.
	Reachability []Reachability

	// CoreDistances holds, per point index, the core distance computed when
	// the point was processed. Points with fewer than MinPts neighbors stay
	// unset.
	CoreDistances []Reachability
}

// OPTICS orders points by density reachability.
//
// An OPTICS only holds configuration; it is safe for concurrent use.
type OPTICS struct {
	cfg Config
}

// NewOPTICS returns an OPTICS engine. Zero-valued fields of cfg take the
// OPTICS defaults.
func NewOPTICS(cfg Config) *OPTICS {
	applyDefaults(&cfg, defaultOPTICSMinPts)
	return &OPTICS{cfg: cfg}
}

// Config returns the engine configuration with defaults applied.
func (o *OPTICS) Config() Config { return o.cfg }

// ClusterOPTICS converts data with LoadDataset and runs OPTICS over it.
// It fails only when data is not a dataset.
func ClusterOPTICS(data any, cfg Config) (*OPTICSResult, error) {
	ds, err := LoadDataset(data)
	if err != nil {
		return nil, err
	}
	return NewOPTICS(cfg).Run(ds), nil
}

// opticsRun is the state of a single OPTICS run.
type opticsRun struct {
	cfg           Config
	data          Dataset
	processed     *bitset.BitSet
	reachability  []Reachability
	coreDistances []Reachability
	ordering      []int
	clusters      [][]int
}

// Run computes the OPTICS ordering of data. Every call starts from fresh
// state.
func (o *OPTICS) Run(data Dataset) *OPTICSResult {
	n := len(data)
	r := &opticsRun{
		cfg:           o.cfg,
		data:          data,
		processed:     bitset.New(uint(n)),
		reachability:  make([]Reachability, n),
		coreDistances: make([]Reachability, n),
		ordering:      make([]int, 0, n),
		clusters:      [][]int{},
	}

	for pointID := range n {
		if r.processed.Test(uint(pointID)) {
			continue
		}
		r.processed.Set(uint(pointID))
		r.clusters = append(r.clusters, []int{pointID})
		clusterID := len(r.clusters) - 1
		r.ordering = append(r.ordering, pointID)

		neighbors := r.regionQuery(pointID)
		core, ok := r.coreDistance(pointID, neighbors)
		if !ok {
			continue
		}
		queue := NewPriorityQueue[int, float64](Ascending)
		r.updateQueue(pointID, neighbors, core, queue)
		r.expandCluster(clusterID, queue)
	}

	o.cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "optics run completed",
		slog.Int("points", n),
		slog.Float64("epsilon", o.cfg.Epsilon),
		slog.Int("min_pts", o.cfg.MinPts),
		slog.Int("clusters", len(r.clusters)),
		slog.Int("ordered", len(r.ordering)),
	)

	return &OPTICSResult{
		Clusters:      r.clusters,
		Ordering:      r.ordering,
		Reachability:  r.reachability,
		CoreDistances: r.coreDistances,
	}
}

func (r *opticsRun) regionQuery(pointID int) []int {
	return RegionQuery(r.data, pointID, r.cfg.Epsilon, r.cfg.Metric)
}

// coreDistance computes the core distance of pointID and records it.
func (r *opticsRun) coreDistance(pointID int, neighbors []int) (float64, bool) {
	core, ok := coreDistance(r.data, pointID, neighbors, r.cfg.Epsilon, r.cfg.MinPts, r.cfg.Metric)
	if ok {
		r.coreDistances[pointID] = DefinedAt(core)
	}
	return core, ok
}

// updateQueue offers every unprocessed neighbor of pointID to the queue at
// its reachability distance max(core, d(pointID, q)). A neighbor already
// queued is moved only when the new distance is smaller.
func (r *opticsRun) updateQueue(pointID int, neighbors []int, core float64, queue *PriorityQueue[int, float64]) {
	for _, q := range neighbors {
		if r.processed.Test(uint(q)) {
			continue
		}
		reach := max(core, r.cfg.Metric.Distance(r.data[pointID], r.data[q]))

		switch prev := r.reachability[q]; {
		case !prev.Defined:
			r.reachability[q] = DefinedAt(reach)
			queue.Insert(q, reach)
		case reach < prev.Value:
			r.reachability[q] = DefinedAt(reach)
			queue.Remove(q)
			queue.Insert(q, reach)
		}
	}
}

// expandCluster processes queued points nearest-first until every queued
// point is processed. Processing a core point updates the queue, after which
// the walk starts over from the front so that closer points inserted behind
// the current position are picked up first.
func (r *opticsRun) expandCluster(clusterID int, queue *PriorityQueue[int, float64]) {
	for i := 0; i < queue.Len(); i++ {
		pointID := queue.At(i)
		if r.processed.Test(uint(pointID)) {
			continue
		}

		neighbors := r.regionQuery(pointID)
		r.processed.Set(uint(pointID))
		r.clusters[clusterID] = append(r.clusters[clusterID], pointID)
		r.ordering = append(r.ordering, pointID)

		if core, ok := r.coreDistance(pointID, neighbors); ok {
			r.updateQueue(pointID, neighbors, core, queue)
			i = -1
		}
	}
}
