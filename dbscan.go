package density

import (
	"context"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// DBSCANResult holds the output of a DBSCAN run.
type DBSCANResult struct {
	// Clusters lists every cluster as point indices in attachment order. The
	// first index of each cluster is the point that started it. A point whose
	// neighborhood was too small still starts a singleton cluster.
	Clusters [][]int

	// Noise lists, in visiting order, the points that had fewer than MinPts
	// neighbors when first visited. Such a point keeps its singleton cluster
	// and may also have been attached to another cluster later.
	Noise []int
}

// DBSCAN clusters points by density reachability.
//
// A DBSCAN only holds configuration; it is safe for concurrent use.
type DBSCAN struct {
	cfg Config
}

// NewDBSCAN returns a DBSCAN engine. Zero-valued fields of cfg take the
// DBSCAN defaults.
func NewDBSCAN(cfg Config) *DBSCAN {
	applyDefaults(&cfg, defaultDBSCANMinPts)
	return &DBSCAN{cfg: cfg}
}

// Config returns the engine configuration with defaults applied.
func (d *DBSCAN) Config() Config { return d.cfg }

// ClusterDBSCAN converts data with LoadDataset and runs DBSCAN over it.
// It fails only when data is not a dataset.
func ClusterDBSCAN(data any, cfg Config) (*DBSCANResult, error) {
	ds, err := LoadDataset(data)
	if err != nil {
		return nil, err
	}
	return NewDBSCAN(cfg).Run(ds), nil
}

// dbscanRun is the state of a single DBSCAN run.
type dbscanRun struct {
	cfg      Config
	data     Dataset
	visited  *bitset.BitSet
	assigned *bitset.BitSet
	clusters [][]int
	noise    []int
}

// Run clusters data. Every call starts from fresh state.
func (d *DBSCAN) Run(data Dataset) *DBSCANResult {
	n := len(data)
	r := &dbscanRun{
		cfg:      d.cfg,
		data:     data,
		visited:  bitset.New(uint(n)),
		assigned: bitset.New(uint(n)),
		clusters: [][]int{},
		noise:    []int{},
	}

	for pointID := range n {
		if r.visited.Test(uint(pointID)) {
			continue
		}
		r.visited.Set(uint(pointID))

		neighbors := r.regionQuery(pointID)

		clusterID := len(r.clusters)
		r.clusters = append(r.clusters, []int{pointID})
		r.assigned.Set(uint(pointID))

		if len(neighbors) < r.cfg.MinPts {
			r.noise = append(r.noise, pointID)
			continue
		}
		r.expandCluster(clusterID, neighbors)
	}

	d.cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dbscan run completed",
		slog.Int("points", n),
		slog.Float64("epsilon", d.cfg.Epsilon),
		slog.Int("min_pts", d.cfg.MinPts),
		slog.Int("clusters", len(r.clusters)),
		slog.Int("noise", len(r.noise)),
	)

	return &DBSCANResult{Clusters: r.clusters, Noise: r.noise}
}

func (r *dbscanRun) regionQuery(pointID int) []int {
	return RegionQuery(r.data, pointID, r.cfg.Epsilon, r.cfg.Metric)
}

// expandCluster attaches every point density-reachable from the frontier to
// the cluster. The frontier may be replaced by a merged frontier while it is
// walked; the walk continues at the same position of the new slice.
func (r *dbscanRun) expandCluster(clusterID int, frontier []int) {
	for i := 0; i < len(frontier); i++ {
		q := frontier[i]

		if !r.visited.Test(uint(q)) {
			r.visited.Set(uint(q))
			if neighbors := r.regionQuery(q); len(neighbors) >= r.cfg.MinPts {
				frontier = UnionMerge(frontier, neighbors)
			}
		}

		if !r.assigned.Test(uint(q)) {
			r.assigned.Set(uint(q))
			r.clusters[clusterID] = append(r.clusters[clusterID], q)
		}
	}
}
