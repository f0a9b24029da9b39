// Package density implements density-based clustering over points in an
// arbitrary metric space: DBSCAN (Density-Based Spatial Clustering of
// Applications with Noise) and OPTICS (Ordering Points To Identify the
// Clustering Structure).
//
// Both algorithms find neighbors with a brute-force region query: a point's
// neighbors are all other points strictly closer than Epsilon under the
// configured Metric. A point with at least MinPts neighbors is a core point.
//
// Basic usage:
//
//	cfg := density.DefaultDBSCANConfig()
//	cfg.Epsilon = 5
//	result := density.NewDBSCAN(cfg).Run(data)
//	// result.Clusters[k] lists the point indices of cluster k in the order
//	// they were attached; result.Noise lists points whose neighborhood was
//	// too small when first visited.
//
// OPTICS produces an ordering of the points plus a reachability distance per
// point, from which a reachability plot and flat clusterings are derived:
//
//	cfg := density.DefaultOPTICSConfig()
//	cfg.Epsilon, cfg.MinPts = 2, 2
//	result := density.NewOPTICS(cfg).Run(data)
//	for _, p := range result.ReachabilityPlot() {
//		fmt.Println(p.Index, p.Reachability)
//	}
//
// # Input from untyped sources
//
// Data decoded from JSON or other dynamic sources can be passed to
// [ClusterDBSCAN] and [ClusterOPTICS], which convert it with [LoadDataset]
// and report an [InvalidDatasetError] when the value is not a sequence of
// points.
//
// # Ordering
//
// Cluster membership order, the OPTICS ordering and the order of clusters are
// deterministic and part of the results: running the same configuration over
// the same dataset always yields identical slices.
//
// # Concurrency
//
// A single run is sequential. Engines only hold configuration, so one
// [DBSCAN] or [OPTICS] value may be shared by goroutines running independent
// clusterings; [Sweep] and [SweepOPTICS] do this for parameter sweeps.
package density
