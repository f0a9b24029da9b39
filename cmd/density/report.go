package main

import "github.com/TrevorS/density"

type dbscanReport struct {
	Algorithm string  `json:"algorithm"`
	Clusters  [][]int `json:"clusters"`
	Noise     []int   `json:"noise"`
	Labels    []int   `json:"labels"`
}

func newDBSCANReport(r *density.DBSCANResult) dbscanReport {
	return dbscanReport{
		Algorithm: "dbscan",
		Clusters:  r.Clusters,
		Noise:     r.Noise,
		Labels:    r.Labels(),
	}
}

type extraction struct {
	Threshold float64 `json:"threshold"`
	Clusters  [][]int `json:"clusters"`
	Noise     []int   `json:"noise"`
}

type opticsReport struct {
	Algorithm        string                 `json:"algorithm"`
	Clusters         [][]int                `json:"clusters"`
	Ordering         []int                  `json:"ordering"`
	ReachabilityPlot []density.PlotPoint    `json:"reachability_plot"`
	CoreDistances    []density.Reachability `json:"core_distances"`
	Extraction       *extraction            `json:"extraction,omitempty"`
}

// newOPTICSReport builds the OPTICS output. A positive threshold adds a flat
// clustering extracted from the ordering.
func newOPTICSReport(r *density.OPTICSResult, threshold float64) opticsReport {
	rep := opticsReport{
		Algorithm:        "optics",
		Clusters:         r.Clusters,
		Ordering:         r.Ordering,
		ReachabilityPlot: r.ReachabilityPlot(),
		CoreDistances:    r.CoreDistances,
	}
	if threshold > 0 {
		clusters, noise := r.ExtractDBSCAN(threshold)
		rep.Extraction = &extraction{Threshold: threshold, Clusters: clusters, Noise: noise}
	}
	return rep
}
