package density

// LabelsFromClusters assigns each of n points the index of the cluster that
// lists it, or -1 when no cluster does. A point listed by several clusters
// keeps the first one.
func LabelsFromClusters(clusters [][]int, n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for c, members := range clusters {
		for _, id := range members {
			if id >= 0 && id < n && labels[id] == -1 {
				labels[id] = c
			}
		}
	}
	return labels
}

// Labels returns the cluster index of every point. Each point of a DBSCAN
// run belongs to exactly one cluster, including noise points, which keep the
// singleton cluster they started.
func (r *DBSCANResult) Labels() []int {
	n := 0
	for _, members := range r.Clusters {
		n += len(members)
	}
	return LabelsFromClusters(r.Clusters, n)
}

// Labels returns the cluster index of every point, or -1 for points the run
// never ordered.
func (r *OPTICSResult) Labels() []int {
	return LabelsFromClusters(r.Clusters, len(r.Reachability))
}
