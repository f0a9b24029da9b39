package density

// ExtractDBSCAN derives a DBSCAN-like flat clustering from the OPTICS
// ordering for any threshold not larger than the Epsilon of the run.
//
// The ordering is walked once. A point whose reachability is unset or above
// threshold starts a new cluster when its core distance is defined and at
// most threshold, and is noise otherwise. Every other point joins the
// cluster started last.
func (r *OPTICSResult) ExtractDBSCAN(threshold float64) (clusters [][]int, noise []int) {
	clusters = [][]int{}
	noise = []int{}
	current := -1

	for _, pointID := range r.Ordering {
		reach := r.Reachability[pointID]
		if !reach.Defined || reach.Value > threshold {
			if core := r.CoreDistances[pointID]; core.Defined && core.Value <= threshold {
				clusters = append(clusters, []int{pointID})
				current = len(clusters) - 1
			} else {
				noise = append(noise, pointID)
			}
			continue
		}
		if current < 0 {
			noise = append(noise, pointID)
			continue
		}
		clusters[current] = append(clusters[current], pointID)
	}

	return clusters, noise
}
