package density

// coreDistance returns the distance from pointID to its nearest neighbor,
// capped at epsilon. It is defined only when pointID has at least minPts
// neighbors.
func coreDistance(data Dataset, pointID int, neighbors []int, epsilon float64, minPts int, metric Metric) (float64, bool) {
	if len(neighbors) < minPts {
		return 0, false
	}
	core := epsilon
	for _, id := range neighbors {
		if d := metric.Distance(data[pointID], data[id]); d < core {
			core = d
		}
	}
	return core, true
}
