package density

// RegionQuery returns the indices of all points other than pointID whose
// distance to data[pointID] is strictly less than epsilon, in ascending
// index order. The scan is linear in len(data).
func RegionQuery(data Dataset, pointID int, epsilon float64, metric Metric) []int {
	var neighbors []int
	p := data[pointID]
	for id, q := range data {
		if id != pointID && metric.Distance(p, q) < epsilon {
			neighbors = append(neighbors, id)
		}
	}
	return neighbors
}
