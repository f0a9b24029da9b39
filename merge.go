package density

import "github.com/RoaringBitmap/roaring/v2"

// UnionMerge merges two neighbor frontiers.
//
// The longer slice is the source and the other one the destination (a wins
// ties). The result is the destination in its original order followed by
// every source element not already in the destination, in source order.
// The inputs are not modified.
func UnionMerge(a, b []int) []int {
	source, dest := b, a
	if len(a) > len(b) {
		source, dest = a, b
	}

	seen := roaring.New()
	merged := make([]int, len(dest), len(dest)+len(source))
	copy(merged, dest)
	for _, id := range dest {
		seen.Add(uint32(id))
	}
	for _, id := range source {
		if seen.CheckedAdd(uint32(id)) {
			merged = append(merged, id)
		}
	}
	return merged
}
