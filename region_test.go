package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionQuery(t *testing.T) {
	data := Dataset{
		{1, 1}, {2, 2}, {3, 3},
		{50, 50}, {51, 51},
	}
	m := EuclideanMetric{}

	assert.Equal(t, []int{0, 2}, RegionQuery(data, 1, 2, m))
	assert.Equal(t, []int{3}, RegionQuery(data, 4, 2, m))
	assert.Equal(t, []int{0, 2, 3, 4}, RegionQuery(data, 1, 100, m))
}

func TestRegionQuery_BoundaryExcluded(t *testing.T) {
	data := Dataset{{0, 0}, {1, 0}, {0.5, 0}}
	m := EuclideanMetric{}

	// d(0,1) == 1 is not strictly less than epsilon.
	assert.Equal(t, []int{2}, RegionQuery(data, 0, 1, m))
	assert.Equal(t, []int{1, 2}, RegionQuery(data, 0, 1.0000001, m))
}

func TestRegionQuery_NonPositiveEpsilon(t *testing.T) {
	data := Dataset{{0, 0}, {0, 0}, {1, 1}}
	m := EuclideanMetric{}

	assert.Empty(t, RegionQuery(data, 0, 0, m))
	assert.Empty(t, RegionQuery(data, 0, -1, m))
}

func TestRegionQuery_ExcludesSelfOnly(t *testing.T) {
	// Duplicates of the query point are neighbors; the point itself is not.
	data := Dataset{{5, 5}, {5, 5}, {5, 5}}
	assert.Equal(t, []int{0, 2}, RegionQuery(data, 1, 1, EuclideanMetric{}))
}
