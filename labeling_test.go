package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelsFromClusters(t *testing.T) {
	tests := []struct {
		name     string
		clusters [][]int
		n        int
		want     []int
	}{
		{"simple", [][]int{{0, 2}, {1}}, 3, []int{0, 1, 0}},
		{"unlisted point", [][]int{{0}, {2}}, 4, []int{0, -1, 1, -1}},
		{"first cluster wins", [][]int{{0, 1}, {1, 2}}, 3, []int{0, 0, 1}},
		{"out of range ignored", [][]int{{0, 5, -1}}, 2, []int{0, -1}},
		{"empty", nil, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelsFromClusters(tt.clusters, tt.n))
		})
	}
}

func TestDBSCANResult_Labels(t *testing.T) {
	cfg := DefaultDBSCANConfig()
	cfg.Epsilon = 5
	result := NewDBSCAN(cfg).Run(regularDensityDataset())

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 3, 2}, result.Labels())
}

func TestOPTICSResult_Labels(t *testing.T) {
	result := NewOPTICS(opticsConfig(2, 2)).Run(opticsRegularDataset())

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3}, result.Labels())
}
