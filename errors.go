package density

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataset is returned when a dataset is not a sequence of points.
	ErrInvalidDataset = errors.New("density: invalid dataset")

	// ErrLengthMismatch is returned when a priority queue is built from
	// element and priority slices of different lengths.
	ErrLengthMismatch = errors.New("density: elements and priorities must have the same length")

	// ErrUnknownMetric is returned by MetricByName for unregistered names.
	ErrUnknownMetric = errors.New("density: unknown metric")
)

// InvalidDatasetError reports the value that could not be used as a dataset.
//
// It matches ErrInvalidDataset with errors.Is.
type InvalidDatasetError struct {
	// Type is the Go type of the rejected value, as printed by %T.
	Type string
	// Index is the position of the offending point, or -1 when the value
	// itself is not a sequence.
	Index int
}

func (e *InvalidDatasetError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("density: dataset must be a sequence of points, point %d is %s", e.Index, e.Type)
	}
	return fmt.Sprintf("density: dataset must be a sequence of points, %s given", e.Type)
}

func (e *InvalidDatasetError) Unwrap() error { return ErrInvalidDataset }
