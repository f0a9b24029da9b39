package density

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Metric measures the distance between two points. Implementations must be
// pure and return non-negative values.
type Metric interface {
	Distance(a, b Point) float64
}

// DistanceFunc adapts a plain function into a Metric.
type DistanceFunc func(a, b Point) float64

func (f DistanceFunc) Distance(a, b Point) float64 { return f(a, b) }

// shared truncates a and b to their common coordinate prefix.
func shared(a, b Point) (Point, Point) {
	n := min(len(a), len(b))
	return a[:n], b[:n]
}

// EuclideanMetric computes the Euclidean (L2) distance over the shared
// coordinate prefix of the two points.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b Point) float64 {
	a, b = shared(a, b)
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b Point) float64 {
	a, b = shared(a, b)
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b Point) float64 {
	a, b = shared(a, b)
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b Point) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	a, b = shared(a, b)
	return floats.Distance(a, b, m.P)
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For a zero vector the result is NaN (0/0), which never counts as a neighbor.
type CosineMetric struct{}

func (CosineMetric) Distance(a, b Point) float64 {
	a, b = shared(a, b)
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

// MetricByName returns the built-in metric registered under name:
// "euclidean", "manhattan", "chebyshev" or "cosine". Minkowski metrics are
// written "minkowski:<p>", e.g. "minkowski:3".
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "", "euclidean", "l2":
		return EuclideanMetric{}, nil
	case "manhattan", "cityblock", "l1":
		return ManhattanMetric{}, nil
	case "chebyshev", "linf":
		return ChebyshevMetric{}, nil
	case "cosine":
		return CosineMetric{}, nil
	}
	var p float64
	if _, err := fmt.Sscanf(strings.ToLower(name), "minkowski:%g", &p); err == nil {
		if p < 1 {
			return nil, fmt.Errorf("%w: minkowski p must be >= 1, got %g", ErrUnknownMetric, p)
		}
		return MinkowskiMetric{P: p}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}
