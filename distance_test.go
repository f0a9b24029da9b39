package density

import (
	"errors"
	"math"
	"testing"
)

const floatTol = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// --- EuclideanMetric tests ---

func TestEuclideanDistance_AxisAligned(t *testing.T) {
	m := EuclideanMetric{}
	if d := m.Distance(Point{1, 1}, Point{3, 1}); d != 2 {
		t.Errorf("expected 2, got %v", d)
	}
	if d := m.Distance(Point{1, 1}, Point{1, 3}); d != 2 {
		t.Errorf("expected 2, got %v", d)
	}
}

func TestEuclideanDistance_IdenticalVectors(t *testing.T) {
	m := EuclideanMetric{}
	a := Point{1, 2, 3}
	if d := m.Distance(a, a); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestEuclideanDistance_HandComputed(t *testing.T) {
	m := EuclideanMetric{}
	a := Point{1, 2, 3}
	b := Point{4, 6, 3}
	// sqrt((4-1)^2 + (6-2)^2 + (3-3)^2) = sqrt(9+16+0) = 5
	d := m.Distance(a, b)
	if !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
}

func TestEuclideanDistance_SharedPrefix(t *testing.T) {
	m := EuclideanMetric{}
	// Only the first two coordinates are compared.
	a := Point{0, 0, 100}
	b := Point{3, 4}
	if d := m.Distance(a, b); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
	if d := m.Distance(b, a); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected symmetric 5.0, got %v", d)
	}
	if d := m.Distance(Point{}, a); d != 0 {
		t.Errorf("expected 0 for empty point, got %v", d)
	}
}

// --- ManhattanMetric tests ---

func TestManhattanDistance(t *testing.T) {
	m := ManhattanMetric{}
	a := Point{1, 2, 3}
	b := Point{4, 0, 3}
	// |4-1| + |0-2| + |3-3| = 3 + 2 + 0 = 5
	if d := m.Distance(a, b); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
	if d := m.Distance(Point{1, 1, 9}, Point{2, 2}); !almostEqual(d, 2.0, floatTol) {
		t.Errorf("expected 2.0 over shared prefix, got %v", d)
	}
}

// --- ChebyshevMetric tests ---

func TestChebyshevDistance(t *testing.T) {
	m := ChebyshevMetric{}
	a := Point{1, 5, 3}
	b := Point{4, 0, 3}
	// max(|4-1|, |0-5|, |3-3|) = max(3, 5, 0) = 5
	if d := m.Distance(a, b); !almostEqual(d, 5.0, floatTol) {
		t.Errorf("expected 5.0, got %v", d)
	}
	if d := m.Distance(Point{}, Point{1}); d != 0 {
		t.Errorf("expected 0 for empty prefix, got %v", d)
	}
}

// --- MinkowskiMetric tests ---

func TestMinkowskiDistance_P2EqualsEuclidean(t *testing.T) {
	mink := MinkowskiMetric{P: 2}
	eucl := EuclideanMetric{}
	a := Point{1, 2, 3}
	b := Point{4, 6, 8}
	dm := mink.Distance(a, b)
	de := eucl.Distance(a, b)
	if !almostEqual(dm, de, floatTol) {
		t.Errorf("Minkowski(p=2)=%v != Euclidean=%v", dm, de)
	}
}

func TestMinkowskiDistance_P1EqualsManhattan(t *testing.T) {
	mink := MinkowskiMetric{P: 1}
	manh := ManhattanMetric{}
	a := Point{1, 2, 3}
	b := Point{4, 6, 8}
	if dm, dh := mink.Distance(a, b), manh.Distance(a, b); !almostEqual(dm, dh, floatTol) {
		t.Errorf("Minkowski(p=1)=%v != Manhattan=%v", dm, dh)
	}
}

func TestMinkowskiDistance_PanicsBelowOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for P < 1")
		}
	}()
	MinkowskiMetric{P: 0.5}.Distance(Point{0}, Point{1})
}

// --- CosineMetric tests ---

func TestCosineDistance(t *testing.T) {
	m := CosineMetric{}
	if d := m.Distance(Point{1, 0}, Point{0, 1}); !almostEqual(d, 1.0, floatTol) {
		t.Errorf("orthogonal: expected 1, got %v", d)
	}
	if d := m.Distance(Point{1, 1}, Point{2, 2}); !almostEqual(d, 0.0, floatTol) {
		t.Errorf("parallel: expected 0, got %v", d)
	}
	if d := m.Distance(Point{1, 0}, Point{-1, 0}); !almostEqual(d, 2.0, floatTol) {
		t.Errorf("opposite: expected 2, got %v", d)
	}
	if d := m.Distance(Point{0, 0}, Point{0, 0}); !math.IsNaN(d) {
		t.Errorf("zero vectors: expected NaN, got %v", d)
	}
}

// --- DistanceFunc tests ---

func TestDistanceFunc(t *testing.T) {
	calls := 0
	f := DistanceFunc(func(a, b Point) float64 {
		calls++
		return math.Abs(a[0] - b[0])
	})
	var m Metric = f
	if d := m.Distance(Point{3}, Point{-1}); d != 4 {
		t.Errorf("expected 4, got %v", d)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// --- MetricByName tests ---

func TestMetricByName(t *testing.T) {
	tests := []struct {
		name string
		want Metric
	}{
		{"", EuclideanMetric{}},
		{"euclidean", EuclideanMetric{}},
		{"Euclidean", EuclideanMetric{}},
		{"manhattan", ManhattanMetric{}},
		{"l1", ManhattanMetric{}},
		{"chebyshev", ChebyshevMetric{}},
		{"cosine", CosineMetric{}},
		{"minkowski:3", MinkowskiMetric{P: 3}},
		{"minkowski:1.5", MinkowskiMetric{P: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MetricByName(tt.name)
			if err != nil {
				t.Fatalf("MetricByName(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("MetricByName(%q) = %#v, want %#v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMetricByName_Unknown(t *testing.T) {
	for _, name := range []string{"hamming", "minkowski:0.5", "minkowski:x"} {
		_, err := MetricByName(name)
		if !errors.Is(err, ErrUnknownMetric) {
			t.Errorf("MetricByName(%q) error = %v, want ErrUnknownMetric", name, err)
		}
	}
}
