package density

import (
	"encoding/json"
	"fmt"
)

// Point is an ordered sequence of coordinates. Points in one dataset are not
// required to share a dimensionality.
type Point []float64

// Dataset is an ordered sequence of points. A point's index in the dataset is
// its identity in every result.
type Dataset []Point

// LoadDataset converts v into a Dataset.
//
// Accepted inputs are nil (an empty dataset), Dataset, []Point, [][]float64,
// [][]float32, [][]int, [][]int64 and []any whose elements are numeric
// slices or []any of numbers (the shape encoding/json produces when decoding
// into an interface value). Row slices are shared, not copied.
//
// Any other value yields an *InvalidDatasetError naming the received type.
func LoadDataset(v any) (Dataset, error) {
	switch data := v.(type) {
	case nil:
		return Dataset{}, nil
	case Dataset:
		return data, nil
	case []Point:
		return Dataset(data), nil
	case [][]float64:
		ds := make(Dataset, len(data))
		for i, row := range data {
			ds[i] = Point(row)
		}
		return ds, nil
	case [][]float32:
		return convertRows(data), nil
	case [][]int:
		return convertRows(data), nil
	case [][]int64:
		return convertRows(data), nil
	case []any:
		ds := make(Dataset, len(data))
		for i, row := range data {
			p, ok := toPoint(row)
			if !ok {
				return nil, &InvalidDatasetError{Type: fmt.Sprintf("%T", row), Index: i}
			}
			ds[i] = p
		}
		return ds, nil
	default:
		return nil, &InvalidDatasetError{Type: fmt.Sprintf("%T", v), Index: -1}
	}
}

type number interface {
	~float32 | ~float64 | ~int | ~int64
}

func convertRows[T number](rows [][]T) Dataset {
	ds := make(Dataset, len(rows))
	for i, row := range rows {
		ds[i] = convertRow(row)
	}
	return ds
}

func convertRow[T number](row []T) Point {
	p := make(Point, len(row))
	for j, x := range row {
		p[j] = float64(x)
	}
	return p
}

// toPoint converts a single dynamically typed row into a Point.
func toPoint(v any) (Point, bool) {
	switch row := v.(type) {
	case Point:
		return row, true
	case []float64:
		return Point(row), true
	case []float32:
		return convertRow(row), true
	case []int:
		return convertRow(row), true
	case []int64:
		return convertRow(row), true
	case []any:
		p := make(Point, len(row))
		for j, x := range row {
			f, ok := toFloat(x)
			if !ok {
				return nil, false
			}
			p[j] = f
		}
		return p, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
