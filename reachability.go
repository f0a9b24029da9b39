package density

import (
	"encoding/json"
	"strconv"
)

// Reachability is an optional distance. The zero value is unset, which is
// distinct from a defined distance of 0.
type Reachability struct {
	Value   float64
	Defined bool
}

// DefinedAt returns a set Reachability holding v.
func DefinedAt(v float64) Reachability {
	return Reachability{Value: v, Defined: true}
}

// Undefined is the unset Reachability.
var Undefined = Reachability{}

func (r Reachability) String() string {
	if !r.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// MarshalJSON encodes an unset value as null.
func (r Reachability) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes null as unset.
func (r *Reachability) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Undefined
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = DefinedAt(v)
	return nil
}

// PlotPoint is one bar of a reachability plot.
type PlotPoint struct {
	Index        int          `json:"index"`
	Reachability Reachability `json:"reachability"`
}

// ReachabilityPlot returns, for every point in OPTICS order, its index and
// the best reachability distance recorded for it. Points that started a
// cluster without being reached from a core point have an unset value.
func (r *OPTICSResult) ReachabilityPlot() []PlotPoint {
	plot := make([]PlotPoint, len(r.Ordering))
	for i, pointID := range r.Ordering {
		plot[i] = PlotPoint{Index: pointID, Reachability: r.Reachability[pointID]}
	}
	return plot
}
