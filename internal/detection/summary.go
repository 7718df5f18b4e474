package detection

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes the intensity distribution of a set of candidates.
type Summary struct {
	Count  int     `json:"count"`
	MinVal uint8   `json:"min_val"`
	MaxVal uint8   `json:"max_val"`
	Mean   float64 `json:"mean_val"`
	StdDev float64 `json:"stddev_val"`
}

// Summarize computes value statistics over points. StdDev is the sample
// standard deviation and is zero for fewer than two points.
func Summarize(points []PointCandidate) Summary {
	s := Summary{Count: len(points)}
	if len(points) == 0 {
		return s
	}

	vals := make([]float64, len(points))
	s.MinVal = points[0].Val
	for i, p := range points {
		vals[i] = float64(p.Val)
		if p.Val < s.MinVal {
			s.MinVal = p.Val
		}
		if p.Val > s.MaxVal {
			s.MaxVal = p.Val
		}
	}

	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	return s
}
