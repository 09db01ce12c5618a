package engine

import (
	"math"
	"sort"
)

// outlierFence is the IQR multiplier for the box plot fences.
const outlierFence = 1.5

// fiveNumber is the five-number summary of a sample plus its fences.
type fiveNumber struct {
	Min, Q1, Median, Q3, Max float64
	LowerFence, UpperFence   float64
}

// summarize computes the five-number summary of values. Quartiles use linear
// interpolation between order statistics (see quantile). values must be
// non-empty; it is not modified.
func summarize(values []float64) fiveNumber {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)

	f := fiveNumber{
		Min:    s[0],
		Q1:     quantile(s, 0.25),
		Median: quantile(s, 0.5),
		Q3:     quantile(s, 0.75),
		Max:    s[len(s)-1],
	}
	iqr := f.Q3 - f.Q1
	f.LowerFence = f.Q1 - outlierFence*iqr
	f.UpperFence = f.Q3 + outlierFence*iqr
	return f
}

func (f fiveNumber) isOutlier(v float64) bool {
	return v < f.LowerFence || v > f.UpperFence
}

// quantile returns the q-th quantile of sorted using linear interpolation:
// position q*(n-1), weighted between the two neighbouring order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
