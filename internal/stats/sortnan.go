package stats

import (
	"math"
	"sort"
)

// SortedNaN returns a sorted copy of values where NaN is treated as less
// than every real number. With reverse, the order is flipped and NaN sorts
// last. Least/most common displays depend on this ordering.
func SortedNaN(values []float64, reverse bool) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		less := nanLess(out[i], out[j])
		if reverse {
			return nanLess(out[j], out[i])
		}
		return less
	})
	return out
}

// nanLess is a total order on float64 with NaN below -Inf.
func nanLess(a, b float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return false
	case aNaN:
		return true
	case bNaN:
		return false
	default:
		return a < b
	}
}
