package stats

import (
	"math"
	"sort"
)

// DefaultProbs is the fixed set of quantile probabilities reported by
// Describe, from the extreme tails inward.
var DefaultProbs = []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.75, 0.9, 0.95, 0.99, 0.999}

// Quantile computes the p-th quantile of values using linear interpolation
// between order statistics. NaN entries are ignored. It returns NaN when no
// finite value remains or when p is outside [0, 1].
func Quantile(values []float64, p float64) float64 {
	if p < 0 || p > 1 {
		return math.NaN()
	}
	sorted := dropNaN(values)
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)
	return quantileSorted(sorted, p)
}

// Quantiles computes several quantiles in one pass over the sorted data.
// Every quantile is NaN when the non-NaN sample is empty.
func Quantiles(values []float64, probs []float64) map[float64]float64 {
	out := make(map[float64]float64, len(probs))
	sorted := dropNaN(values)
	if len(sorted) == 0 {
		for _, p := range probs {
			out[p] = math.NaN()
		}
		return out
	}
	sort.Float64s(sorted)
	for _, p := range probs {
		if p < 0 || p > 1 {
			out[p] = math.NaN()
			continue
		}
		out[p] = quantileSorted(sorted, p)
	}
	return out
}

// quantileSorted interpolates on already-sorted data. h = (n-1)p is split
// into its integer and fractional parts.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
