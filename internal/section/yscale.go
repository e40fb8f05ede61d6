package section

import (
	"math"

	"github.com/frameprof/frameprof/internal/stats"
)

// DefaultNBins is the histogram bin count used when none is configured.
const DefaultNBins = 100

// AutoYScaleContinuous finds a good y-axis scale for the data distribution.
// The values are bucketed into nbins histogram bins; when the nonzero bin
// counts are nearly flat (at most 2 buckets, or a max/min ratio below 50)
// the scale stays linear. Otherwise symlog is chosen when the data reaches
// zero or below, log when it is strictly positive. NaN values are ignored.
func AutoYScaleContinuous(values []float64, nbins int) string {
	if nbins <= 0 {
		nbins = DefaultNBins
	}
	counts, _ := stats.Histogram(values, nbins)
	var nonzero []int
	for _, c := range counts {
		if c > 0 {
			nonzero = append(nonzero, c)
		}
	}
	if len(nonzero) <= 2 {
		return "linear"
	}
	minCount, maxCount := nonzero[0], nonzero[0]
	for _, c := range nonzero {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	if minCount < 1 {
		minCount = 1
	}
	if float64(maxCount)/float64(minCount) < 50 {
		return "linear"
	}
	if dataMin(values) <= 0 {
		return "symlog"
	}
	return "log"
}

func dataMin(values []float64) float64 {
	min := math.Inf(1)
	for _, v := range values {
		if !math.IsNaN(v) && v < min {
			min = v
		}
	}
	return min
}
