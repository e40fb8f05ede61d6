package stats

import "math"

// Histogram buckets the non-NaN values into nbins equal-width bins spanning
// [min, max]. Values equal to max fall in the last bin. It returns the bin
// counts and the nbins+1 bin edges.
func Histogram(values []float64, nbins int) (counts []int, edges []float64) {
	if nbins < 1 {
		nbins = 1
	}
	counts = make([]int, nbins)
	data := dropNaN(values)
	lo, hi := 0.0, 1.0
	if len(data) > 0 {
		lo, hi = data[0], data[0]
		for _, v := range data {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(nbins)
	edges = make([]float64, nbins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[nbins] = hi
	for _, v := range data {
		i := int(math.Floor((v - lo) / width))
		if i >= nbins {
			i = nbins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return counts, edges
}
