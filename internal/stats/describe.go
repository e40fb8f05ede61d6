package stats

import (
	"math"

	flynn "github.com/montanaflynn/stats"
)

// Describe computes the descriptive statistics for a column of numeric
// values. NaN entries represent nulls. The returned bundle maps stat names
// to values: counts are ints, everything else float64.
//
// Location/spread/quantile stats are computed over non-null values only and
// are NaN when the non-null sample is empty. Skewness and excess kurtosis
// are NaN when the column holds at most one distinct value.
func Describe(values []float64) map[string]any {
	count := len(values)
	nonNull := dropNaN(values)
	numNulls := count - len(nonNull)

	out := map[string]any{
		"count":         count,
		"num_nulls":     numNulls,
		"num_non_nulls": len(nonNull),
		"nunique":       NUniqueFloats(values),
		"mean":          math.NaN(),
		"std":           math.NaN(),
		"skewness":      math.NaN(),
		"kurtosis":      math.NaN(),
		"min":           math.NaN(),
		"median":        math.NaN(),
		"max":           math.NaN(),
	}
	quantiles := Quantiles(nonNull, DefaultProbs)
	out["q001"] = quantiles[0.001]
	out["q01"] = quantiles[0.01]
	out["q05"] = quantiles[0.05]
	out["q10"] = quantiles[0.1]
	out["q25"] = quantiles[0.25]
	out["q75"] = quantiles[0.75]
	out["q90"] = quantiles[0.9]
	out["q95"] = quantiles[0.95]
	out["q99"] = quantiles[0.99]
	out["q999"] = quantiles[0.999]

	gt, lt, eq := 0, 0, 0
	for _, v := range nonNull {
		switch {
		case v > 0:
			gt++
		case v < 0:
			lt++
		default:
			eq++
		}
	}
	out[">0"] = gt
	out["<0"] = lt
	out["=0"] = eq

	if len(nonNull) == 0 {
		return out
	}

	data := flynn.Float64Data(nonNull)
	if v, err := data.Mean(); err == nil {
		out["mean"] = v
	}
	if NUniqueFloats(nonNull) <= 1 {
		// a single distinct value has no spread, exactly
		out["std"] = 0.0
	} else if v, err := flynn.StandardDeviationSample(data); err == nil {
		// sample standard deviation (n-1 denominator)
		out["std"] = v
	}
	if v, err := data.Median(); err == nil {
		out["median"] = v
	}
	if v, err := data.Min(); err == nil {
		out["min"] = v
	}
	if v, err := data.Max(); err == nil {
		out["max"] = v
	}
	if out["nunique"].(int) > 1 {
		out["skewness"] = Skewness(nonNull)
		out["kurtosis"] = Kurtosis(nonNull)
	}
	return out
}

// NUniqueFloats counts the distinct values in the column. All NaN entries
// together count as one category.
func NUniqueFloats(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	hasNaN := false
	for _, v := range values {
		if math.IsNaN(v) {
			hasNaN = true
			continue
		}
		seen[v] = struct{}{}
	}
	n := len(seen)
	if hasNaN {
		n++
	}
	return n
}

// Skewness computes the population skewness m3 / m2^(3/2) over non-NaN
// values. Returns NaN for fewer than one distinct value or zero variance.
func Skewness(values []float64) float64 {
	m2, m3, _ := centralMoments(dropNaN(values))
	if m2 == 0 {
		return math.NaN()
	}
	return m3 / math.Pow(m2, 1.5)
}

// Kurtosis computes the excess kurtosis (Fisher) m4 / m2^2 - 3 over non-NaN
// values. Returns NaN for zero variance.
func Kurtosis(values []float64) float64 {
	m2, _, m4 := centralMoments(dropNaN(values))
	if m2 == 0 {
		return math.NaN()
	}
	return m4/(m2*m2) - 3
}

func centralMoments(values []float64) (m2, m3, m4 float64) {
	n := float64(len(values))
	if n == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= n
	for _, v := range values {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	return m2 / n, m3 / n, m4 / n
}
