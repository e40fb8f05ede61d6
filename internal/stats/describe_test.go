package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeEmptyInput(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{name: "no values", values: nil},
		{name: "only nulls", values: []float64{math.NaN(), math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := Describe(tt.values)

			assert.Equal(t, len(tt.values), desc["count"])
			assert.Equal(t, 0, desc["num_non_nulls"])
			assert.Equal(t, 0, desc[">0"])
			assert.Equal(t, 0, desc["<0"])
			assert.Equal(t, 0, desc["=0"])
			for _, key := range []string{"mean", "std", "skewness", "kurtosis", "min", "median", "max", "q001", "q25", "q75", "q999"} {
				v, ok := desc[key].(float64)
				require.True(t, ok, "statistic %s", key)
				assert.True(t, math.IsNaN(v), "statistic %s should be NaN", key)
			}
		})
	}
}

func TestDescribeConstantValue(t *testing.T) {
	desc := Describe([]float64{4.2, 4.2, 4.2})

	assert.Equal(t, 3, desc["count"])
	assert.Equal(t, 1, desc["nunique"])
	assert.Equal(t, 0.0, desc["std"])
	assert.InDelta(t, 4.2, desc["mean"].(float64), 1e-12)
	assert.Equal(t, 4.2, desc["min"])
	assert.Equal(t, 4.2, desc["median"])
	assert.Equal(t, 4.2, desc["max"])
	assert.True(t, math.IsNaN(desc["skewness"].(float64)))
	assert.True(t, math.IsNaN(desc["kurtosis"].(float64)))
}

func TestDescribeSampleStd(t *testing.T) {
	desc := Describe([]float64{1, 2, 3})

	// n-1 denominator: variance of {1,2,3} is 1, not 2/3
	assert.InDelta(t, 1.0, desc["std"].(float64), 1e-12)
}

func TestDescribeSingleValue(t *testing.T) {
	desc := Describe([]float64{7.0})

	assert.Equal(t, 0.0, desc["std"])
	assert.Equal(t, 7.0, desc["mean"])
	assert.True(t, math.IsNaN(desc["skewness"].(float64)))
}

func TestDescribeSignCounts(t *testing.T) {
	desc := Describe([]float64{-2, -1, 0, 0, 3, math.NaN()})

	assert.Equal(t, 6, desc["count"])
	assert.Equal(t, 1, desc["num_nulls"])
	assert.Equal(t, 5, desc["num_non_nulls"])
	assert.Equal(t, 1, desc[">0"])
	assert.Equal(t, 2, desc["<0"])
	assert.Equal(t, 2, desc["=0"])
}

func TestDescribeQuantileKeys(t *testing.T) {
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(i)
	}
	desc := Describe(values)

	assert.InDelta(t, 25.0, desc["q25"].(float64), 1e-9)
	assert.InDelta(t, 75.0, desc["q75"].(float64), 1e-9)
	assert.InDelta(t, 99.0, desc["q99"].(float64), 1e-9)
	assert.InDelta(t, 50.0, desc["median"].(float64), 1e-9)
}

func TestSkewnessSymmetric(t *testing.T) {
	skew := Skewness([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 0.0, skew, 1e-12)
}

func TestKurtosisUniform(t *testing.T) {
	// Fisher kurtosis of {1..5} (population moments): -1.3
	kurt := Kurtosis([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, -1.3, kurt, 1e-9)
}

func TestNUniqueFloats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{name: "empty", values: nil, want: 0},
		{name: "distinct", values: []float64{1, 2, 3}, want: 3},
		{name: "repeats", values: []float64{1, 1, 2}, want: 2},
		{name: "nan is one category", values: []float64{math.NaN(), math.NaN(), 1}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NUniqueFloats(tt.values))
		})
	}
}
