package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoYScaleContinuous(t *testing.T) {
	// one value repeated 1000 times next to singletons: max/min bin ratio
	// far above 50
	skewed := make([]float64, 0, 1003)
	for i := 0; i < 1000; i++ {
		skewed = append(skewed, 5)
	}
	skewed = append(skewed, 1, 50, 100)

	skewedNegative := append([]float64{-1}, skewed...)

	tests := []struct {
		name   string
		values []float64
		nbins  int
		want   string
	}{
		{name: "empty", values: nil, nbins: 10, want: "linear"},
		{name: "uniform", values: []float64{1, 2, 3, 4, 5, 6, 7, 8}, nbins: 4, want: "linear"},
		{name: "two buckets", values: []float64{1, 1, 1, 100}, nbins: 10, want: "linear"},
		{name: "skewed positive", values: skewed, nbins: 10, want: "log"},
		{name: "skewed reaching zero", values: skewedNegative, nbins: 10, want: "symlog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoYScaleContinuous(tt.values, tt.nbins)
			assert.Equal(t, tt.want, got)
			// pure function: repeated calls agree
			assert.Equal(t, got, AutoYScaleContinuous(tt.values, tt.nbins))
		})
	}
}

func TestAutoYScaleIgnoresNaN(t *testing.T) {
	values := []float64{math.NaN(), 1, 2, 3}
	assert.Equal(t, "linear", AutoYScaleContinuous(values, 3))
}
