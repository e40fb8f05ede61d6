package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedNaNAscending(t *testing.T) {
	got := SortedNaN([]float64{3, math.NaN(), 1, 2}, false)

	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, []float64{1, 2, 3}, got[1:])
}

func TestSortedNaNDescending(t *testing.T) {
	got := SortedNaN([]float64{3, math.NaN(), 1, 2}, true)

	require.Len(t, got, 4)
	assert.Equal(t, []float64{3, 2, 1}, got[:3])
	assert.True(t, math.IsNaN(got[3]))
}

func TestSortedNaNDoesNotMutate(t *testing.T) {
	input := []float64{2, 1}
	_ = SortedNaN(input, false)
	assert.Equal(t, []float64{2, 1}, input)
}
