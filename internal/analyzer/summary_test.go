package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/dataframe"
)

func TestFrameSummaryAnalyzer(t *testing.T) {
	frame, err := dataframe.New(
		dataframe.NewSeries("a", dataframe.KindNumeric, []any{1.0, 1.0, nil}),
		dataframe.NewSeries("b", dataframe.KindString, []any{"x", "y", "y"}),
	)
	require.NoError(t, err)

	sec, err := NewFrameSummaryAnalyzer(3).Analyze(frame)
	require.NoError(t, err)

	stats := sec.Statistics()
	assert.Equal(t, []string{"a", "b"}, stats["columns"])
	assert.Equal(t, []int{1, 0}, stats["null_count"])
	assert.Equal(t, []int{2, 2}, stats["nunique"])
	assert.Equal(t, []string{"numeric", "string"}, stats["column_types"])
}
