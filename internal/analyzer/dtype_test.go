package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/dataframe"
)

func TestDataTypeAnalyzer(t *testing.T) {
	frame, err := dataframe.New(
		dataframe.NewSeries("num", dataframe.KindNumeric, []any{1.0, nil}),
		dataframe.NewSeries("str", dataframe.KindString, []any{"x", "y"}),
	)
	require.NoError(t, err)

	sec, err := NewDataTypeAnalyzer().Analyze(frame)
	require.NoError(t, err)

	stats := sec.Statistics()
	assert.Equal(t, []string{"float", "null"}, stats["num"])
	assert.Equal(t, []string{"string"}, stats["str"])
}
