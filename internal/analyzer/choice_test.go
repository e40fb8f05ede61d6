package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

func TestChoiceAnalyzerDispatch(t *testing.T) {
	// null analysis when the column has any NaN, duplicate analysis
	// otherwise
	choice := NewChoiceAnalyzer(map[string]Analyzer{
		"null":      NewNullValueAnalyzer(figure.Size{}),
		"duplicate": NewDuplicatedRowAnalyzer(nil),
	}, func(frame *dataframe.Frame) string {
		series, ok := frame.Column("col")
		if ok {
			for _, v := range series.Floats() {
				if math.IsNaN(v) {
					return "null"
				}
			}
		}
		return "duplicate"
	})

	withNaN := numericFrame(t, "col", 1.2, 4.2, nil, 2.2)
	sec, err := choice.Analyze(withNaN)
	require.NoError(t, err)

	nullSec, ok := sec.(*section.NullValueSection)
	require.True(t, ok)
	stats := nullSec.Statistics()
	assert.Equal(t, []int{1}, stats["null_count"])
	assert.Equal(t, []int{4}, stats["total_count"])

	withoutNaN := numericFrame(t, "col", 1.2, 4.2, 1.2, 2.2)
	sec, err = choice.Analyze(withoutNaN)
	require.NoError(t, err)

	dupSec, ok := sec.(*section.DuplicatedRowSection)
	require.True(t, ok)
	stats = dupSec.Statistics()
	assert.Equal(t, 4, stats["num_rows"])
	assert.Equal(t, 3, stats["num_unique_rows"])
}

func TestChoiceAnalyzerUnknownKey(t *testing.T) {
	choice := NewChoiceAnalyzer(map[string]Analyzer{
		"known": NewNullValueAnalyzer(figure.Size{}),
	}, func(frame *dataframe.Frame) string { return "unknown" })

	_, err := choice.Analyze(numericFrame(t, "col", 1.0))
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeLookup))
	assert.Contains(t, err.Error(), "key not found: unknown")
}

func TestNumUniqueSelection(t *testing.T) {
	small := numericFrame(t, "col", 1.0, 2.0, 1.0)
	large := func() *dataframe.Frame {
		values := make([]any, 200)
		for i := range values {
			values[i] = float64(i)
		}
		frame, err := dataframe.New(dataframe.NewSeries("col", dataframe.KindNumeric, values))
		require.NoError(t, err)
		return frame
	}()

	sel := NumUniqueSelection("col", 100)
	assert.Equal(t, "small", sel(small))
	assert.Equal(t, "large", sel(large))

	// missing column counts as small
	other := numericFrame(t, "other", 1.0)
	assert.Equal(t, "small", sel(other))
}

func TestNumUniqueSelectionThresholdDefault(t *testing.T) {
	values := make([]any, 101)
	for i := range values {
		values[i] = float64(i)
	}
	frame, err := dataframe.New(dataframe.NewSeries("col", dataframe.KindNumeric, values))
	require.NoError(t, err)

	sel := NumUniqueSelection("col", 0)
	assert.Equal(t, "large", sel(frame))
}

func TestColumnDistributionFromConfig(t *testing.T) {
	a, err := Resolve(Config{"type": "column_distribution", "column": "col", "threshold": 2})
	require.NoError(t, err)

	sec, err := a.Analyze(numericFrame(t, "col", 1.0, 1.0, 2.0))
	require.NoError(t, err)
	_, ok := sec.(*section.ColumnDiscreteSection)
	assert.True(t, ok)

	sec, err = a.Analyze(numericFrame(t, "col", 1.0, 2.0, 3.0))
	require.NoError(t, err)
	_, ok = sec.(*section.ColumnContinuousSection)
	assert.True(t, ok)
}
