package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

func TestColumnTemporalContinuousAnalyzer(t *testing.T) {
	frame, err := dataframe.New(
		dataframe.NewSeries("dt", dataframe.KindTime, []any{
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		}),
		dataframe.NewSeries("col", dataframe.KindNumeric, []any{1.0, 3.0, nil}),
	)
	require.NoError(t, err)

	a := NewColumnTemporalContinuousAnalyzer("col", "dt", dataframe.PeriodMonthly, "auto", figure.Size{})
	sec, err := a.Analyze(frame)
	require.NoError(t, err)

	temporal, ok := sec.(*section.ColumnTemporalContinuousSection)
	require.True(t, ok)
	assert.Empty(t, temporal.Statistics())

	body, err := temporal.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)
	assert.Contains(t, body, "2024-01")
	assert.Contains(t, body, "2024-02")
	assert.Contains(t, body, "Statistics per period")
}

func TestColumnTemporalContinuousAnalyzerFromConfig(t *testing.T) {
	a, err := Resolve(Config{
		"type":      "column_temporal_continuous",
		"column":    "col",
		"dt_column": "dt",
		"period":    "monthly",
	})
	require.NoError(t, err)
	assert.NotNil(t, a)

	_, err = Resolve(Config{
		"type":      "column_temporal_continuous",
		"column":    "col",
		"dt_column": "dt",
		"period":    "bogus",
	})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))
}
