package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

func TestColumnDiscreteAnalyzer(t *testing.T) {
	frame := numericFrame(t, "col", 1.0, 1.0, 2.0, nil)

	a := NewColumnDiscreteAnalyzer("col", 0, "auto", figure.Size{})
	sec, err := a.Analyze(frame)
	require.NoError(t, err)

	disc, ok := sec.(*section.ColumnDiscreteSection)
	require.True(t, ok)
	stats := disc.Statistics()
	assert.Equal(t, 3, stats["total"])
	assert.Equal(t, 2, stats["nunique"])
}

func TestColumnDiscreteAnalyzerFromConfig(t *testing.T) {
	a, err := Resolve(Config{
		"type":     "column_discrete",
		"column":   "col",
		"max_rows": 5,
	})
	require.NoError(t, err)

	sec, err := a.Analyze(numericFrame(t, "col", 1.0, 2.0))
	require.NoError(t, err)
	_, ok := sec.(*section.ColumnDiscreteSection)
	assert.True(t, ok)
}
