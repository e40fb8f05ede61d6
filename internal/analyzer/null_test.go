package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/figure"
)

func TestNullValueAnalyzer(t *testing.T) {
	frame := numericFrame(t, "col", nil, 1.0, 0.0, 1.0)

	sec, err := NewNullValueAnalyzer(figure.Size{}).Analyze(frame)
	require.NoError(t, err)

	stats := sec.Statistics()
	assert.Equal(t, []string{"col"}, stats["columns"])
	assert.Equal(t, []int{1}, stats["null_count"])
	assert.Equal(t, []int{4}, stats["total_count"])
}

func TestNullValueAnalyzerEmptyFrame(t *testing.T) {
	frame := numericFrame(t, "col")

	sec, err := NewNullValueAnalyzer(figure.Size{}).Analyze(frame)
	require.NoError(t, err)

	stats := sec.Statistics()
	assert.Equal(t, []int{0}, stats["null_count"])
	assert.Equal(t, []int{0}, stats["total_count"])
}
