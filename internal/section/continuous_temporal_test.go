package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/figure"
)

func TestColumnTemporalContinuousSectionLengthMismatch(t *testing.T) {
	_, err := NewColumnTemporalContinuousSection(
		[][]float64{{1.0}}, []string{"2024-01", "2024-02"},
		"col", "dt", "monthly", "auto", figure.Size{})

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvariant))
}

func TestColumnTemporalContinuousSectionStatistics(t *testing.T) {
	s, err := NewColumnTemporalContinuousSection(
		[][]float64{{1.0, 2.0}}, []string{"2024-01"},
		"col", "dt", "monthly", "auto", figure.Size{})
	require.NoError(t, err)

	assert.Empty(t, s.Statistics())
}

func TestColumnTemporalContinuousSectionRenderBody(t *testing.T) {
	s, err := NewColumnTemporalContinuousSection(
		[][]float64{{1.0, 3.0}, {2.0, math.NaN()}},
		[]string{"2024-01", "2024-02"},
		"col", "dt", "monthly", "auto", figure.Size{})
	require.NoError(t, err)

	body, err := s.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)

	assert.Contains(t, body, `id="col"`)
	assert.Contains(t, body, "<em>dt</em>")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "Statistics per period")
	assert.Contains(t, body, "2024-01")
	assert.Contains(t, body, "2024-02")
	assert.Contains(t, body, "<th>median</th>")
}

func TestColumnTemporalContinuousSectionEmpty(t *testing.T) {
	s, err := NewColumnTemporalContinuousSection(
		nil, nil, "col", "dt", "monthly", "auto", figure.Size{})
	require.NoError(t, err)

	body, err := s.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)
	assert.Contains(t, body, "No figure is generated because the column is empty")
	assert.NotContains(t, body, "Statistics per period")
}

func TestColumnTemporalContinuousSectionTOC(t *testing.T) {
	s, err := NewColumnTemporalContinuousSection(
		nil, nil, "col", "dt", "monthly", "auto", figure.Size{})
	require.NoError(t, err)

	toc, err := s.RenderHTMLTOC("1.", []string{"col"}, 0, 1)
	require.NoError(t, err)
	assert.Contains(t, toc, `href="#col"`)

	cut, err := s.RenderHTMLTOC("1.", []string{"col"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "", cut)
}
