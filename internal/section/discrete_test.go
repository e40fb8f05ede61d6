package section

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/stats"
)

func discreteCounter(values ...any) *stats.Counter {
	c := stats.NewCounter()
	for _, v := range values {
		c.Increment(v)
	}
	return c
}

func TestColumnDiscreteSectionStatistics(t *testing.T) {
	c := discreteCounter("a", "a", "b")
	c.Add("zero", 0)
	s := NewColumnDiscreteSection(c, 0, "col", 0, "auto", figure.Size{})

	got := s.Statistics()
	assert.Equal(t, 3, got["total"])

	mostCommon, ok := got["most_common"].([]stats.Entry)
	require.True(t, ok)
	// zero-count entries are dropped from the statistics
	require.Len(t, mostCommon, 2)
	assert.Equal(t, "a", mostCommon[0].Value)
	assert.Equal(t, 2, mostCommon[0].Count)
}

func TestColumnDiscreteSectionYScale(t *testing.T) {
	flat := NewColumnDiscreteSection(discreteCounter("a", "b", "c"), 0, "col", 0, "auto", figure.Size{})
	assert.Equal(t, "linear", flat.YScale())

	skewed := stats.NewCounter()
	skewed.Add("big", 1000)
	skewed.Add("one", 1)
	skewed.Add("two", 1)
	s := NewColumnDiscreteSection(skewed, 0, "col", 0, "auto", figure.Size{})
	assert.Equal(t, "log", s.YScale())

	explicit := NewColumnDiscreteSection(skewed, 0, "col", 0, "symlog", figure.Size{})
	assert.Equal(t, "symlog", explicit.YScale())
}

func TestColumnDiscreteSectionRenderBody(t *testing.T) {
	s := NewColumnDiscreteSection(
		discreteCounter(1.0, 1.0, math.NaN()), 1, "col", 0, "auto", figure.Size{})

	body, err := s.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)

	assert.Contains(t, body, `id="col"`)
	assert.Contains(t, body, "cumulative pct")
	assert.Contains(t, body, "NaN")
}

func TestColumnDiscreteSectionHeadAndTailTables(t *testing.T) {
	c := stats.NewCounter()
	c.Add("frequent", 50)
	c.Add("mid", 10)
	c.Add("rare", 1)
	s := NewColumnDiscreteSection(c, 0, "col", 2, "auto", figure.Size{})

	body, err := s.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)

	assert.Contains(t, body, "[show head and tail values]")
	assert.Contains(t, body, "Head: 2 most common values")
	assert.Contains(t, body, "Tail: 2 least common values")
	// head starts with the most common value, tail with the least common
	headIdx := strings.Index(body, "Head:")
	tailIdx := strings.Index(body, "Tail:")
	require.Greater(t, tailIdx, headIdx)
	assert.Contains(t, body[headIdx:tailIdx], "frequent")
	assert.NotContains(t, body[headIdx:tailIdx], "rare")
	assert.Contains(t, body[tailIdx:], "rare")
	assert.NotContains(t, body[tailIdx:], "frequent")
}

func TestColumnDiscreteSectionEmptyFigure(t *testing.T) {
	s := NewColumnDiscreteSection(stats.NewCounter(), 0, "col", 0, "auto", figure.Size{})

	body, err := s.RenderHTMLBody("1.", []string{"col"}, 0)
	require.NoError(t, err)
	assert.Contains(t, body, "No figure is generated because the column is empty")
}
