package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicatedRowSectionStatistics(t *testing.T) {
	s := NewDuplicatedRowSection(4, 3, nil)

	stats := s.Statistics()
	assert.Equal(t, 4, stats["num_rows"])
	assert.Equal(t, 3, stats["num_unique_rows"])
}

func TestDuplicatedRowSectionRenderBody(t *testing.T) {
	s := NewDuplicatedRowSection(10, 8, []string{"a", "b"})

	body, err := s.RenderHTMLBody("1.", []string{"duplicated rows"}, 0)
	require.NoError(t, err)

	assert.Contains(t, body, `id="duplicated-rows"`)
	assert.Contains(t, body, "number of duplicated rows: 2")
	assert.Contains(t, body, "20.00%")
	assert.Contains(t, body, "<em>a</em>")
	assert.Contains(t, body, "<em>b</em>")
}

func TestDuplicatedRowSectionZeroRows(t *testing.T) {
	s := NewDuplicatedRowSection(0, 0, nil)

	body, err := s.RenderHTMLBody("1.", []string{"duplicated rows"}, 0)
	require.NoError(t, err)
	assert.Contains(t, body, "0.00%")
}
