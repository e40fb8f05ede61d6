package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOfContentSectionStatisticsPassthrough(t *testing.T) {
	wrapped := NewTableOfContentSection(&markerSection{}, 1)

	assert.Equal(t, map[string]any{"marker": true}, wrapped.Statistics())
}

func TestTableOfContentSectionBodyPrependsTOC(t *testing.T) {
	inner := NewDict([]NamedSection{
		{Name: "first", Section: &markerSection{}},
		{Name: "second", Section: &markerSection{}},
	}, 0)
	wrapped := NewTableOfContentSection(inner, 2)

	body, err := wrapped.RenderHTMLBody("", nil, 0)
	require.NoError(t, err)

	tocIdx := strings.Index(body, `href="#first"`)
	bodyIdx := strings.Index(body, "body 1.")
	require.GreaterOrEqual(t, tocIdx, 0)
	require.GreaterOrEqual(t, bodyIdx, 0)
	assert.Less(t, tocIdx, bodyIdx, "TOC should come before the body")
}

func TestTableOfContentSectionEmptyTOC(t *testing.T) {
	wrapped := NewTableOfContentSection(NewEmptySection(), 3)

	body, err := wrapped.RenderHTMLBody("", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestTableOfContentSectionTOCPassthrough(t *testing.T) {
	wrapped := NewTableOfContentSection(&markerSection{}, 1)

	toc, err := wrapped.RenderHTMLTOC("1.", []string{"x"}, 0, 2)
	require.NoError(t, err)
	assert.Contains(t, toc, `href="#x"`)

	cut, err := wrapped.RenderHTMLTOC("1.", []string{"x"}, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, cut)
}
