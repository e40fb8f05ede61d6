package reporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

func testRoot(t *testing.T) section.Section {
	t.Helper()
	nulls, err := section.NewNullValueSection(
		[]string{"col"}, []int{1}, []int{4}, figure.Size{})
	require.NoError(t, err)
	return section.NewDict([]section.NamedSection{
		{Name: "null values", Section: nulls},
	}, 0)
}

func TestRender(t *testing.T) {
	page, err := New("Sales data", 2).Render(testRoot(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, "<title>Sales data</title>")
	assert.Contains(t, page, "<h1>Sales data</h1>")
	assert.Contains(t, page, "Table of content")
	assert.Contains(t, page, `href="#null-values"`)
	assert.Contains(t, page, `id="null-values"`)
	// the TOC links come before the section bodies
	assert.Less(t, strings.Index(page, `href="#null-values"`), strings.Index(page, `id="null-values"`))
}

func TestRenderDefaults(t *testing.T) {
	page, err := New("", 0).Render(testRoot(t))
	require.NoError(t, err)

	assert.Contains(t, page, "<title>Data report</title>")
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.html")

	require.NoError(t, New("Sales data", 2).Write(testRoot(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Sales data</h1>")
}
