package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
)

func TestFindTomlConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, root, "frameprof.toml", "[report]\n")

	assert.Equal(t, filepath.Join(root, "frameprof.toml"), FindTomlConfig(nested))
	assert.Equal(t, "", FindTomlConfig(t.TempDir()))
}

func TestLoadTomlConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "frameprof.toml", `
[report]
input = ["data.csv"]
title = "Project data"
top = 10
`)

	cfg, err := LoadTomlConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"data.csv"}, cfg.Report.Input)
	assert.Equal(t, "Project data", cfg.Report.Title)
	require.NotNil(t, cfg.Report.Top)
	assert.Equal(t, 10, *cfg.Report.Top)
	assert.Nil(t, cfg.Report.MaxTOCDepth)
}

func TestLoadTomlConfigInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "frameprof.toml", "[report\n")

	_, err := LoadTomlConfig(path)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))
}

func TestApplyTomlDefaults(t *testing.T) {
	depth := 4
	report := &TomlReportConfig{
		Input:       []string{"a.csv"},
		Output:      "toml.html",
		Title:       "From toml",
		MaxTOCDepth: &depth,
	}

	cfg := DefaultConfig()
	applyTomlDefaults(cfg, report)

	assert.Equal(t, []string{"a.csv"}, cfg.Input)
	assert.Equal(t, "toml.html", cfg.Output)
	assert.Equal(t, "From toml", cfg.Title)
	assert.Equal(t, 4, cfg.MaxTOCDepth)
	assert.Equal(t, 5, cfg.Top)
}

func TestApplyTomlDefaultsDoesNotOverrideExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "explicit.html"
	cfg.Title = "Explicit"
	cfg.MaxTOCDepth = 1

	depth := 4
	applyTomlDefaults(cfg, &TomlReportConfig{
		Output:      "toml.html",
		Title:       "From toml",
		MaxTOCDepth: &depth,
	})

	assert.Equal(t, "explicit.html", cfg.Output)
	assert.Equal(t, "Explicit", cfg.Title)
	assert.Equal(t, 1, cfg.MaxTOCDepth)
}
