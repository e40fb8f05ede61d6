package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "report.html", cfg.Output)
	assert.Equal(t, "Data report", cfg.Title)
	assert.Equal(t, 2, cfg.MaxTOCDepth)
	assert.Equal(t, 5, cfg.Top)
	assert.Empty(t, cfg.Input)
	assert.False(t, cfg.Open)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".frameprof.yaml", `
input:
  - data/*.csv
output: out/report.html
title: Sales data
max_toc_depth: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"data/*.csv"}, cfg.Input)
	assert.Equal(t, "out/report.html", cfg.Output)
	assert.Equal(t, "Sales data", cfg.Title)
	assert.Equal(t, 3, cfg.MaxTOCDepth)
	// unset fields keep their defaults
	assert.Equal(t, 5, cfg.Top)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.MaxTOCDepth = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))

	cfg = DefaultConfig()
	cfg.Top = -3
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top must not be negative")
}
