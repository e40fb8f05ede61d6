package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/frameprof/frameprof/domain"
)

// TomlConfig represents the structure of frameprof.toml, the project-level
// defaults file. Values set in .frameprof.yaml or on the command line take
// precedence.
type TomlConfig struct {
	Report TomlReportConfig `toml:"report"`
}

// TomlReportConfig represents the [report] section.
type TomlReportConfig struct {
	Input       []string `toml:"input"`
	Output      string   `toml:"output"`
	Title       string   `toml:"title"`
	Schema      string   `toml:"schema"`
	MaxTOCDepth *int     `toml:"max_toc_depth"` // pointer to detect unset
	Top         *int     `toml:"top"`           // pointer to detect unset
}

// FindTomlConfig walks from dir upward looking for a frameprof.toml file
// and returns its path, or "" when none exists.
func FindTomlConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, "frameprof.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadTomlConfig parses a frameprof.toml file.
func LoadTomlConfig(path string) (*TomlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to read frameprof.toml", err)
	}
	var cfg TomlConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, domain.NewConfigError("failed to parse frameprof.toml", err)
	}
	return &cfg, nil
}

// mergeTomlDefaults fills unset fields of cfg from the nearest
// frameprof.toml, when one exists.
func mergeTomlDefaults(cfg *Config) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return cfg, nil
	}
	path := FindTomlConfig(wd)
	if path == "" {
		return cfg, nil
	}
	tomlCfg, err := LoadTomlConfig(path)
	if err != nil {
		return nil, err
	}
	applyTomlDefaults(cfg, &tomlCfg.Report)
	return cfg, cfg.Validate()
}

// applyTomlDefaults copies toml values into cfg fields still at their
// zero/default value.
func applyTomlDefaults(cfg *Config, report *TomlReportConfig) {
	if len(cfg.Input) == 0 {
		cfg.Input = report.Input
	}
	if cfg.Output == DefaultOutput && report.Output != "" {
		cfg.Output = report.Output
	}
	if cfg.Title == DefaultTitle && report.Title != "" {
		cfg.Title = report.Title
	}
	if cfg.Schema == "" {
		cfg.Schema = report.Schema
	}
	if cfg.MaxTOCDepth == DefaultMaxTOCDepth && report.MaxTOCDepth != nil {
		cfg.MaxTOCDepth = *report.MaxTOCDepth
	}
	if cfg.Top == DefaultTop && report.Top != nil {
		cfg.Top = *report.Top
	}
}
