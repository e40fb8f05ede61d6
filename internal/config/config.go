// Package config loads the report configuration from the CLI config file
// (.frameprof.yaml), the project defaults file (frameprof.toml) and the
// declarative report schema.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/frameprof/frameprof/domain"
)

// Defaults applied when neither a config file nor a flag sets the value.
const (
	// DefaultOutput is the path of the generated report.
	DefaultOutput = "report.html"

	// DefaultTitle is the report title when none is configured.
	DefaultTitle = "Data report"

	// DefaultMaxTOCDepth is the depth of the report table of contents.
	DefaultMaxTOCDepth = 2

	// DefaultTop is the number of most frequent values shown per column in
	// the frame summary.
	DefaultTop = 5
)

// Config represents the report generation configuration.
type Config struct {
	// Input holds the CSV input paths or glob patterns.
	Input []string `mapstructure:"input" yaml:"input"`

	// Output is the path of the generated HTML report.
	Output string `mapstructure:"output" yaml:"output"`

	// Title is the report title.
	Title string `mapstructure:"title" yaml:"title"`

	// Schema is the path of the declarative report schema. Empty means the
	// built-in default report.
	Schema string `mapstructure:"schema" yaml:"schema"`

	// MaxTOCDepth is the depth of the report table of contents.
	MaxTOCDepth int `mapstructure:"max_toc_depth" yaml:"max_toc_depth"`

	// Top is the number of most frequent values per column in the summary.
	Top int `mapstructure:"top" yaml:"top"`

	// Open opens the generated report in the default browser.
	Open bool `mapstructure:"open" yaml:"open"`
}

// DefaultConfig returns the configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Output:      DefaultOutput,
		Title:       DefaultTitle,
		MaxTOCDepth: DefaultMaxTOCDepth,
		Top:         DefaultTop,
	}
}

// LoadConfig loads the configuration from the given file, or from
// .frameprof.yaml in the working directory when path is empty. A missing
// default file is not an error; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, domain.NewConfigError("failed to resolve working directory", err)
		}
		candidate := filepath.Join(wd, ".frameprof.yaml")
		if _, err := os.Stat(candidate); err != nil {
			return mergeTomlDefaults(cfg)
		}
		v.SetConfigFile(candidate)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError("failed to parse configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return mergeTomlDefaults(cfg)
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.MaxTOCDepth < 0 {
		return domain.NewConfigError(
			fmt.Sprintf("max_toc_depth must not be negative, got %d", c.MaxTOCDepth), nil)
	}
	if c.Top < 0 {
		return domain.NewConfigError(
			fmt.Sprintf("top must not be negative, got %d", c.Top), nil)
	}
	return nil
}
