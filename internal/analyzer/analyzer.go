// Package analyzer holds the stateless strategies that derive report
// sections from a frame. Analyzers validate their configuration at
// construction time; structural mismatches discovered during analysis, like
// a missing column, degrade to an empty section instead of failing the run.
package analyzer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// Analyzer computes a report section from a frame. Analyze never mutates
// the frame and returns an error only for invariant violations, not for
// structurally incompatible input.
type Analyzer interface {
	Analyze(frame *dataframe.Frame) (section.Section, error)
}

// Config is a declarative analyzer description, typically decoded from a
// YAML or TOML report schema. The "type" key names the registered analyzer
// kind; the remaining keys are kind-specific options.
type Config map[string]any

// Factory builds an analyzer from its declarative configuration.
type Factory func(cfg Config) (Analyzer, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a factory available under the given type name. Registering
// the same name twice panics; it indicates conflicting init registrations.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("analyzer type %q registered twice", name))
	}
	registry[name] = factory
}

// Resolve builds an analyzer from its configuration using the registered
// factory for its "type".
func Resolve(cfg Config) (Analyzer, error) {
	name, ok := cfg["type"].(string)
	if !ok || name == "" {
		return nil, domain.NewConfigError("analyzer config has no `type` key", nil)
	}
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, domain.NewConfigError(fmt.Sprintf("unknown analyzer type: %s", name), nil)
	}
	return factory(cfg)
}

// RegisteredTypes returns the sorted names of all registered analyzer types.
func RegisteredTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAnalyzerConfig reports whether v looks like an analyzer configuration,
// i.e. a mapping with a string "type" key.
func IsAnalyzerConfig(v any) bool {
	switch m := v.(type) {
	case Config:
		_, ok := m["type"].(string)
		return ok
	case map[string]any:
		_, ok := m["type"].(string)
		return ok
	default:
		return false
	}
}

// defaultFigSize is the figure size used when the configuration does not
// set one. The zero Size falls back to the renderer default.
func defaultFigSize() figure.Size {
	return figure.Size{}
}

// decodeConfig maps the configuration keys onto a kind-specific options
// struct, rejecting unknown keys.
func decodeConfig(cfg Config, out any) error {
	opts := make(map[string]any, len(cfg))
	for k, v := range cfg {
		if k == "type" {
			continue
		}
		opts[k] = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return domain.NewConfigError("failed to build config decoder", err)
	}
	if err := dec.Decode(opts); err != nil {
		return domain.NewConfigError("invalid analyzer config", err)
	}
	return nil
}
