package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/analyzer"
	"github.com/frameprof/frameprof/internal/figure"
)

// LoadSchema reads a declarative report schema file and resolves it into an
// analyzer tree through the registry. The schema is a YAML analyzer config:
// a mapping with a "type" key naming the analyzer kind plus kind-specific
// options, nested arbitrarily.
func LoadSchema(path string) (analyzer.Analyzer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to read report schema", err)
	}
	return ParseSchema(data)
}

// ParseSchema resolves a YAML analyzer config document.
func ParseSchema(data []byte) (analyzer.Analyzer, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewConfigError("failed to parse report schema", err)
	}
	if !analyzer.IsAnalyzerConfig(raw) {
		return nil, domain.NewConfigError("report schema root must be an analyzer config with a `type` key", nil)
	}
	return analyzer.Resolve(analyzer.Config(raw))
}

// DefaultAnalyzer builds the built-in report used when no schema is
// configured: a frame summary, data types, duplicated rows, null values and
// a per-column distribution for every column of the frame, wrapped in a
// table of contents.
func DefaultAnalyzer(columns []string, cfg *Config) (analyzer.Analyzer, error) {
	summary := analyzer.NewFrameSummaryAnalyzer(cfg.Top)
	children := []analyzer.NamedAnalyzer{
		{Name: "summary", Analyzer: summary},
		{Name: "data types", Analyzer: analyzer.NewDataTypeAnalyzer()},
		{Name: "duplicated rows", Analyzer: analyzer.NewDuplicatedRowAnalyzer(nil)},
		{Name: "null values", Analyzer: analyzer.NewNullValueAnalyzer(figure.Size{})},
	}
	columnChildren := make([]analyzer.NamedAnalyzer, 0, len(columns))
	for _, column := range columns {
		dist, err := columnDistribution(column)
		if err != nil {
			return nil, err
		}
		columnChildren = append(columnChildren, analyzer.NamedAnalyzer{Name: column, Analyzer: dist})
	}
	if len(columnChildren) > 0 {
		columnsAnalyzer, err := analyzer.NewMappingAnalyzer(columnChildren, 0)
		if err != nil {
			return nil, err
		}
		children = append(children, analyzer.NamedAnalyzer{Name: "columns", Analyzer: columnsAnalyzer})
	}
	root, err := analyzer.NewMappingAnalyzer(children, 0)
	if err != nil {
		return nil, err
	}
	return analyzer.NewTableOfContentAnalyzer(root, cfg.MaxTOCDepth), nil
}

// columnDistribution dispatches between the discrete and continuous
// analyzers on the cardinality of the column.
func columnDistribution(column string) (analyzer.Analyzer, error) {
	continuous, err := analyzer.NewColumnContinuousAnalyzer(column, 0, "auto", "", "", figure.Size{})
	if err != nil {
		return nil, err
	}
	return analyzer.NewChoiceAnalyzer(map[string]analyzer.Analyzer{
		"small": analyzer.NewColumnDiscreteAnalyzer(column, 0, "auto", figure.Size{}),
		"large": continuous,
	}, analyzer.NumUniqueSelection(column, 0)), nil
}
