package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// ColumnSubsetAnalyzer projects the frame on a subset of its columns before
// delegating to another analyzer. When some of the requested columns are
// missing the analysis degrades to an empty section.
type ColumnSubsetAnalyzer struct {
	columns  []string
	delegate Analyzer
}

// NewColumnSubsetAnalyzer creates an analyzer running delegate on the
// projection of the frame on columns.
func NewColumnSubsetAnalyzer(columns []string, delegate Analyzer) *ColumnSubsetAnalyzer {
	return &ColumnSubsetAnalyzer{columns: append([]string{}, columns...), delegate: delegate}
}

func (a *ColumnSubsetAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	projected, err := frame.Select(a.columns...)
	if err != nil {
		if domain.HasCode(err, domain.ErrCodeLookup) {
			log.Info().Strs("columns", a.columns).
				Msg("skipping column subset analysis because some columns are missing")
			return section.NewEmptySection(), nil
		}
		return nil, err
	}
	return a.delegate.Analyze(projected)
}

type subsetConfig struct {
	Columns  []string       `mapstructure:"columns"`
	Analyzer map[string]any `mapstructure:"analyzer"`
}

func newSubsetFromConfig(cfg Config) (Analyzer, error) {
	var opts subsetConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	if len(opts.Columns) == 0 {
		return nil, domain.NewConfigError("column_subset analyzer needs `columns`", nil)
	}
	delegate, err := Resolve(Config(opts.Analyzer))
	if err != nil {
		return nil, err
	}
	return NewColumnSubsetAnalyzer(opts.Columns, delegate), nil
}

func init() {
	Register("column_subset", newSubsetFromConfig)
}
