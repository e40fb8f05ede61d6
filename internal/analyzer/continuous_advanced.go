package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// ColumnContinuousAdvancedAnalyzer is the extended continuous analyzer: the
// full distribution plus a zoom on the inter-quartile range.
type ColumnContinuousAdvancedAnalyzer struct {
	column  string
	nbins   int
	yscale  string
	figsize figure.Size
}

// NewColumnContinuousAdvancedAnalyzer creates an advanced analyzer of the
// distribution of column.
func NewColumnContinuousAdvancedAnalyzer(column string, nbins int, yscale string, figsize figure.Size) *ColumnContinuousAdvancedAnalyzer {
	return &ColumnContinuousAdvancedAnalyzer{
		column:  column,
		nbins:   nbins,
		yscale:  yscale,
		figsize: figsize,
	}
}

func (a *ColumnContinuousAdvancedAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	series, ok := frame.Column(a.column)
	if !ok {
		log.Info().Str("column", a.column).Msg(missingColumnMessage("advanced continuous distribution", a.column))
		return section.NewEmptySection(), nil
	}
	return section.NewColumnContinuousAdvancedSection(
		series.Floats(), a.column, a.nbins, a.yscale, a.figsize), nil
}

type continuousAdvancedConfig struct {
	Column string `mapstructure:"column"`
	NBins  int    `mapstructure:"nbins"`
	YScale string `mapstructure:"yscale"`
}

func newContinuousAdvancedFromConfig(cfg Config) (Analyzer, error) {
	var opts continuousAdvancedConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewColumnContinuousAdvancedAnalyzer(opts.Column, opts.NBins, opts.YScale, defaultFigSize()), nil
}

func init() {
	Register("column_continuous_advanced", newContinuousAdvancedFromConfig)
}
