package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// ColumnDiscreteAnalyzer analyzes the discrete value distribution of one
// column.
type ColumnDiscreteAnalyzer struct {
	column  string
	maxRows int
	yscale  string
	figsize figure.Size
}

// NewColumnDiscreteAnalyzer creates an analyzer of the value frequencies of
// column. maxRows limits the frequency table, yscale is "linear", "log",
// "symlog" or "auto".
func NewColumnDiscreteAnalyzer(column string, maxRows int, yscale string, figsize figure.Size) *ColumnDiscreteAnalyzer {
	return &ColumnDiscreteAnalyzer{column: column, maxRows: maxRows, yscale: yscale, figsize: figsize}
}

func (a *ColumnDiscreteAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	series, ok := frame.Column(a.column)
	if !ok {
		log.Info().Str("column", a.column).Msg(missingColumnMessage("discrete distribution", a.column))
		return section.NewEmptySection(), nil
	}
	counter := series.ValueCounts(true)
	return section.NewColumnDiscreteSection(
		counter, series.NullCount(), a.column, a.maxRows, a.yscale, a.figsize), nil
}

type discreteConfig struct {
	Column  string `mapstructure:"column"`
	MaxRows int    `mapstructure:"max_rows"`
	YScale  string `mapstructure:"yscale"`
}

func newDiscreteFromConfig(cfg Config) (Analyzer, error) {
	var opts discreteConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewColumnDiscreteAnalyzer(opts.Column, opts.MaxRows, opts.YScale, defaultFigSize()), nil
}

func init() {
	Register("column_discrete", newDiscreteFromConfig)
}
