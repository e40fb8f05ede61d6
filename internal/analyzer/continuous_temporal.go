package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// ColumnTemporalContinuousAnalyzer analyzes the temporal distribution of a
// column with continuous values, bucketed by a datetime column.
type ColumnTemporalContinuousAnalyzer struct {
	column   string
	dtColumn string
	period   dataframe.Period
	yscale   string
	figsize  figure.Size
}

// NewColumnTemporalContinuousAnalyzer creates an analyzer of the per-period
// distribution of column, grouped by the buckets of dtColumn.
func NewColumnTemporalContinuousAnalyzer(column, dtColumn string, period dataframe.Period, yscale string, figsize figure.Size) *ColumnTemporalContinuousAnalyzer {
	return &ColumnTemporalContinuousAnalyzer{
		column:   column,
		dtColumn: dtColumn,
		period:   period,
		yscale:   yscale,
		figsize:  figsize,
	}
}

func (a *ColumnTemporalContinuousAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	series, ok := frame.Column(a.column)
	if !ok {
		log.Info().Str("column", a.column).Msg(missingColumnMessage("temporal continuous distribution", a.column))
		return section.NewEmptySection(), nil
	}
	if !frame.HasColumn(a.dtColumn) {
		log.Info().Str("column", a.dtColumn).Msg(missingColumnMessage("temporal continuous distribution", a.dtColumn))
		return section.NewEmptySection(), nil
	}
	groups, err := frame.GroupByPeriod(a.dtColumn, a.period)
	if err != nil {
		return nil, err
	}
	floats := series.Floats()
	labels := make([]string, len(groups))
	values := make([][]float64, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		bucket := make([]float64, 0, len(g.Rows))
		for _, row := range g.Rows {
			bucket = append(bucket, floats[row])
		}
		values[i] = bucket
	}
	return section.NewColumnTemporalContinuousSection(
		values, labels, a.column, a.dtColumn, string(a.period), a.yscale, a.figsize)
}

type temporalContinuousConfig struct {
	Column   string `mapstructure:"column"`
	DtColumn string `mapstructure:"dt_column"`
	Period   string `mapstructure:"period"`
	YScale   string `mapstructure:"yscale"`
}

func newTemporalContinuousFromConfig(cfg Config) (Analyzer, error) {
	var opts temporalContinuousConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	period, err := dataframe.ParsePeriod(opts.Period)
	if err != nil {
		return nil, err
	}
	return NewColumnTemporalContinuousAnalyzer(
		opts.Column, opts.DtColumn, period, opts.YScale, defaultFigSize()), nil
}

func init() {
	Register("column_temporal_continuous", newTemporalContinuousFromConfig)
}
