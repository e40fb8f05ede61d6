package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// TemporalNullValueAnalyzer analyzes the evolution of null counts over
// temporal buckets of a datetime column.
type TemporalNullValueAnalyzer struct {
	columns  []string
	dtColumn string
	period   dataframe.Period
	figsize  figure.Size
}

// NewTemporalNullValueAnalyzer creates an analyzer of null counts in
// columns, grouped by the buckets of dtColumn at the given period. An empty
// columns slice analyzes every column.
func NewTemporalNullValueAnalyzer(columns []string, dtColumn string, period dataframe.Period, figsize figure.Size) *TemporalNullValueAnalyzer {
	return &TemporalNullValueAnalyzer{
		columns:  append([]string{}, columns...),
		dtColumn: dtColumn,
		period:   period,
		figsize:  figsize,
	}
}

func (a *TemporalNullValueAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	if !frame.HasColumn(a.dtColumn) {
		log.Info().Str("column", a.dtColumn).Msg(missingColumnMessage("temporal null value", a.dtColumn))
		return section.NewEmptySection(), nil
	}
	columns := a.columns
	if len(columns) == 0 {
		columns = frame.Columns()
	}
	var present []*dataframe.Series
	for _, name := range columns {
		series, ok := frame.Column(name)
		if !ok {
			log.Info().Str("column", name).Msg(missingColumnMessage("temporal null value", name))
			return section.NewEmptySection(), nil
		}
		present = append(present, series)
	}
	groups, err := frame.GroupByPeriod(a.dtColumn, a.period)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(groups))
	nullCounts := make([]int, len(groups))
	totals := make([]int, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		for _, row := range g.Rows {
			for _, series := range present {
				totals[i]++
				if series.IsNull(row) {
					nullCounts[i]++
				}
			}
		}
	}
	return section.NewTemporalNullValueSection(
		labels, nullCounts, totals, columns, a.dtColumn, string(a.period), a.figsize)
}

type temporalNullConfig struct {
	Columns  []string `mapstructure:"columns"`
	DtColumn string   `mapstructure:"dt_column"`
	Period   string   `mapstructure:"period"`
}

func newTemporalNullFromConfig(cfg Config) (Analyzer, error) {
	var opts temporalNullConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	period, err := dataframe.ParsePeriod(opts.Period)
	if err != nil {
		return nil, err
	}
	return NewTemporalNullValueAnalyzer(opts.Columns, opts.DtColumn, period, defaultFigSize()), nil
}

func init() {
	Register("temporal_null_values", newTemporalNullFromConfig)
}
