package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// TemporalRowCountAnalyzer counts rows per temporal bucket of a datetime
// column.
type TemporalRowCountAnalyzer struct {
	dtColumn string
	period   dataframe.Period
	figsize  figure.Size
}

// NewTemporalRowCountAnalyzer creates an analyzer grouping rows by the
// buckets of dtColumn at the given period.
func NewTemporalRowCountAnalyzer(dtColumn string, period dataframe.Period, figsize figure.Size) *TemporalRowCountAnalyzer {
	return &TemporalRowCountAnalyzer{dtColumn: dtColumn, period: period, figsize: figsize}
}

func (a *TemporalRowCountAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	if !frame.HasColumn(a.dtColumn) {
		log.Info().Str("column", a.dtColumn).Msg(missingColumnMessage("temporal row count", a.dtColumn))
		return section.NewEmptySection(), nil
	}
	groups, err := frame.GroupByPeriod(a.dtColumn, a.period)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(groups))
	counts := make([]int, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		counts[i] = len(g.Rows)
	}
	return section.NewTemporalRowCountSection(
		labels, counts, a.dtColumn, string(a.period), a.figsize), nil
}

type temporalConfig struct {
	DtColumn string `mapstructure:"dt_column"`
	Period   string `mapstructure:"period"`
}

func newTemporalRowCountFromConfig(cfg Config) (Analyzer, error) {
	var opts temporalConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	period, err := dataframe.ParsePeriod(opts.Period)
	if err != nil {
		return nil, err
	}
	return NewTemporalRowCountAnalyzer(opts.DtColumn, period, defaultFigSize()), nil
}

func init() {
	Register("temporal_row_count", newTemporalRowCountFromConfig)
}
