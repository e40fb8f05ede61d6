package analyzer

import (
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
	"github.com/frameprof/frameprof/internal/stats"
)

// FrameSummaryAnalyzer summarizes each column of the frame: null count,
// unique values, type and most frequent values.
type FrameSummaryAnalyzer struct {
	top int
}

// NewFrameSummaryAnalyzer creates a summary analyzer showing the top most
// frequent values per column.
func NewFrameSummaryAnalyzer(top int) *FrameSummaryAnalyzer {
	return &FrameSummaryAnalyzer{top: top}
}

func (a *FrameSummaryAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	columns := frame.Columns()
	nullCount := make([]int, len(columns))
	nunique := make([]int, len(columns))
	columnTypes := make([]string, len(columns))
	mostCommon := make([][]stats.Entry, len(columns))
	for i, name := range columns {
		series, _ := frame.Column(name)
		nullCount[i] = series.NullCount()
		nunique[i] = series.NUnique(false)
		columnTypes[i] = string(series.Kind())
		mostCommon[i] = series.ValueCounts(false).MostCommon(-1)
	}
	return section.NewFrameSummarySection(columns, nullCount, nunique, columnTypes, mostCommon, a.top)
}

type summaryConfig struct {
	Top int `mapstructure:"top"`
}

func newSummaryFromConfig(cfg Config) (Analyzer, error) {
	var opts summaryConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewFrameSummaryAnalyzer(opts.Top), nil
}

func init() {
	Register("frame_summary", newSummaryFromConfig)
}
