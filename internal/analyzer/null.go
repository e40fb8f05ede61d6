package analyzer

import (
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// NullValueAnalyzer analyzes the number of null values in each column of
// the frame.
type NullValueAnalyzer struct {
	figsize figure.Size
}

// NewNullValueAnalyzer creates an analyzer of per-column null counts.
func NewNullValueAnalyzer(figsize figure.Size) *NullValueAnalyzer {
	return &NullValueAnalyzer{figsize: figsize}
}

func (a *NullValueAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	columns := frame.Columns()
	nullCount := make([]int, len(columns))
	totalCount := make([]int, len(columns))
	for i, name := range columns {
		series, _ := frame.Column(name)
		nullCount[i] = series.NullCount()
		totalCount[i] = series.Len()
	}
	return section.NewNullValueSection(columns, nullCount, totalCount, a.figsize)
}

func newNullValueFromConfig(cfg Config) (Analyzer, error) {
	var opts struct{}
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewNullValueAnalyzer(defaultFigSize()), nil
}

func init() {
	Register("null_values", newNullValueFromConfig)
}
