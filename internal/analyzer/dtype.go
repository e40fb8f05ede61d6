package analyzer

import (
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// DataTypeAnalyzer analyzes the declared and observed data types of each
// column of the frame.
type DataTypeAnalyzer struct{}

// NewDataTypeAnalyzer creates an analyzer of column data types.
func NewDataTypeAnalyzer() *DataTypeAnalyzer {
	return &DataTypeAnalyzer{}
}

func (a *DataTypeAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	dtypes := make(map[string]string, frame.NumColumns())
	types := make(map[string]map[string]struct{}, frame.NumColumns())
	for _, name := range frame.Columns() {
		series, _ := frame.Column(name)
		dtypes[name] = string(series.Kind())
		types[name] = series.ObservedTypes()
	}
	return section.NewDataTypeSection(dtypes, types)
}

func newDataTypeFromConfig(cfg Config) (Analyzer, error) {
	var opts struct{}
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewDataTypeAnalyzer(), nil
}

func init() {
	Register("data_types", newDataTypeFromConfig)
}
