package analyzer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// MostFrequentValuesAnalyzer analyzes the most frequently occurring values
// of one column. Null values count as a value unless dropna is set.
type MostFrequentValuesAnalyzer struct {
	column string
	dropna bool
	top    int
}

// NewMostFrequentValuesAnalyzer creates an analyzer of the top most
// frequent values of column. top must not be negative.
func NewMostFrequentValuesAnalyzer(column string, dropna bool, top int) (*MostFrequentValuesAnalyzer, error) {
	if top < 0 {
		return nil, domain.NewConfigError(fmt.Sprintf(
			"Incorrect top value (%d). top must be greater or equal to 0", top), nil)
	}
	return &MostFrequentValuesAnalyzer{column: column, dropna: dropna, top: top}, nil
}

func (a *MostFrequentValuesAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	series, ok := frame.Column(a.column)
	if !ok {
		log.Info().Str("column", a.column).Msg(missingColumnMessage("most frequent values", a.column))
		return section.NewEmptySection(), nil
	}
	return section.NewMostFrequentValuesSection(series.ValueCounts(a.dropna), a.column, a.top)
}

type mostFrequentConfig struct {
	Column string `mapstructure:"column"`
	DropNA bool   `mapstructure:"dropna"`
	Top    int    `mapstructure:"top"`
}

func newMostFrequentFromConfig(cfg Config) (Analyzer, error) {
	var opts mostFrequentConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewMostFrequentValuesAnalyzer(opts.Column, opts.DropNA, opts.Top)
}

func init() {
	Register("most_frequent_values", newMostFrequentFromConfig)
}
