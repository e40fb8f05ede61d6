package analyzer

import (
	"fmt"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// SelectionFn picks, for a given frame, the name of the analyzer to run.
type SelectionFn func(frame *dataframe.Frame) string

// ChoiceAnalyzer dispatches the frame to one of several candidate analyzers
// based on a data-dependent selection function.
type ChoiceAnalyzer struct {
	choices   map[string]Analyzer
	selection SelectionFn
}

// NewChoiceAnalyzer creates an analyzer that runs the candidate chosen by
// selection.
func NewChoiceAnalyzer(choices map[string]Analyzer, selection SelectionFn) *ChoiceAnalyzer {
	return &ChoiceAnalyzer{choices: choices, selection: selection}
}

func (c *ChoiceAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	key := c.selection(frame)
	chosen, ok := c.choices[key]
	if !ok {
		return nil, domain.NewLookupError(key)
	}
	return chosen.Analyze(frame)
}

// DefaultNumUniqueThreshold is the unique-count cut-off between a "small"
// and a "large" cardinality column.
const DefaultNumUniqueThreshold = 100

// NumUniqueSelection returns a selection function that picks "small" when
// the column has at most threshold unique values and "large" otherwise. A
// missing column counts as small.
func NumUniqueSelection(column string, threshold int) SelectionFn {
	if threshold <= 0 {
		threshold = DefaultNumUniqueThreshold
	}
	return func(frame *dataframe.Frame) string {
		series, ok := frame.Column(column)
		if !ok {
			return "small"
		}
		if series.NUnique(false) <= threshold {
			return "small"
		}
		return "large"
	}
}

type columnDistributionConfig struct {
	Column    string `mapstructure:"column"`
	Threshold int    `mapstructure:"threshold"`
	NBins     int    `mapstructure:"nbins"`
	YScale    string `mapstructure:"yscale"`
	XMin      string `mapstructure:"xmin"`
	XMax      string `mapstructure:"xmax"`
	MaxRows   int    `mapstructure:"max_rows"`
}

// newColumnDistributionFromConfig wires the cardinality-based dispatch
// between the discrete and continuous column analyzers.
func newColumnDistributionFromConfig(cfg Config) (Analyzer, error) {
	var opts columnDistributionConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	if opts.Column == "" {
		return nil, domain.NewConfigError("column_distribution analyzer needs a `column`", nil)
	}
	discrete := NewColumnDiscreteAnalyzer(opts.Column, opts.MaxRows, opts.YScale, defaultFigSize())
	continuous, err := NewColumnContinuousAnalyzer(
		opts.Column, opts.NBins, opts.YScale, opts.XMin, opts.XMax, defaultFigSize())
	if err != nil {
		return nil, err
	}
	return NewChoiceAnalyzer(map[string]Analyzer{
		"small": discrete,
		"large": continuous,
	}, NumUniqueSelection(opts.Column, opts.Threshold)), nil
}

func init() {
	Register("column_distribution", newColumnDistributionFromConfig)
}

// missingColumnMessage is the shared diagnostic for analyzers skipping a
// frame because a required column is absent.
func missingColumnMessage(kind, column string) string {
	return fmt.Sprintf("skipping %s analysis because column `%s` is missing", kind, column)
}
