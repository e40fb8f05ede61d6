package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/section"
)

// ColumnContinuousAnalyzer analyzes the continuous value distribution of
// one column.
type ColumnContinuousAnalyzer struct {
	column  string
	nbins   int
	yscale  string
	xmin    string
	xmax    string
	figsize figure.Size
}

// NewColumnContinuousAnalyzer creates an analyzer of the distribution of
// column. xmin and xmax are range bound specifiers, either a literal number
// or "q<p>" for a quantile of the data.
func NewColumnContinuousAnalyzer(column string, nbins int, yscale, xmin, xmax string, figsize figure.Size) (*ColumnContinuousAnalyzer, error) {
	for _, spec := range []string{xmin, xmax} {
		if err := validateBoundSpec(spec); err != nil {
			return nil, err
		}
	}
	return &ColumnContinuousAnalyzer{
		column:  column,
		nbins:   nbins,
		yscale:  yscale,
		xmin:    xmin,
		xmax:    xmax,
		figsize: figsize,
	}, nil
}

// validateBoundSpec rejects malformed range bounds at construction time so
// the report does not fail at render time.
func validateBoundSpec(spec string) error {
	if spec == "" {
		return nil
	}
	if strings.HasPrefix(spec, "q") {
		p, err := strconv.ParseFloat(spec[1:], 64)
		if err != nil || p < 0 || p > 1 {
			return domain.NewConfigError(fmt.Sprintf("invalid quantile bound: %s", spec), nil)
		}
		return nil
	}
	if _, err := strconv.ParseFloat(spec, 64); err != nil {
		return domain.NewConfigError(fmt.Sprintf("invalid range bound: %s", spec), nil)
	}
	return nil
}

func (a *ColumnContinuousAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	series, ok := frame.Column(a.column)
	if !ok {
		log.Info().Str("column", a.column).Msg(missingColumnMessage("continuous distribution", a.column))
		return section.NewEmptySection(), nil
	}
	return section.NewColumnContinuousSection(
		series.Floats(), a.column, a.nbins, a.yscale, a.xmin, a.xmax, a.figsize), nil
}

type continuousConfig struct {
	Column string `mapstructure:"column"`
	NBins  int    `mapstructure:"nbins"`
	YScale string `mapstructure:"yscale"`
	XMin   string `mapstructure:"xmin"`
	XMax   string `mapstructure:"xmax"`
}

func newContinuousFromConfig(cfg Config) (Analyzer, error) {
	var opts continuousConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewColumnContinuousAnalyzer(
		opts.Column, opts.NBins, opts.YScale, opts.XMin, opts.XMax, defaultFigSize())
}

func init() {
	Register("column_continuous", newContinuousFromConfig)
}
