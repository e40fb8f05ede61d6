package analyzer

import (
	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// TableOfContentAnalyzer wraps another analyzer and prepends a table of
// contents to the section it produces.
type TableOfContentAnalyzer struct {
	delegate    Analyzer
	maxTOCDepth int
}

// NewTableOfContentAnalyzer wraps delegate. maxTOCDepth limits how deep the
// inlined table of contents recurses.
func NewTableOfContentAnalyzer(delegate Analyzer, maxTOCDepth int) *TableOfContentAnalyzer {
	return &TableOfContentAnalyzer{delegate: delegate, maxTOCDepth: maxTOCDepth}
}

func (a *TableOfContentAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	sec, err := a.delegate.Analyze(frame)
	if err != nil {
		return nil, err
	}
	return section.NewTableOfContentSection(sec, a.maxTOCDepth), nil
}

type tocConfig struct {
	MaxTOCDepth int            `mapstructure:"max_toc_depth"`
	Analyzer    map[string]any `mapstructure:"analyzer"`
}

func newTOCFromConfig(cfg Config) (Analyzer, error) {
	var opts tocConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	if opts.MaxTOCDepth <= 0 {
		opts.MaxTOCDepth = 1
	}
	delegate, err := Resolve(Config(opts.Analyzer))
	if err != nil {
		return nil, domain.NewConfigError("invalid nested analyzer config", err)
	}
	return NewTableOfContentAnalyzer(delegate, opts.MaxTOCDepth), nil
}

func init() {
	Register("table_of_content", newTOCFromConfig)
}
