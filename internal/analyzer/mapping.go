package analyzer

import (
	"sort"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// NamedAnalyzer pairs an analyzer with the name it is registered under in
// its parent composite.
type NamedAnalyzer struct {
	Name     string
	Analyzer Analyzer
}

// MappingAnalyzer runs an ordered collection of named analyzers and bundles
// their sections into a composite section. Children run and render in
// insertion order.
type MappingAnalyzer struct {
	children    []NamedAnalyzer
	index       map[string]int
	maxTOCDepth int
}

// NewMappingAnalyzer creates a composite analyzer. Duplicate child names
// are rejected. maxTOCDepth controls the table of contents of the produced
// section.
func NewMappingAnalyzer(children []NamedAnalyzer, maxTOCDepth int) (*MappingAnalyzer, error) {
	m := &MappingAnalyzer{index: map[string]int{}, maxTOCDepth: maxTOCDepth}
	for _, child := range children {
		if err := m.AddAnalyzer(child.Name, child.Analyzer, false); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddAnalyzer registers an analyzer under name. An already-used name is an
// error unless replaceOK is set, in which case the analyzer is replaced in
// place and keeps its position.
func (m *MappingAnalyzer) AddAnalyzer(name string, a Analyzer, replaceOK bool) error {
	if i, ok := m.index[name]; ok {
		if !replaceOK {
			return domain.NewDuplicateKeyError(name)
		}
		m.children[i].Analyzer = a
		return nil
	}
	m.index[name] = len(m.children)
	m.children = append(m.children, NamedAnalyzer{Name: name, Analyzer: a})
	return nil
}

// Children returns the child analyzers in insertion order.
func (m *MappingAnalyzer) Children() []NamedAnalyzer {
	out := make([]NamedAnalyzer, len(m.children))
	copy(out, m.children)
	return out
}

func (m *MappingAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	sections := make([]section.NamedSection, 0, len(m.children))
	for _, child := range m.children {
		sec, err := child.Analyzer.Analyze(frame)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section.NamedSection{Name: child.Name, Section: sec})
	}
	return section.NewDict(sections, m.maxTOCDepth), nil
}

type mappingConfig struct {
	MaxTOCDepth int                       `mapstructure:"max_toc_depth"`
	Analyzers   map[string]map[string]any `mapstructure:"analyzers"`
}

func newMappingFromConfig(cfg Config) (Analyzer, error) {
	var opts mappingConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	// Mappings lose their order when decoded from YAML or TOML, so
	// config-built composites sort children alphabetically to keep the
	// report deterministic.
	names := make([]string, 0, len(opts.Analyzers))
	for name := range opts.Analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	children := make([]NamedAnalyzer, 0, len(names))
	for _, name := range names {
		child, err := Resolve(Config(opts.Analyzers[name]))
		if err != nil {
			return nil, err
		}
		children = append(children, NamedAnalyzer{Name: name, Analyzer: child})
	}
	return NewMappingAnalyzer(children, opts.MaxTOCDepth)
}

func init() {
	Register("mapping", newMappingFromConfig)
}
