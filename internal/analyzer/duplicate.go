package analyzer

import (
	"github.com/rs/zerolog/log"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
	"github.com/frameprof/frameprof/internal/section"
)

// DuplicatedRowAnalyzer counts duplicated rows, optionally over a subset of
// columns.
type DuplicatedRowAnalyzer struct {
	columns []string
}

// NewDuplicatedRowAnalyzer creates an analyzer detecting duplicated rows.
// An empty columns slice uses every column of the frame.
func NewDuplicatedRowAnalyzer(columns []string) *DuplicatedRowAnalyzer {
	return &DuplicatedRowAnalyzer{columns: append([]string{}, columns...)}
}

func (a *DuplicatedRowAnalyzer) Analyze(frame *dataframe.Frame) (section.Section, error) {
	columns := a.columns
	if len(columns) == 0 {
		columns = frame.Columns()
	} else {
		if _, err := frame.Select(columns...); err != nil {
			if domain.HasCode(err, domain.ErrCodeLookup) {
				log.Info().Strs("columns", columns).
					Msg("skipping duplicated row analysis because some columns are missing")
				return section.NewEmptySection(), nil
			}
			return nil, err
		}
	}
	seen := make(map[string]struct{}, frame.NumRows())
	for row := 0; row < frame.NumRows(); row++ {
		seen[frame.RowKey(row, columns)] = struct{}{}
	}
	return section.NewDuplicatedRowSection(frame.NumRows(), len(seen), a.columns), nil
}

type duplicateConfig struct {
	Columns []string `mapstructure:"columns"`
}

func newDuplicateFromConfig(cfg Config) (Analyzer, error) {
	var opts duplicateConfig
	if err := decodeConfig(cfg, &opts); err != nil {
		return nil, err
	}
	return NewDuplicatedRowAnalyzer(opts.Columns), nil
}

func init() {
	Register("duplicated_rows", newDuplicateFromConfig)
}
