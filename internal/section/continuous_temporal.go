package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/stats"
)

// ColumnTemporalContinuousSection analyzes the temporal distribution of a
// column with continuous values: one bucket of raw values per period of a
// datetime column.
type ColumnTemporalContinuousSection struct {
	values   [][]float64
	labels   []string
	column   string
	dtColumn string
	period   string
	yscale   string
	figsize  figure.Size
}

// NewColumnTemporalContinuousSection creates a section from the sorted
// bucket labels and the column values per bucket, nulls encoded as NaN.
func NewColumnTemporalContinuousSection(values [][]float64, labels []string, column, dtColumn, period, yscale string, figsize figure.Size) (*ColumnTemporalContinuousSection, error) {
	if len(values) != len(labels) {
		return nil, domain.NewInvariantError(fmt.Sprintf(
			"labels (%d) and value buckets (%d) do not match", len(labels), len(values)))
	}
	if yscale == "" {
		yscale = "auto"
	}
	return &ColumnTemporalContinuousSection{
		values:   values,
		labels:   append([]string{}, labels...),
		column:   column,
		dtColumn: dtColumn,
		period:   period,
		yscale:   yscale,
		figsize:  figsize,
	}, nil
}

// Column returns the name of the analyzed column.
func (s *ColumnTemporalContinuousSection) Column() string { return s.column }

func (s *ColumnTemporalContinuousSection) Statistics() map[string]any {
	return map[string]any{}
}

var temporalContinuousBodyTmpl = template.Must(template.New("temporalcontinuous").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the temporal distribution of column <em>{{.Column}}</em>
by using the column <em>{{.DtColumn}}</em>.

{{.Figure}}

{{.Table}}
`))

func (s *ColumnTemporalContinuousSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading  template.HTML
		GoToTop  template.HTML
		Column   string
		DtColumn string
		Figure   template.HTML
		Table    template.HTML
	}{
		Heading:  template.HTML(renderHeading(number, tags, depth)),
		GoToTop:  template.HTML(GoToTop),
		Column:   s.column,
		DtColumn: s.dtColumn,
		Figure:   template.HTML(s.renderFigure()),
		Table:    template.HTML(s.renderTable()),
	}
	var b strings.Builder
	if err := temporalContinuousBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *ColumnTemporalContinuousSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

// YScale returns the y-axis scale, resolving "auto" from all values.
func (s *ColumnTemporalContinuousSection) YScale() string {
	if s.yscale != "auto" {
		return s.yscale
	}
	return AutoYScaleContinuous(s.allValues(), DefaultNBins)
}

func (s *ColumnTemporalContinuousSection) allValues() []float64 {
	var all []float64
	for _, bucket := range s.values {
		all = append(all, bucket...)
	}
	return all
}

// renderFigure shows the median value per period. The per-period quantile
// table below carries the rest of the distribution.
func (s *ColumnTemporalContinuousSection) renderFigure() string {
	if len(s.labels) == 0 {
		return figure.NoFigureMessage
	}
	medians := make([]float64, len(s.values))
	for i, bucket := range s.values {
		medians[i] = stats.Quantile(bucket, 0.5)
	}
	title := fmt.Sprintf("median value of column %s per %s", s.column, s.period)
	return figure.TimelineSVG(title, s.labels, medians, s.YScale(), s.figsize)
}

// temporalStatColumns is the display order of the per-period statistics.
var temporalStatColumns = []string{
	"count", "mean", "std", "min", "q01", "q05", "q10", "q25", "median",
	"q75", "q90", "q95", "q99", "max",
}

func (s *ColumnTemporalContinuousSection) renderTable() string {
	if len(s.labels) == 0 {
		return ""
	}
	var rows []string
	for i, label := range s.labels {
		desc := stats.Describe(s.values[i])
		cells := make([]string, 0, len(temporalStatColumns))
		for _, key := range temporalStatColumns {
			cells = append(cells, fmt.Sprintf(
				`<td style="text-align: right;">%s</td>`, formatStat(desc[key])))
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    %s
</tr>`, html.EscapeString(label), strings.Join(cells, "\n    ")))
	}
	var headers []string
	for _, key := range temporalStatColumns {
		headers = append(headers, fmt.Sprintf("<th>%s</th>", key))
	}
	return fmt.Sprintf(`
<details>
    <summary>Statistics per period</summary>

    <p>The following table shows some statistics for each period of column <em>%s</em>.

    <table class="table table-hover table-responsive w-auto" >
        <thead class="thead table-group-divider">
            <tr>
                <th>%s</th>
                %s
            </tr>
        </thead>
        <tbody class="tbody table-group-divider">
            %s
            <tr class="table-group-divider"></tr>
        </tbody>
    </table>
</details>
`, s.column, s.period, strings.Join(headers, "\n                "), strings.Join(rows, "\n"))
}
