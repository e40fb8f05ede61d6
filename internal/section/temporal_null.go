package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/figure"
)

// TemporalNullValueSection analyzes how the number of null values evolves
// over temporal buckets of a datetime column.
type TemporalNullValueSection struct {
	labels     []string
	nullCounts []int
	totals     []int
	columns    []string
	dtColumn   string
	period     string
	figsize    figure.Size
}

// NewTemporalNullValueSection creates a section from the sorted bucket
// labels, the null counts per bucket and the row totals per bucket. columns
// lists the analyzed columns.
func NewTemporalNullValueSection(labels []string, nullCounts, totals []int, columns []string, dtColumn, period string, figsize figure.Size) (*TemporalNullValueSection, error) {
	if len(labels) != len(nullCounts) || len(labels) != len(totals) {
		return nil, domain.NewInvariantError(fmt.Sprintf(
			"labels (%d), null counts (%d) and totals (%d) do not match",
			len(labels), len(nullCounts), len(totals)))
	}
	return &TemporalNullValueSection{
		labels:     append([]string{}, labels...),
		nullCounts: append([]int{}, nullCounts...),
		totals:     append([]int{}, totals...),
		columns:    append([]string{}, columns...),
		dtColumn:   dtColumn,
		period:     period,
		figsize:    figsize,
	}, nil
}

func (s *TemporalNullValueSection) Statistics() map[string]any {
	return map[string]any{}
}

var temporalNullBodyTmpl = template.Must(template.New("temporalnull").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the number of null values per temporal period
<em>{{.Period}}</em>, using the column <em>{{.Column}}</em>.

{{.Figure}}

{{.Table}}
`))

func (s *TemporalNullValueSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading template.HTML
		GoToTop template.HTML
		Column  string
		Period  string
		Figure  template.HTML
		Table   template.HTML
	}{
		Heading: template.HTML(renderHeading(number, tags, depth)),
		GoToTop: template.HTML(GoToTop),
		Column:  s.dtColumn,
		Period:  s.period,
		Figure:  template.HTML(s.renderFigure()),
		Table:   template.HTML(s.renderTable()),
	}
	var b strings.Builder
	if err := temporalNullBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *TemporalNullValueSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *TemporalNullValueSection) renderFigure() string {
	if len(s.labels) == 0 {
		return figure.NoFigureMessage
	}
	title := fmt.Sprintf("number of null values per %s", s.period)
	return figure.BarSVG(title, s.labels, s.nullCounts, "linear", s.figsize)
}

func (s *TemporalNullValueSection) renderTable() string {
	if len(s.labels) == 0 {
		return ""
	}
	var rows []string
	for i, label := range s.labels {
		pct := 0.0
		if s.totals[i] > 0 {
			pct = 100 * float64(s.nullCounts[i]) / float64(s.totals[i])
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td style="text-align: right;">%d</td>
    <td style="text-align: right;">%d</td>
    <td style="text-align: right;">%.2f%%</td>
</tr>`, html.EscapeString(label), s.nullCounts[i], s.totals[i], pct))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>period</th>
            <th>null count</th>
            <th>total count</th>
            <th>null pct</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}
