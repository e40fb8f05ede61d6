package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/internal/figure"
)

// TemporalRowCountSection analyzes the number of rows per temporal bucket,
// e.g. per month of a datetime column.
type TemporalRowCountSection struct {
	labels   []string
	counts   []int
	dtColumn string
	period   string
	figsize  figure.Size
}

// NewTemporalRowCountSection creates a section from the sorted bucket labels
// and their row counts.
func NewTemporalRowCountSection(labels []string, counts []int, dtColumn, period string, figsize figure.Size) *TemporalRowCountSection {
	return &TemporalRowCountSection{
		labels:   append([]string{}, labels...),
		counts:   append([]int{}, counts...),
		dtColumn: dtColumn,
		period:   period,
		figsize:  figsize,
	}
}

func (s *TemporalRowCountSection) Statistics() map[string]any {
	return map[string]any{}
}

var countRowsBodyTmpl = template.Must(template.New("countrows").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the number of rows per temporal period <em>{{.Period}}</em>,
using the column <em>{{.Column}}</em>.

{{.Figure}}

{{.Table}}
`))

func (s *TemporalRowCountSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
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
	if err := countRowsBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *TemporalRowCountSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *TemporalRowCountSection) renderFigure() string {
	if len(s.labels) == 0 {
		return figure.NoFigureMessage
	}
	title := fmt.Sprintf("number of rows per %s", s.period)
	return figure.BarSVG(title, s.labels, s.counts, "linear", s.figsize)
}

func (s *TemporalRowCountSection) renderTable() string {
	if len(s.labels) == 0 {
		return ""
	}
	total := 0
	for _, c := range s.counts {
		total += c
	}
	var rows []string
	for i, label := range s.labels {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(s.counts[i]) / float64(total)
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td style="text-align: right;">%d</td>
    <td style="text-align: right;">%.2f%%</td>
</tr>`, html.EscapeString(label), s.counts[i], pct))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>period</th>
            <th>count</th>
            <th>pct</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}
