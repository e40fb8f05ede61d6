package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/stats"
)

// ColumnDiscreteSection analyzes the distribution of a column with discrete
// values.
type ColumnDiscreteSection struct {
	counter    *stats.Counter
	nullValues int
	column     string
	maxRows    int
	yscale     string
	figsize    figure.Size
}

// NewColumnDiscreteSection creates a section from a value frequency counter.
// maxRows limits the frequency table; yscale is "linear", "log", "symlog" or
// "auto".
func NewColumnDiscreteSection(counter *stats.Counter, nullValues int, column string, maxRows int, yscale string, figsize figure.Size) *ColumnDiscreteSection {
	if maxRows <= 0 {
		maxRows = 20
	}
	if yscale == "" {
		yscale = "auto"
	}
	return &ColumnDiscreteSection{
		counter:    counter,
		nullValues: nullValues,
		column:     column,
		maxRows:    maxRows,
		yscale:     yscale,
		figsize:    figsize,
	}
}

// Column returns the name of the analyzed column.
func (s *ColumnDiscreteSection) Column() string { return s.column }

// YScale returns the y-axis scale, resolving "auto" from the counts.
func (s *ColumnDiscreteSection) YScale() string {
	if s.yscale != "auto" {
		return s.yscale
	}
	counts := make([]float64, 0, s.counter.NUnique())
	for _, e := range s.counter.MostCommon(-1) {
		counts = append(counts, float64(e.Count))
	}
	return autoYScaleDiscrete(counts)
}

// autoYScaleDiscrete picks a y-axis scale from the bar heights of the value
// frequencies. Near-flat distributions stay linear, otherwise log is used
// because the counts are strictly positive.
func autoYScaleDiscrete(counts []float64) string {
	var nonzero []float64
	for _, c := range counts {
		if c > 0 {
			nonzero = append(nonzero, c)
		}
	}
	if len(nonzero) <= 2 {
		return "linear"
	}
	minCount, maxCount := nonzero[0], nonzero[0]
	for _, c := range nonzero {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	if minCount < 1 {
		minCount = 1
	}
	if maxCount/minCount < 50 {
		return "linear"
	}
	return "log"
}

func (s *ColumnDiscreteSection) Statistics() map[string]any {
	var mostCommon []stats.Entry
	for _, e := range s.counter.MostCommon(-1) {
		if e.Count > 0 {
			mostCommon = append(mostCommon, e)
		}
	}
	return map[string]any{
		"most_common": mostCommon,
		"nunique":     s.counter.NUnique(),
		"total":       s.counter.Total(),
	}
}

var discreteBodyTmpl = template.Must(template.New("discrete").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the discrete distribution of values for column <em>{{.Column}}</em>.

<ul>
  <li> total values: {{.Total}} </li>
  <li> number of unique values: {{.NUnique}} </li>
  <li> number of null values: {{.NullValues}} / {{.TotalWithNulls}} ({{.NullPct}}%) </li>
</ul>

{{.Figure}}

{{.Table}}
`))

func (s *ColumnDiscreteSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	total := s.counter.Total()
	totalWithNulls := total
	if s.nullValues > total {
		totalWithNulls = s.nullValues
	}
	nullPct := 0.0
	if totalWithNulls > 0 {
		nullPct = 100 * float64(s.nullValues) / float64(totalWithNulls)
	}
	data := struct {
		Heading        template.HTML
		GoToTop        template.HTML
		Column         string
		Total          int
		NUnique        int
		NullValues     int
		TotalWithNulls int
		NullPct        string
		Figure         template.HTML
		Table          template.HTML
	}{
		Heading:        template.HTML(renderHeading(number, tags, depth)),
		GoToTop:        template.HTML(GoToTop),
		Column:         s.column,
		Total:          total,
		NUnique:        s.counter.NUnique(),
		NullValues:     s.nullValues,
		TotalWithNulls: totalWithNulls,
		NullPct:        fmt.Sprintf("%.2f", nullPct),
		Figure:         template.HTML(s.renderFigure()),
		Table:          template.HTML(s.renderTable()),
	}
	var b strings.Builder
	if err := discreteBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *ColumnDiscreteSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *ColumnDiscreteSection) renderFigure() string {
	entries := s.counter.MostCommon(s.maxRows)
	if len(entries) == 0 {
		return figure.NoFigureMessage
	}
	labels := make([]string, len(entries))
	counts := make([]int, len(entries))
	for i, e := range entries {
		labels[i] = stats.FormatValue(e.Value)
		counts[i] = e.Count
	}
	title := fmt.Sprintf("most common values for column %s", s.column)
	return figure.BarSVG(title, labels, counts, s.YScale(), s.figsize)
}

// renderTable shows the head (most common) and tail (least common) of the
// value frequencies side by side, each limited to maxRows rows.
func (s *ColumnDiscreteSection) renderTable() string {
	head := s.counter.MostCommon(s.maxRows)
	if len(head) == 0 {
		return ""
	}
	tail := s.counter.LeastCommon(s.maxRows)
	return fmt.Sprintf(`
<details>
    <summary>[show head and tail values]</summary>

    <div class="row">
      <div class="col">
        <p style="margin-top: 1rem;">
        <b>Head: %d most common values in column <em>%s</em></b>
        %s
      </div>
      <div class="col">
        <p style="margin-top: 1rem;">
        <b>Tail: %d least common values in column <em>%s</em></b>
        %s
      </div>
    </div>
</details>
`, len(head), s.column, s.renderFrequencyTable(head), len(tail), s.column, s.renderFrequencyTable(tail))
}

func (s *ColumnDiscreteSection) renderFrequencyTable(entries []stats.Entry) string {
	total := s.counter.Total()
	var rows []string
	cumulative := 0
	for _, e := range entries {
		cumulative += e.Count
		pct, cumPct := 0.0, 0.0
		if total > 0 {
			pct = 100 * float64(e.Count) / float64(total)
			cumPct = 100 * float64(cumulative) / float64(total)
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td style="text-align: right;">%d</td>
    <td style="text-align: right;">%.2f%%</td>
    <td style="text-align: right;">%.2f%%</td>
</tr>`, html.EscapeString(stats.FormatValue(e.Value)), e.Count, pct, cumPct))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>value</th>
            <th>count</th>
            <th>pct</th>
            <th>cumulative pct</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}
