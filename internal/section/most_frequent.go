package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/stats"
)

// MostFrequentValuesSection shows the most frequently occurring values of a
// column with their counts and percentages.
type MostFrequentValuesSection struct {
	counter *stats.Counter
	column  string
	top     int
}

// NewMostFrequentValuesSection creates a section listing the top most
// frequent values of column. top must not be negative.
func NewMostFrequentValuesSection(counter *stats.Counter, column string, top int) (*MostFrequentValuesSection, error) {
	if top < 0 {
		return nil, domain.NewConfigError(fmt.Sprintf(
			"Incorrect top value (%d). top must be greater or equal to 0", top), nil)
	}
	if top == 0 {
		top = 100
	}
	return &MostFrequentValuesSection{counter: counter, column: column, top: top}, nil
}

// Column returns the name of the analyzed column.
func (s *MostFrequentValuesSection) Column() string { return s.column }

// Top returns the number of values shown.
func (s *MostFrequentValuesSection) Top() int { return s.top }

func (s *MostFrequentValuesSection) Statistics() map[string]any {
	return map[string]any{
		"most_common": s.counter.MostCommon(s.top),
	}
}

var mostFrequentBodyTmpl = template.Must(template.New("mostfrequent").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section shows the {{.Top}} most frequent values for column <em>{{.Column}}</em>.

{{.Table}}
`))

func (s *MostFrequentValuesSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading template.HTML
		GoToTop template.HTML
		Column  string
		Top     int
		Table   template.HTML
	}{
		Heading: template.HTML(renderHeading(number, tags, depth)),
		GoToTop: template.HTML(GoToTop),
		Column:  s.column,
		Top:     s.top,
		Table:   template.HTML(s.renderTable()),
	}
	var b strings.Builder
	if err := mostFrequentBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *MostFrequentValuesSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *MostFrequentValuesSection) renderTable() string {
	entries := s.counter.MostCommon(s.top)
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
