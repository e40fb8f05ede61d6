package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/stats"
)

// FrameSummarySection summarizes a frame column by column: null count,
// unique values, declared type and the most frequent values.
type FrameSummarySection struct {
	columns     []string
	nullCount   []int
	nunique     []int
	columnTypes []string
	mostCommon  [][]stats.Entry
	top         int
}

// NewFrameSummarySection creates a summary over per-column statistics. All
// slices are parallel to columns. top is the number of most frequent values
// shown per column and must not be negative.
func NewFrameSummarySection(columns []string, nullCount, nunique []int, columnTypes []string, mostCommon [][]stats.Entry, top int) (*FrameSummarySection, error) {
	if top < 0 {
		return nil, domain.NewConfigError(fmt.Sprintf(
			"Incorrect top value (%d). top must be greater or equal to 0", top), nil)
	}
	if top == 0 {
		top = 5
	}
	n := len(columns)
	if len(nullCount) != n || len(nunique) != n || len(columnTypes) != n || len(mostCommon) != n {
		return nil, domain.NewInvariantError(fmt.Sprintf(
			"per-column statistics do not match the %d columns", n))
	}
	return &FrameSummarySection{
		columns:     append([]string{}, columns...),
		nullCount:   append([]int{}, nullCount...),
		nunique:     append([]int{}, nunique...),
		columnTypes: append([]string{}, columnTypes...),
		mostCommon:  mostCommon,
		top:         top,
	}, nil
}

// Top returns the number of most frequent values shown per column.
func (s *FrameSummarySection) Top() int { return s.top }

func (s *FrameSummarySection) Statistics() map[string]any {
	return map[string]any{
		"columns":      append([]string{}, s.columns...),
		"null_count":   append([]int{}, s.nullCount...),
		"nunique":      append([]int{}, s.nunique...),
		"column_types": append([]string{}, s.columnTypes...),
	}
}

var summaryBodyTmpl = template.Must(template.New("summary").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section shows a summary of each column.

{{.Table}}
`))

func (s *FrameSummarySection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading template.HTML
		GoToTop template.HTML
		Table   template.HTML
	}{
		Heading: template.HTML(renderHeading(number, tags, depth)),
		GoToTop: template.HTML(GoToTop),
		Table:   template.HTML(s.renderTable()),
	}
	var b strings.Builder
	if err := summaryBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *FrameSummarySection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *FrameSummarySection) renderTable() string {
	var rows []string
	for i, col := range s.columns {
		var values []string
		entries := s.mostCommon[i]
		if len(entries) > s.top {
			entries = entries[:s.top]
		}
		for _, e := range entries {
			values = append(values, fmt.Sprintf("%s (%d)",
				html.EscapeString(stats.FormatValue(e.Value)), e.Count))
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td>%s</td>
    <td style="text-align: right;">%d</td>
    <td style="text-align: right;">%d</td>
    <td>%s</td>
</tr>`,
			html.EscapeString(col),
			html.EscapeString(s.columnTypes[i]),
			s.nullCount[i],
			s.nunique[i],
			strings.Join(values, "<br>")))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>column</th>
            <th>type</th>
            <th>null count</th>
            <th>nunique</th>
            <th>most frequent values</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}
