package section

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/figure"
)

// NullValueSection analyzes the number of null values per column.
type NullValueSection struct {
	columns    []string
	nullCount  []int
	totalCount []int
	figsize    figure.Size
}

// NewNullValueSection creates a section from the per-column null and total
// counts. The three slices must have the same length.
func NewNullValueSection(columns []string, nullCount, totalCount []int, figsize figure.Size) (*NullValueSection, error) {
	if len(columns) != len(nullCount) {
		return nil, domain.NewInvariantError(fmt.Sprintf(
			"columns (%d) and null_count (%d) do not match", len(columns), len(nullCount)))
	}
	if len(columns) != len(totalCount) {
		return nil, domain.NewInvariantError(fmt.Sprintf(
			"columns (%d) and total_count (%d) do not match", len(columns), len(totalCount)))
	}
	return &NullValueSection{
		columns:    append([]string{}, columns...),
		nullCount:  append([]int{}, nullCount...),
		totalCount: append([]int{}, totalCount...),
		figsize:    figsize,
	}, nil
}

func (s *NullValueSection) Statistics() map[string]any {
	return map[string]any{
		"columns":     append([]string{}, s.columns...),
		"null_count":  append([]int{}, s.nullCount...),
		"total_count": append([]int{}, s.totalCount...),
	}
}

var nullBodyTmpl = template.Must(template.New("null").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the number/proportion of null values for each column.

{{.BarFigure}}

<div class="container-fluid">
    <div class="row align-items-start">
        <div class="col align-self-center">
            <p><b>Columns sorted by alphabetical order</b></p>

            {{.TableAlpha}}

        </div>
        <div class="col">
            <p><b>Columns sorted by ascending order of missing values</b></p>

            {{.TableSort}}

        </div>
    </div>
</div>
`))

func (s *NullValueSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading    template.HTML
		GoToTop    template.HTML
		BarFigure  template.HTML
		TableAlpha template.HTML
		TableSort  template.HTML
	}{
		Heading:    template.HTML(renderHeading(number, tags, depth)),
		GoToTop:    template.HTML(GoToTop),
		BarFigure:  template.HTML(s.renderBarFigure()),
		TableAlpha: template.HTML(s.renderTable(byColumn)),
		TableSort:  template.HTML(s.renderTable(byNullCount)),
	}
	var b strings.Builder
	if err := nullBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *NullValueSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

type nullRow struct {
	column string
	null   int
	total  int
}

const (
	byColumn = iota
	byNullCount
)

func (s *NullValueSection) rows(order int) []nullRow {
	rows := make([]nullRow, len(s.columns))
	for i, col := range s.columns {
		rows[i] = nullRow{column: col, null: s.nullCount[i], total: s.totalCount[i]}
	}
	switch order {
	case byColumn:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].column < rows[j].column })
	case byNullCount:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].null < rows[j].null })
	}
	return rows
}

func (s *NullValueSection) renderBarFigure() string {
	rows := s.rows(byNullCount)
	labels := make([]string, len(rows))
	counts := make([]int, len(rows))
	for i, row := range rows {
		labels[i] = row.column
		counts[i] = row.null
	}
	return figure.BarSVG("number of null values per column", labels, counts, "linear", s.figsize)
}

func (s *NullValueSection) renderTable(order int) string {
	var rows []string
	for _, row := range s.rows(order) {
		rows = append(rows, renderNullTableRow(row))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>column</th>
            <th>null pct</th>
            <th>null count</th>
            <th>total count</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}

// renderNullTableRow colors the row by the proportion of missing values:
// dark blues mean more missing values than light blues.
func renderNullTableRow(row nullRow) string {
	pct := 0.0
	if row.total > 0 {
		pct = float64(row.null) / float64(row.total)
	}
	numStyle := fmt.Sprintf(`style="text-align: right; background-color: rgba(64, 161, 255, %.4f)"`, pct)
	return fmt.Sprintf(`<tr>
    <th style="background-color: rgba(64, 161, 255, %.4f)">%s</th>
    <td %s>%.4f</td>
    <td %s>%d</td>
    <td %s>%d</td>
</tr>`,
		pct, html.EscapeString(row.column),
		numStyle, pct,
		numStyle, row.null,
		numStyle, row.total)
}
