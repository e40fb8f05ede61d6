package section

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"

	"github.com/frameprof/frameprof/domain"
)

// DataTypeSection analyzes the declared and observed data types of each
// column.
type DataTypeSection struct {
	dtypes map[string]string
	types  map[string]map[string]struct{}
}

// NewDataTypeSection creates a section from the declared column kinds and
// the value types observed in each column. The two maps must cover the same
// columns.
func NewDataTypeSection(dtypes map[string]string, types map[string]map[string]struct{}) (*DataTypeSection, error) {
	if err := checkSameKeys(dtypes, types); err != nil {
		return nil, err
	}
	return &DataTypeSection{dtypes: dtypes, types: types}, nil
}

func checkSameKeys(dtypes map[string]string, types map[string]map[string]struct{}) error {
	for col := range dtypes {
		if _, ok := types[col]; !ok {
			return domain.NewInvariantError(fmt.Sprintf(
				"column `%s` is in dtypes but not in types", col))
		}
	}
	for col := range types {
		if _, ok := dtypes[col]; !ok {
			return domain.NewInvariantError(fmt.Sprintf(
				"column `%s` is in types but not in dtypes", col))
		}
	}
	return nil
}

// Statistics returns, for each column, the sorted set of observed value
// types.
func (s *DataTypeSection) Statistics() map[string]any {
	out := make(map[string]any, len(s.types))
	for col, set := range s.types {
		out[col] = sortedTypes(set)
	}
	return out
}

func sortedTypes(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var dtypeBodyTmpl = template.Must(template.New("dtype").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the data types of each column.

{{.Table}}
`))

func (s *DataTypeSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
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
	if err := dtypeBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *DataTypeSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

func (s *DataTypeSection) renderTable() string {
	columns := make([]string, 0, len(s.dtypes))
	for col := range s.dtypes {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	var rows []string
	for _, col := range columns {
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td>%s</td>
    <td>%s</td>
</tr>`,
			html.EscapeString(col),
			html.EscapeString(s.dtypes[col]),
			html.EscapeString(strings.Join(sortedTypes(s.types[col]), ", "))))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>column</th>
            <th>declared type</th>
            <th>observed types</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}
