package section

import (
	"fmt"
	"html"
	"html/template"
	"strings"
)

// DuplicatedRowSection analyzes the number of duplicated rows, optionally
// restricted to a subset of columns.
type DuplicatedRowSection struct {
	numRows       int
	numUniqueRows int
	columns       []string
}

// NewDuplicatedRowSection creates a section from precomputed row counts.
// columns is nil when all columns were used to detect duplicates.
func NewDuplicatedRowSection(numRows, numUniqueRows int, columns []string) *DuplicatedRowSection {
	return &DuplicatedRowSection{
		numRows:       numRows,
		numUniqueRows: numUniqueRows,
		columns:       append([]string{}, columns...),
	}
}

func (s *DuplicatedRowSection) Statistics() map[string]any {
	return map[string]any{
		"num_rows":        s.numRows,
		"num_unique_rows": s.numUniqueRows,
	}
}

var duplicateBodyTmpl = template.Must(template.New("duplicate").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the number of duplicated rows{{.ColumnNote}}.

<ul>
  <li> number of rows: {{.NumRows}} </li>
  <li> number of unique rows: {{.NumUniqueRows}} </li>
  <li> number of duplicated rows: {{.NumDuplicated}} ({{.DupPct}}%) </li>
</ul>
`))

func (s *DuplicatedRowSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	numDuplicated := s.numRows - s.numUniqueRows
	dupPct := 0.0
	if s.numRows > 0 {
		dupPct = 100 * float64(numDuplicated) / float64(s.numRows)
	}
	columnNote := ""
	if len(s.columns) > 0 {
		quoted := make([]string, len(s.columns))
		for i, c := range s.columns {
			quoted[i] = "<em>" + html.EscapeString(c) + "</em>"
		}
		columnNote = " for the columns " + strings.Join(quoted, ", ")
	}
	data := struct {
		Heading       template.HTML
		GoToTop       template.HTML
		ColumnNote    template.HTML
		NumRows       int
		NumUniqueRows int
		NumDuplicated int
		DupPct        string
	}{
		Heading:       template.HTML(renderHeading(number, tags, depth)),
		GoToTop:       template.HTML(GoToTop),
		ColumnNote:    template.HTML(columnNote),
		NumRows:       s.numRows,
		NumUniqueRows: s.numUniqueRows,
		NumDuplicated: numDuplicated,
		DupPct:        fmt.Sprintf("%.2f", dupPct),
	}
	var b strings.Builder
	if err := duplicateBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *DuplicatedRowSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}
