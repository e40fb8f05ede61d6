package section

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/stats"
)

// ColumnContinuousAdvancedSection is the extended continuous view: the full
// distribution plus a zoom on the inter-quartile range.
type ColumnContinuousAdvancedSection struct {
	values  []float64
	column  string
	nbins   int
	yscale  string
	figsize figure.Size
}

// NewColumnContinuousAdvancedSection creates a section over the raw column
// values, nulls encoded as NaN.
func NewColumnContinuousAdvancedSection(values []float64, column string, nbins int, yscale string, figsize figure.Size) *ColumnContinuousAdvancedSection {
	if nbins <= 0 {
		nbins = DefaultNBins
	}
	if yscale == "" {
		yscale = "auto"
	}
	return &ColumnContinuousAdvancedSection{
		values:  values,
		column:  column,
		nbins:   nbins,
		yscale:  yscale,
		figsize: figsize,
	}
}

// Column returns the name of the analyzed column.
func (s *ColumnContinuousAdvancedSection) Column() string { return s.column }

func (s *ColumnContinuousAdvancedSection) Statistics() map[string]any {
	return stats.Describe(s.values)
}

var continuousAdvancedBodyTmpl = template.Must(template.New("continuousadvanced").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the continuous distribution of values for column <em>{{.Column}}</em>.

<ul>
  <li> total values: {{.Total}} </li>
  <li> number of unique values: {{.NUnique}} </li>
  <li> number of null values: {{.NullValues}} / {{.Total}} ({{.NullPct}}%) </li>
</ul>

<p style="margin-top: 1rem;">
<b> Analysis of the distribution </b>

{{.FullFigure}}

{{.SummaryTable}}

<p style="margin-top: 1rem;">
<b> Analysis of the distribution in the inter-quartile range (IQR) </b>

{{.IQRFigure}}
`))

func (s *ColumnContinuousAdvancedSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	desc := stats.Describe(s.values)
	count := desc["count"].(int)
	nullValues := desc["num_nulls"].(int)
	nullPct := "N/A"
	if count > 0 {
		nullPct = fmt.Sprintf("%.2f", 100*float64(nullValues)/float64(count))
	}
	data := struct {
		Heading      template.HTML
		GoToTop      template.HTML
		Column       string
		Total        int
		NUnique      int
		NullValues   int
		NullPct      string
		FullFigure   template.HTML
		SummaryTable template.HTML
		IQRFigure    template.HTML
	}{
		Heading:      template.HTML(renderHeading(number, tags, depth)),
		GoToTop:      template.HTML(GoToTop),
		Column:       s.column,
		Total:        count,
		NUnique:      desc["nunique"].(int),
		NullValues:   nullValues,
		NullPct:      nullPct,
		FullFigure:   template.HTML(s.renderHistogram("", "")),
		SummaryTable: template.HTML(renderDescribeTable(desc)),
		IQRFigure:    template.HTML(s.renderHistogram("q0.25", "q0.75")),
	}
	var b strings.Builder
	if err := continuousAdvancedBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *ColumnContinuousAdvancedSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

// YScale returns the y-axis scale, resolving "auto" from the distribution.
func (s *ColumnContinuousAdvancedSection) YScale() string {
	if s.yscale != "auto" {
		return s.yscale
	}
	return AutoYScaleContinuous(s.values, s.nbins)
}

// renderHistogram renders the distribution clipped to the given range bound
// specifiers; empty bounds mean the full range.
func (s *ColumnContinuousAdvancedSection) renderHistogram(xmin, xmax string) string {
	inner := NewColumnContinuousSection(s.values, s.column, s.nbins, s.yscale, xmin, xmax, s.figsize)
	return inner.renderFigure()
}
