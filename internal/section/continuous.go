package section

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/figure"
	"github.com/frameprof/frameprof/internal/stats"
)

// ColumnContinuousSection analyzes the distribution of a column with
// continuous values.
type ColumnContinuousSection struct {
	values  []float64
	column  string
	nbins   int
	yscale  string
	xmin    string
	xmax    string
	figsize figure.Size
}

// NewColumnContinuousSection creates a section over the raw column values,
// nulls encoded as NaN. xmin and xmax are range bound specifiers: empty, a
// literal number, or "q<p>" for the p-quantile of the values (e.g. "q0.01").
func NewColumnContinuousSection(values []float64, column string, nbins int, yscale, xmin, xmax string, figsize figure.Size) *ColumnContinuousSection {
	if nbins <= 0 {
		nbins = DefaultNBins
	}
	if yscale == "" {
		yscale = "auto"
	}
	return &ColumnContinuousSection{
		values:  values,
		column:  column,
		nbins:   nbins,
		yscale:  yscale,
		xmin:    xmin,
		xmax:    xmax,
		figsize: figsize,
	}
}

// Column returns the name of the analyzed column.
func (s *ColumnContinuousSection) Column() string { return s.column }

// YScale returns the y-axis scale, resolving "auto" from the distribution.
func (s *ColumnContinuousSection) YScale() string {
	if s.yscale != "auto" {
		return s.yscale
	}
	return AutoYScaleContinuous(s.values, s.nbins)
}

func (s *ColumnContinuousSection) Statistics() map[string]any {
	return stats.Describe(s.values)
}

// ResolveBound turns a range bound specifier into a concrete value against
// the given data: "" yields NaN (unbounded), "q<p>" yields the p-quantile,
// anything else must parse as a float literal.
func ResolveBound(spec string, values []float64) (float64, error) {
	if spec == "" {
		return math.NaN(), nil
	}
	if strings.HasPrefix(spec, "q") {
		p, err := strconv.ParseFloat(spec[1:], 64)
		if err != nil || p < 0 || p > 1 {
			return 0, domain.NewConfigError(fmt.Sprintf("invalid quantile bound: %s", spec), nil)
		}
		return stats.Quantile(values, p), nil
	}
	v, err := strconv.ParseFloat(spec, 64)
	if err != nil {
		return 0, domain.NewConfigError(fmt.Sprintf("invalid range bound: %s", spec), nil)
	}
	return v, nil
}

var continuousBodyTmpl = template.Must(template.New("continuous").Parse(`
{{.Heading}}

{{.GoToTop}}

<p style="margin-top: 1rem;">
This section analyzes the continuous distribution of values for column <em>{{.Column}}</em>.

{{.SummaryTable}}

{{.Figure}}
`))

func (s *ColumnContinuousSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	data := struct {
		Heading      template.HTML
		GoToTop      template.HTML
		Column       string
		SummaryTable template.HTML
		Figure       template.HTML
	}{
		Heading:      template.HTML(renderHeading(number, tags, depth)),
		GoToTop:      template.HTML(GoToTop),
		Column:       s.column,
		SummaryTable: template.HTML(s.renderSummaryTable()),
		Figure:       template.HTML(s.renderFigure()),
	}
	var b strings.Builder
	if err := continuousBodyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *ColumnContinuousSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return RenderTOCEntry(number, tags, depth, maxDepth), nil
}

// summaryRows is the display order of the descriptive statistics table.
var summaryRows = []string{
	"count", "num_nulls", "nunique", "mean", "std", "skewness", "kurtosis",
	"min", "q001", "q01", "q05", "q10", "q25", "median", "q75", "q90",
	"q95", "q99", "q999", "max", ">0", "<0", "=0",
}

func (s *ColumnContinuousSection) renderSummaryTable() string {
	return renderDescribeTable(stats.Describe(s.values))
}

func renderDescribeTable(desc map[string]any) string {
	var rows []string
	for _, key := range summaryRows {
		v, ok := desc[key]
		if !ok {
			continue
		}
		rows = append(rows, fmt.Sprintf(`<tr>
    <th>%s</th>
    <td style="text-align: right;">%s</td>
</tr>`, key, formatStat(v)))
	}
	return fmt.Sprintf(`
<table class="table table-hover table-responsive w-auto" >
    <thead class="thead table-group-divider">
        <tr>
            <th>statistic</th>
            <th>value</th>
        </tr>
    </thead>
    <tbody class="tbody table-group-divider">
        %s
        <tr class="table-group-divider"></tr>
    </tbody>
</table>
`, strings.Join(rows, "\n"))
}

func formatStat(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'g', 6, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (s *ColumnContinuousSection) renderFigure() string {
	clipped, err := s.clippedValues()
	if err != nil {
		return figure.NoFigureMessage
	}
	if len(clipped) == 0 {
		return figure.NoFigureMessage
	}
	title := fmt.Sprintf("distribution of values for column %s", s.column)
	return figure.HistogramSVG(title, clipped, s.nbins, s.YScale(), s.figsize)
}

// clippedValues drops NaN values and applies the configured range bounds.
func (s *ColumnContinuousSection) clippedValues() ([]float64, error) {
	lo, err := ResolveBound(s.xmin, s.values)
	if err != nil {
		return nil, err
	}
	hi, err := ResolveBound(s.xmax, s.values)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		if !math.IsNaN(lo) && v < lo {
			continue
		}
		if !math.IsNaN(hi) && v > hi {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
