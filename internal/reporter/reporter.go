// Package reporter assembles the final HTML report from a rendered section
// tree and writes it to disk.
package reporter

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/section"
)

// Reporter turns the root section of a report into a standalone HTML page.
type Reporter struct {
	title       string
	maxTOCDepth int
}

// New creates a reporter. maxTOCDepth limits the top-level table of
// contents of the page.
func New(title string, maxTOCDepth int) *Reporter {
	if title == "" {
		title = "Data report"
	}
	if maxTOCDepth <= 0 {
		maxTOCDepth = 2
	}
	return &Reporter{title: title, maxTOCDepth: maxTOCDepth}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        body { padding: 1rem 2rem; }
        table svg { max-width: 100%; }
    </style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Report generated on {{.GeneratedAt}}.</p>

<h2>Table of content</h2>
{{.TOC}}

{{.Body}}

</body>
</html>
`))

// Render produces the full HTML page for the given root section.
func (r *Reporter) Render(root section.Section) (string, error) {
	toc, err := root.RenderHTMLTOC("", nil, 0, r.maxTOCDepth)
	if err != nil {
		return "", err
	}
	if toc != "" {
		toc = "<ul>\n" + toc + "\n</ul>"
	}
	body, err := root.RenderHTMLBody("", nil, 0)
	if err != nil {
		return "", err
	}
	data := struct {
		Title       string
		GeneratedAt string
		TOC         template.HTML
		Body        template.HTML
	}{
		Title:       r.title,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		TOC:         template.HTML(toc),
		Body:        template.HTML(body),
	}
	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", domain.NewOutputError("failed to render report page", err)
	}
	return b.String(), nil
}

// Write renders the report and writes it to path, creating parent
// directories as needed.
func (r *Reporter) Write(root section.Section, path string) error {
	page, err := r.Render(root)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.NewOutputError("failed to create output directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return domain.NewOutputError("failed to write report", err)
	}
	return nil
}
