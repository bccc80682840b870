package document

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Section is one independently built unit of the report
type Section struct {
	Ordinal string
	Anchor  string
	Title   string
	Body    template.HTML
	Failed  bool
	// PageBreakBefore starts a new logical group when printed
	PageBreakBefore bool
}

// Document is the assembled report
type Document struct {
	Title       string
	ReportID    string
	GeneratedAt time.Time
	Preamble    template.HTML
	Sections    []Section
	Footer      template.HTML
}

// FailedSections counts sections replaced by an error placeholder
func (d *Document) FailedSections() int {
	n := 0
	for _, s := range d.Sections {
		if s.Failed {
			n++
		}
	}
	return n
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en-GB">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="report-id" content="{{.ReportID}}">
<title>{{.Title}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
<main class="report">
{{.Preamble}}
{{range .Sections}}{{if .PageBreakBefore}}<div class="page-break"></div>
{{end}}<section id="{{.Anchor}}" class="report-section{{if .Failed}} section-failed{{end}}">
<h2><span class="ordinal">{{.Ordinal}}</span> {{.Title}}</h2>
{{.Body}}
</section>
{{end}}<footer class="report-footer">{{.Footer}}</footer>
</main>
</body>
</html>
`))

// Render writes the document as a single self-contained HTML page with an embedded stylesheet
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		*Document
		Stylesheet template.CSS
	}{d, template.CSS(stylesheet)})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
