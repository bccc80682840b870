package document

import (
	"html/template"
	"strings"
)

// Tone colours a stat card, badge or callout
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)

// StatCard is one labelled highlight
type StatCard struct {
	Label string
	Value string
	Hint  string
	Tone  Tone
}

var statGridTemplate = template.Must(template.New("stat-grid").Parse(
	`<div class="stat-grid stat-grid-{{.PerRow}}">` +
		`{{range .Cards}}<div class="stat-card tone-{{.Tone}}">` +
		`<div class="stat-value">{{.Value}}</div>` +
		`<div class="stat-label">{{.Label}}</div>` +
		`{{if .Hint}}<div class="stat-hint">{{.Hint}}</div>{{end}}` +
		`</div>{{end}}</div>`))

// StatGrid renders cards three or four to a row
func StatGrid(perRow int, cards ...StatCard) template.HTML {
	if perRow != 3 {
		perRow = 4
	}
	for i := range cards {
		if cards[i].Tone == "" {
			cards[i].Tone = ToneNeutral
		}
	}
	return render(statGridTemplate, struct {
		PerRow int
		Cards  []StatCard
	}{perRow, cards})
}

var calloutTemplate = template.Must(template.New("callout").Parse(
	`<div class="callout callout-{{.Severity}}">` +
		`<div class="callout-title">{{.Title}}</div>` +
		`{{if .Items}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}` +
		`</div>`))

// Callout renders a box drawing attention to a condition
func Callout(severity Tone, title string, items ...string) template.HTML {
	return render(calloutTemplate, struct {
		Severity Tone
		Title    string
		Items    []string
	}{severity, title, items})
}

var paragraphTemplate = template.Must(template.New("paragraph").Parse(
	`<p class="{{.Class}}">{{.Text}}</p>`))

// EmptyState renders the notice shown when a section has no data for the period
func EmptyState(message string) template.HTML {
	if message == "" {
		message = "No records for this period."
	}
	return render(paragraphTemplate, struct{ Class, Text string }{"empty-state", message})
}

// Paragraph renders a plain paragraph
func Paragraph(text string) template.HTML {
	return render(paragraphTemplate, struct{ Class, Text string }{"body-text", text})
}

// Note renders a small print paragraph
func Note(text string) template.HTML {
	return render(paragraphTemplate, struct{ Class, Text string }{"note", text})
}

var headingTemplate = template.Must(template.New("heading").Parse(`<h3>{{.}}</h3>`))

// Subheading renders a heading inside a section
func Subheading(text string) template.HTML {
	return render(headingTemplate, text)
}

var sectionErrorTemplate = template.Must(template.New("section-error").Parse(
	`<div class="section-error"><strong>{{.Title}} could not be generated.</strong> ` +
		`The rest of the report is unaffected. Refer to the source records for this section.</div>`))

// SectionError renders the labelled placeholder for a section that failed to build
func SectionError(title string) template.HTML {
	return render(sectionErrorTemplate, struct{ Title string }{title})
}

var definitionListTemplate = template.Must(template.New("definition-list").Parse(
	`<dl class="details">{{range .}}<dt>{{.Term}}</dt><dd>{{.Value}}</dd>{{end}}</dl>`))

// Detail is one term/value pair in a definition list
type Detail struct {
	Term  string
	Value string
}

// Details renders term/value pairs
func Details(items ...Detail) template.HTML {
	return render(definitionListTemplate, items)
}

// Join concatenates rendered fragments
func Join(parts ...template.HTML) template.HTML {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(string(p))
	}
	return template.HTML(b.String())
}

// render executes a fragment template. The templates are fixed and their data
// is plain values, so an execution error means a programming mistake.
func render(t *template.Template, data any) template.HTML {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic("document: render " + t.Name() + ": " + err.Error())
	}
	return template.HTML(b.String())
}

// GalleryItem is one evidence image
type GalleryItem struct {
	URL     string
	Caption string
	Meta    string
}

var galleryTemplate = template.Must(template.New("gallery").Parse(
	`<div class="gallery">{{range .}}<figure>` +
		`<a href="{{.URL}}"><img src="{{.URL}}" alt="{{.Caption}}" loading="lazy"></a>` +
		`<figcaption>{{.Caption}}{{if .Meta}}<br>{{.Meta}}{{end}}</figcaption>` +
		`</figure>{{end}}</div>`))

// Gallery renders evidence images from already-resolved URLs
func Gallery(items ...GalleryItem) template.HTML {
	return render(galleryTemplate, items)
}
