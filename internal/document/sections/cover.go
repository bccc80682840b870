package sections

import (
	"html/template"
	"strings"

	"github.com/zatekoja/inspectionreport/internal/document"
)

// ReportTitle heads the cover and the page title
const ReportTitle = "Site Inspection Report"

var coverTemplate = template.Must(template.New("cover").Parse(
	`<header class="cover">` +
		`<h1>{{.Title}}</h1>` +
		`<div class="subtitle">{{.SiteName}}{{if .Address}}, {{.Address}}{{end}}</div>` +
		`{{.Details}}` +
		`</header>` +
		`<nav class="contents"><h2>Contents</h2><ol>` +
		`{{range .Entries}}<li><a href="#{{.Anchor}}"><span class="ordinal">{{.Ordinal}}</span> {{.Title}}</a></li>{{end}}` +
		`</ol></nav>`))

func buildCover(in *Input) (template.HTML, error) {
	details := []document.Detail{
		{Term: "Site", Value: in.Site.Name},
		{Term: "Organization", Value: in.organizationName()},
		{Term: "Inspection period", Value: in.periodLabel()},
		{Term: "Generated", Value: in.dateTime(in.GeneratedAt)},
		{Term: "Report reference", Value: in.ReportID},
	}
	if prepared := preparedBy(in); prepared != "" {
		details = append(details, document.Detail{Term: "Prepared for", Value: prepared})
	}

	entries := make([]Meta, 0, len(Order))
	for _, kind := range Order {
		entries = append(entries, kind.Meta())
	}

	var b strings.Builder
	err := coverTemplate.Execute(&b, struct {
		Title    string
		SiteName string
		Address  string
		Details  template.HTML
		Entries  []Meta
	}{
		Title:    ReportTitle,
		SiteName: in.Site.Name,
		Address:  in.Site.Address(),
		Details:  document.Details(details...),
		Entries:  entries,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func preparedBy(in *Input) string {
	user := strings.TrimSpace(in.Actor.UserID)
	if user == "" {
		return ""
	}
	if role := strings.TrimSpace(in.Actor.Role); role != "" {
		return user + " (" + document.Humanize(role) + ")"
	}
	return user
}

// Footer is the fixed closing block of every report
func Footer(in *Input) template.HTML {
	generated := document.Placeholder
	if in != nil && !in.GeneratedAt.IsZero() {
		generated = in.dateTime(in.GeneratedAt)
	}
	reference := document.Placeholder
	if in != nil && in.ReportID != "" {
		reference = in.ReportID
	}
	return document.Join(
		document.Note("This report is compiled automatically from the records held for this site at the time of generation. "+
			"It should be cross-checked against the source records before it is relied on for regulatory purposes. "+
			"Sections marked as having no data reflect the absence of records for the period, not confirmation that checks did not take place."),
		document.Note("Report reference "+reference+" generated "+generated+"."),
	)
}
