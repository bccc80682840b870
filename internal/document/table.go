package document

import (
	"html/template"
	"strings"
	"time"
)

// ColumnFormat tells a table how to render a column's values
type ColumnFormat int

const (
	ColumnPlain ColumnFormat = iota
	ColumnDate
	ColumnDateTime
	ColumnPercent
	ColumnBadge
	ColumnLink
)

// DefaultRowLimit caps tables when no limit is set
const DefaultRowLimit = 50

// Thresholds colour percentages: >= Good is success, >= Warn is warning, else danger
type Thresholds struct {
	Good float64
	Warn float64
}

// DefaultThresholds apply when a percent column sets none
var DefaultThresholds = Thresholds{Good: 90, Warn: 75}

// Column is one table column
type Column struct {
	Key        string
	Header     string
	Format     ColumnFormat
	Badges     map[string]Tone
	Thresholds *Thresholds
	// LinkText labels ColumnLink cells; the URL itself is shown when empty
	LinkText string
}

// Row maps column keys to values
type Row map[string]any

// Table is a data table with a row cap
type Table struct {
	Columns      []Column
	Rows         []Row
	MaxRows      int
	EmptyMessage string
	Location     *time.Location
}

type tableCell struct {
	Text  string
	Href  string
	Badge bool
	Tone  Tone
	Class string
}

var tableTemplate = template.Must(template.New("table").Parse(
	`<table class="data-table"><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>` +
		`{{range .Rows}}<tr>{{range .}}<td{{if .Class}} class="{{.Class}}"{{end}}>` +
		`{{if .Badge}}<span class="badge tone-{{.Tone}}">{{.Text}}</span>` +
		`{{else if .Href}}<a href="{{.Href}}">{{.Text}}</a>` +
		`{{else}}{{.Text}}{{end}}</td>{{end}}</tr>{{end}}` +
		`</tbody></table>` +
		`{{if .Truncated}}<p class="table-footnote">Showing {{.Shown}} of {{.Total}} records. The remaining records are available in the source system.</p>{{end}}`))

// HTML renders the table, or the empty state when there are no rows
func (t Table) HTML() template.HTML {
	if len(t.Rows) == 0 {
		return EmptyState(t.EmptyMessage)
	}

	limit := t.MaxRows
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	rows := t.Rows
	if len(rows) > limit {
		rows = rows[:limit]
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}

	cells := make([][]tableCell, 0, len(rows))
	for _, row := range rows {
		line := make([]tableCell, len(t.Columns))
		for i, col := range t.Columns {
			line[i] = t.cell(col, row[col.Key])
		}
		cells = append(cells, line)
	}

	return render(tableTemplate, struct {
		Headers   []string
		Rows      [][]tableCell
		Truncated bool
		Shown     int
		Total     int
	}{headers, cells, len(t.Rows) > len(rows), len(rows), len(t.Rows)})
}

func (t Table) cell(col Column, v any) tableCell {
	switch col.Format {
	case ColumnDate:
		switch d := v.(type) {
		case time.Time:
			return tableCell{Text: FormatDate(d, t.Location)}
		case *time.Time:
			return tableCell{Text: FormatOptionalDate(d, t.Location)}
		}
	case ColumnDateTime:
		return tableCell{Text: FormatValue(v, t.Location)}
	case ColumnPercent:
		if p, ok := v.(float64); ok {
			return tableCell{Text: FormatPercent(p), Class: "tone-text-" + string(PercentTone(p, col.Thresholds))}
		}
	case ColumnBadge:
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return tableCell{Text: Placeholder}
		}
		tone, ok := col.Badges[strings.ToLower(s)]
		if !ok {
			tone = ToneNeutral
		}
		return tableCell{Text: Humanize(s), Badge: true, Tone: tone}
	case ColumnLink:
		if href, ok := v.(string); ok && strings.TrimSpace(href) != "" {
			text := col.LinkText
			if text == "" {
				text = href
			}
			return tableCell{Text: text, Href: href}
		}
	}
	return tableCell{Text: FormatValue(v, t.Location)}
}

// PercentTone picks the tone for a percentage against thresholds
func PercentTone(p float64, th *Thresholds) Tone {
	if th == nil {
		th = &DefaultThresholds
	}
	switch {
	case p >= th.Good:
		return ToneSuccess
	case p >= th.Warn:
		return ToneWarning
	default:
		return ToneDanger
	}
}
