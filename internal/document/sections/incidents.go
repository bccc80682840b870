package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

var incidentStatusBadges = map[string]document.Tone{
	"open":          document.ToneWarning,
	"investigating": document.ToneInfo,
	"closed":        document.ToneSuccess,
	"resolved":      document.ToneSuccess,
}

func buildIncidents(in *Input) (template.HTML, error) {
	incidents := in.Data.Incidents
	if len(incidents) == 0 {
		return document.EmptyState("No incidents, accidents or complaints were reported for this period."), nil
	}

	open := ectolinq.Filter(incidents, func(i entities.Incident) bool { return i.Open() })
	serious := ectolinq.Filter(incidents, func(i entities.Incident) bool { return i.Serious() })
	attention := ectolinq.Filter(incidents, func(i entities.Incident) bool { return i.NeedsAttention() })
	reportable := ectolinq.Filter(incidents, func(i entities.Incident) bool { return i.Reportable })

	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Incidents", Value: strconv.Itoa(len(incidents)), Tone: document.ToneInfo},
			document.StatCard{Label: "Open", Value: strconv.Itoa(len(open)), Tone: warnTone(len(open))},
			document.StatCard{Label: "Major or critical", Value: strconv.Itoa(len(serious)), Tone: countTone(len(serious))},
			document.StatCard{Label: "Reportable", Value: strconv.Itoa(len(reportable)), Tone: document.ToneNeutral},
		),
	}

	if len(attention) > 0 {
		items := ectolinq.Map(attention, func(i entities.Incident) string {
			item := fmt.Sprintf("%s %s: %s", in.date(i.OccurredAt), document.Humanize(i.Severity), document.FormatValue(i.Description, nil))
			if i.Reportable && !i.AuthorityNotified {
				item += " (reportable, authority not yet notified)"
			}
			return item
		})
		parts = append(parts, document.Callout(document.ToneDanger,
			fmt.Sprintf("%d incident(s) require attention", len(attention)), limitItems(items, 10)...))
	}

	rows := ectolinq.Map(incidents, func(i entities.Incident) document.Row {
		return document.Row{
			"occurred_at": i.OccurredAt,
			"category":    document.Humanize(i.Category),
			"severity":    i.Severity,
			"description": i.Description,
			"reported_by": i.ReportedBy,
			"actions":     i.ActionsTaken,
			"status":      i.Status,
		}
	})
	parts = append(parts, in.table("No incidents, accidents or complaints were reported for this period.", []document.Column{
		{Key: "occurred_at", Header: "Date / time", Format: document.ColumnDateTime},
		{Key: "category", Header: "Category"},
		{Key: "severity", Header: "Severity", Format: document.ColumnBadge, Badges: severityBadges},
		{Key: "description", Header: "Description"},
		{Key: "reported_by", Header: "Reported by"},
		{Key: "actions", Header: "Actions taken"},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: incidentStatusBadges},
	}, rows))
	return document.Join(parts...), nil
}
