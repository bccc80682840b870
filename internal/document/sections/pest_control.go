package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildPestControl(in *Input) (template.HTML, error) {
	visits := in.Data.PestControl
	if len(visits) == 0 {
		return document.EmptyState("No pest control visits or checks were recorded for this period."), nil
	}

	today := in.Today()
	activity := ectolinq.Filter(visits, func(p entities.PestControlRecord) bool { return p.ActivityFound })
	followUps := ectolinq.Filter(visits, func(p entities.PestControlRecord) bool {
		return p.FollowUpDate != nil && !p.FollowUpDate.After(today)
	})
	contractors := map[string]struct{}{}
	for _, v := range visits {
		if v.Contractor != "" {
			contractors[v.Contractor] = struct{}{}
		}
	}

	parts := []template.HTML{
		document.StatGrid(3,
			document.StatCard{Label: "Visits and checks", Value: strconv.Itoa(len(visits)), Tone: document.ToneInfo},
			document.StatCard{Label: "Activity found", Value: strconv.Itoa(len(activity)), Tone: countTone(len(activity))},
			document.StatCard{Label: "Contractors", Value: strconv.Itoa(len(contractors)), Tone: document.ToneNeutral},
		),
	}

	if len(activity) > 0 {
		items := ectolinq.Map(activity, func(p entities.PestControlRecord) string {
			item := fmt.Sprintf("%s: %s", in.date(p.VisitDate), document.FormatValue(p.Findings, nil))
			if p.ActionsRequired != "" {
				item += ". Actions: " + p.ActionsRequired
			}
			return item
		})
		parts = append(parts, document.Callout(document.ToneDanger, "Pest activity was found", limitItems(items, 10)...))
	}
	if len(followUps) > 0 {
		items := ectolinq.Map(followUps, func(p entities.PestControlRecord) string {
			return fmt.Sprintf("%s follow-up due %s", p.Contractor, document.FormatOptionalDate(p.FollowUpDate, in.loc()))
		})
		parts = append(parts, document.Callout(document.ToneWarning, "Follow-up visits due or overdue", limitItems(items, 10)...))
	}

	rows := ectolinq.Map(visits, func(p entities.PestControlRecord) document.Row {
		return document.Row{
			"visit_date": p.VisitDate,
			"contractor": p.Contractor,
			"visit_type": document.Humanize(p.VisitType),
			"activity":   p.ActivityFound,
			"findings":   p.Findings,
			"follow_up":  p.FollowUpDate,
			"report_url": p.ReportURL,
		}
	})
	parts = append(parts, in.table("No pest control visits or checks were recorded for this period.", []document.Column{
		{Key: "visit_date", Header: "Date", Format: document.ColumnDate},
		{Key: "contractor", Header: "Contractor"},
		{Key: "visit_type", Header: "Type"},
		{Key: "activity", Header: "Activity found"},
		{Key: "findings", Header: "Findings"},
		{Key: "follow_up", Header: "Follow-up", Format: document.ColumnDate},
		{Key: "report_url", Header: "Report", Format: document.ColumnLink, LinkText: "View report"},
	}, rows))
	return document.Join(parts...), nil
}
