package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

var cleaningBadges = map[string]document.Tone{
	"completed": document.ToneSuccess,
	"pending":   document.ToneInfo,
	"missed":    document.ToneDanger,
	"overdue":   document.ToneDanger,
	"partial":   document.ToneWarning,
}

func buildCleaning(in *Input) (template.HTML, error) {
	records := in.Data.CleaningRecords
	if len(records) == 0 {
		return document.EmptyState("No cleaning records were found for this period."), nil
	}

	today := in.Today()
	completed := ectolinq.Filter(records, func(c entities.CleaningRecord) bool { return c.Completed() })
	missed := ectolinq.Filter(records, func(c entities.CleaningRecord) bool {
		return !c.Completed() && c.DueAt.Before(today)
	})
	completion := document.Percent(len(completed), len(records))

	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Scheduled", Value: strconv.Itoa(len(records)), Tone: document.ToneInfo},
			document.StatCard{Label: "Completed", Value: strconv.Itoa(len(completed)), Tone: document.ToneNeutral},
			document.StatCard{Label: "Missed", Value: strconv.Itoa(len(missed)), Tone: countTone(len(missed))},
			document.StatCard{Label: "Completion", Value: document.FormatPercent(completion), Tone: document.PercentTone(completion, nil)},
		),
	}

	if len(missed) > 0 {
		items := ectolinq.Map(missed, func(c entities.CleaningRecord) string {
			return fmt.Sprintf("%s (%s) due %s", c.Task, c.Area, in.date(c.DueAt))
		})
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d cleaning task(s) were not signed off", len(missed)), limitItems(items, 10)...))
	}

	rows := ectolinq.Map(records, func(c entities.CleaningRecord) document.Row {
		status := c.Status
		if status == "" {
			status = "pending"
			if c.Completed() {
				status = "completed"
			} else if c.DueAt.Before(today) {
				status = "missed"
			}
		}
		return document.Row{
			"due_at":       c.DueAt,
			"area":         c.Area,
			"task":         c.Task,
			"frequency":    document.Humanize(c.Frequency),
			"completed_at": c.CompletedAt,
			"completed_by": c.CompletedBy,
			"status":       status,
		}
	})
	parts = append(parts, in.table("No cleaning records were found for this period.", []document.Column{
		{Key: "due_at", Header: "Due", Format: document.ColumnDate},
		{Key: "area", Header: "Area"},
		{Key: "task", Header: "Task"},
		{Key: "frequency", Header: "Frequency"},
		{Key: "completed_at", Header: "Completed", Format: document.ColumnDateTime},
		{Key: "completed_by", Header: "By"},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: cleaningBadges},
	}, rows))
	return document.Join(parts...), nil
}
