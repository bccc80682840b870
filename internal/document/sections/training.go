package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildTraining(in *Input) (template.HTML, error) {
	matrix := in.Training
	if len(matrix) == 0 {
		return document.EmptyState("No staff or training records were found for this site."), nil
	}

	var expiring, expired []string
	for _, row := range matrix {
		for _, e := range row.Entries {
			label := fmt.Sprintf("%s: %s", row.EmployeeName, e.Category.Label())
			if e.ExpiresAt != nil {
				label += " (" + document.FormatOptionalDate(e.ExpiresAt, in.loc()) + ")"
			}
			switch e.Status {
			case entities.TrainingExpiringSoon:
				expiring = append(expiring, label)
			case entities.TrainingExpired, entities.TrainingRequired:
				expired = append(expired, label)
			}
		}
	}

	compliance := trainingCompliancePercent(matrix)
	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Staff", Value: strconv.Itoa(len(matrix)), Tone: document.ToneInfo},
			document.StatCard{Label: "Compliance", Value: document.FormatPercent(compliance), Tone: document.PercentTone(compliance, nil)},
			document.StatCard{Label: "Expiring soon", Value: strconv.Itoa(len(expiring)), Tone: warnTone(len(expiring))},
			document.StatCard{Label: "Expired or required", Value: strconv.Itoa(len(expired)), Tone: countTone(len(expired))},
		),
	}

	if len(expired) > 0 {
		parts = append(parts, document.Callout(document.ToneDanger,
			fmt.Sprintf("%d training record(s) expired or outstanding", len(expired)), limitItems(expired, 10)...))
	}
	if len(expiring) > 0 {
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d training record(s) due for renewal", len(expiring)), limitItems(expiring, 10)...))
	}

	columns := []document.Column{{Key: "employee", Header: "Employee"}}
	for _, c := range entities.TrainingCategories {
		columns = append(columns, document.Column{
			Key:    string(c),
			Header: c.Label(),
			Format: document.ColumnBadge,
			Badges: trainingBadges,
		})
	}
	rows := make([]document.Row, 0, len(matrix))
	for _, row := range matrix {
		r := document.Row{"employee": row.EmployeeName}
		for _, e := range row.Entries {
			r[string(e.Category)] = string(e.Status)
		}
		rows = append(rows, r)
	}
	parts = append(parts, document.Subheading("Training matrix"))
	parts = append(parts, in.table("No staff or training records were found for this site.", columns, rows))
	parts = append(parts, document.Note("Where an employee holds more than one course in a category, "+
		"the highest level certificate is shown."))
	return document.Join(parts...), nil
}
