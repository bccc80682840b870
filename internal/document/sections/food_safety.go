package sections

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// foodSafetyCategories are task categories recorded as food safety management checks
var foodSafetyCategories = []string{"food_safety", "haccp", "allergens", "delivery", "cooking", "cooling", "reheating"}

func buildFoodSafety(in *Input) (template.HTML, error) {
	d := in.Data
	tasks := ectolinq.Filter(d.TaskCompletions, func(t entities.TaskCompletion) bool {
		return ectolinq.Contains(foodSafetyCategories, strings.ToLower(strings.TrimSpace(t.Category)))
	})

	if len(tasks) == 0 && len(d.ComplianceScores) == 0 {
		return document.EmptyState("No food safety checks or audit scores were recorded for this period."), nil
	}

	trained, staff := categoryCoverage(in.Training, entities.TrainingFoodSafety)
	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Food safety checks", Value: strconv.Itoa(len(tasks)), Tone: document.ToneInfo},
			document.StatCard{Label: "Audits in period", Value: strconv.Itoa(len(d.ComplianceScores)), Tone: document.ToneNeutral},
			latestScoreCard(d.ComplianceScores),
			coverageCard("Food safety trained", trained, staff),
		),
	}

	if len(d.ComplianceScores) > 0 {
		latest := latestScore(d.ComplianceScores)
		if latest.Rating != nil && *latest.Rating < 3 {
			parts = append(parts, document.Callout(document.ToneDanger,
				fmt.Sprintf("The latest hygiene rating from %s is %d", latest.Source, *latest.Rating),
				"A rating below 3 indicates improvement is necessary."))
		} else if document.PercentTone(latest.Score, nil) == document.ToneDanger {
			parts = append(parts, document.Callout(document.ToneWarning,
				fmt.Sprintf("The latest audit score from %s is %s", latest.Source, document.FormatPercent(latest.Score))))
		}
	}

	parts = append(parts, document.Subheading("Audit and hygiene scores"))
	parts = append(parts, in.table("No audits or inspections were recorded for this period.", []document.Column{
		{Key: "assessed_at", Header: "Date", Format: document.ColumnDate},
		{Key: "source", Header: "Source"},
		{Key: "score", Header: "Score", Format: document.ColumnPercent},
		{Key: "rating", Header: "Rating"},
		{Key: "notes", Header: "Notes"},
	}, ectolinq.Map(d.ComplianceScores, func(s entities.ComplianceScore) document.Row {
		var rating any
		if s.Rating != nil {
			rating = strconv.Itoa(*s.Rating)
		}
		return document.Row{"assessed_at": s.AssessedAt, "source": s.Source, "score": s.Score, "rating": rating, "notes": s.Notes}
	})))

	parts = append(parts, document.Subheading("Food safety checks"))
	parts = append(parts, in.table("No food safety checks were recorded for this period.", taskColumns(), taskRows(tasks)))
	return document.Join(parts...), nil
}

func taskColumns() []document.Column {
	return []document.Column{
		{Key: "completed_at", Header: "Completed", Format: document.ColumnDateTime},
		{Key: "task", Header: "Task"},
		{Key: "category", Header: "Category"},
		{Key: "completed_by", Header: "Completed by"},
	}
}

func taskRows(tasks []entities.TaskCompletion) []document.Row {
	return ectolinq.Map(tasks, func(t entities.TaskCompletion) document.Row {
		return document.Row{
			"completed_at": t.CompletedAt,
			"task":         t.TaskName,
			"category":     document.Humanize(t.Category),
			"completed_by": t.CompletedBy,
		}
	})
}

// categoryCoverage counts staff whose entry for the category is current
func categoryCoverage(matrix []entities.EmployeeTraining, category entities.TrainingCategory) (current, staff int) {
	for _, row := range matrix {
		entry, ok := row.Entry(category)
		if !ok {
			continue
		}
		staff++
		if entry.Status == entities.TrainingCompliant || entry.Status == entities.TrainingExpiringSoon {
			current++
		}
	}
	return current, staff
}

func coverageCard(label string, current, staff int) document.StatCard {
	if staff == 0 {
		return document.StatCard{Label: label, Value: document.Placeholder, Hint: "No staff recorded", Tone: document.ToneNeutral}
	}
	pct := document.Percent(current, staff)
	return document.StatCard{
		Label: label,
		Value: fmt.Sprintf("%d / %d", current, staff),
		Tone:  document.PercentTone(pct, nil),
	}
}
