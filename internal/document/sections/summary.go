package sections

import (
	"fmt"
	"html/template"
	"sort"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildExecutiveSummary(in *Input) (template.HTML, error) {
	d := in.Data

	breaches := len(ectolinq.Filter(in.Temperatures, func(r entities.TemperatureReading) bool { return r.Breach() }))
	tempCompliance := document.Percent(len(in.Temperatures)-breaches, len(in.Temperatures))
	cleaningDone := len(ectolinq.Filter(d.CleaningRecords, func(c entities.CleaningRecord) bool { return c.Completed() }))
	cleaningCompletion := document.Percent(cleaningDone, len(d.CleaningRecords))
	trainingCompliance := trainingCompliancePercent(in.Training)
	openIncidents := len(ectolinq.Filter(d.Incidents, func(i entities.Incident) bool { return i.Open() }))
	expiredDocs := len(ectolinq.Filter(d.Documents, func(doc entities.ComplianceDocument) bool {
		return in.expiry(doc.ExpiresAt) == entities.ExpiryExpired
	}))

	cards := []document.StatCard{
		percentCard("Temperature compliance", tempCompliance, len(in.Temperatures)),
		percentCard("Cleaning completion", cleaningCompletion, len(d.CleaningRecords)),
		percentCard("Training compliance", trainingCompliance, len(in.Training)),
		{Label: "Open incidents", Value: strconv.Itoa(openIncidents), Tone: warnTone(openIncidents)},
		{Label: "Expired documents", Value: strconv.Itoa(expiredDocs), Tone: countTone(expiredDocs)},
		latestScoreCard(d.ComplianceScores),
	}

	parts := []template.HTML{
		document.Paragraph(fmt.Sprintf("This report covers %s (%s) for the period %s.",
			in.Site.Name, in.organizationName(), in.periodLabel())),
		document.StatGrid(3, cards...),
	}

	attention := attentionItems(in, breaches)
	if len(attention) == 0 {
		parts = append(parts, document.Callout(document.ToneSuccess,
			"No issues requiring attention were identified in the records for this period."))
	} else {
		parts = append(parts, document.Callout(document.ToneWarning, "Items requiring attention", attention...))
	}
	return document.Join(parts...), nil
}

// attentionItems lists the conditions an inspector is likely to ask about
func attentionItems(in *Input, breaches int) []string {
	d := in.Data
	var items []string

	if breaches > 0 {
		items = append(items, fmt.Sprintf("%d temperature breach(es) recorded (section 3)", breaches))
	}
	if n := len(ectolinq.Filter(d.PestControl, func(p entities.PestControlRecord) bool { return p.ActivityFound })); n > 0 {
		items = append(items, fmt.Sprintf("%d pest control visit(s) found activity (section 5)", n))
	}
	if n := expiredTrainingEntries(in.Training); n > 0 {
		items = append(items, fmt.Sprintf("%d expired or outstanding training record(s) (section 6)", n))
	}
	if n := len(ectolinq.Filter(d.Incidents, func(i entities.Incident) bool { return i.NeedsAttention() })); n > 0 {
		items = append(items, fmt.Sprintf("%d incident(s) that are major, critical or awaiting notification (section 7)", n))
	}
	failedChecks := ectolinq.Filter(append(append([]entities.SafetyCheck{}, d.HealthSafetyChecks...), d.FireSafetyChecks...),
		func(c entities.SafetyCheck) bool { return c.Result != "" && !c.Passed() })
	if len(failedChecks) > 0 {
		items = append(items, fmt.Sprintf("%d safety check(s) not passed (sections 9 and 10)", len(failedChecks)))
	}
	if n := len(ectolinq.Filter(d.Appliances, func(a entities.Appliance) bool {
		return in.expiry(a.NextTestDue) == entities.ExpiryExpired
	})); n > 0 {
		items = append(items, fmt.Sprintf("%d appliance test(s) overdue (section 12)", n))
	}
	if n := len(ectolinq.Filter(d.Documents, func(doc entities.ComplianceDocument) bool {
		return in.expiry(doc.ExpiresAt) == entities.ExpiryExpired
	})); n > 0 {
		items = append(items, fmt.Sprintf("%d expired document(s) or licence(s) (section 13)", n))
	}
	return items
}

func percentCard(label string, pct float64, total int) document.StatCard {
	if total == 0 {
		return document.StatCard{Label: label, Value: document.Placeholder, Hint: "No records", Tone: document.ToneNeutral}
	}
	return document.StatCard{Label: label, Value: document.FormatPercent(pct), Tone: document.PercentTone(pct, nil)}
}

func latestScoreCard(scores []entities.ComplianceScore) document.StatCard {
	if len(scores) == 0 {
		return document.StatCard{Label: "Latest audit score", Value: document.Placeholder, Hint: "No audits in period", Tone: document.ToneNeutral}
	}
	latest := latestScore(scores)
	return document.StatCard{
		Label: "Latest audit score",
		Value: document.FormatPercent(latest.Score),
		Hint:  latest.Source,
		Tone:  document.PercentTone(latest.Score, nil),
	}
}

func latestScore(scores []entities.ComplianceScore) entities.ComplianceScore {
	sorted := append([]entities.ComplianceScore{}, scores...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AssessedAt.After(sorted[j].AssessedAt) })
	return sorted[0]
}

// trainingCompliancePercent is the share of all matrix cells that are current
func trainingCompliancePercent(matrix []entities.EmployeeTraining) float64 {
	total, current := 0, 0
	for _, row := range matrix {
		for _, e := range row.Entries {
			total++
			if e.Status == entities.TrainingCompliant || e.Status == entities.TrainingExpiringSoon {
				current++
			}
		}
	}
	return document.Percent(current, total)
}

func expiredTrainingEntries(matrix []entities.EmployeeTraining) int {
	n := 0
	for _, row := range matrix {
		for _, e := range row.Entries {
			if e.Status == entities.TrainingExpired || e.Status == entities.TrainingRequired {
				n++
			}
		}
	}
	return n
}
