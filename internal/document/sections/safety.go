package sections

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

var riskBadges = map[string]document.Tone{
	"low":    document.ToneSuccess,
	"medium": document.ToneWarning,
	"high":   document.ToneDanger,
}

func buildHealthSafety(in *Input) (template.HTML, error) {
	d := in.Data
	checks := d.HealthSafetyChecks
	assessments := d.RiskAssessments
	if len(checks) == 0 && len(assessments) == 0 {
		return document.EmptyState("No health and safety checks or risk assessments were found for this period."), nil
	}

	overdue := ectolinq.Filter(assessments, func(r entities.RiskAssessment) bool {
		return in.expiry(r.ReviewDue) == entities.ExpiryExpired
	})
	trained, staff := categoryCoverage(in.Training, entities.TrainingHealthSafety)
	firstAid, _ := categoryCoverage(in.Training, entities.TrainingFirstAid)

	parts := []template.HTML{checkStats(checks,
		document.StatCard{Label: "Risk assessments", Value: strconv.Itoa(len(assessments)), Tone: document.ToneInfo},
		coverageCard("H&S trained", trained, staff),
		document.StatCard{Label: "First aiders", Value: strconv.Itoa(firstAid), Tone: countInverseTone(firstAid)},
	)}
	parts = append(parts, failedChecksCallout(in, checks)...)

	if len(overdue) > 0 {
		items := ectolinq.Map(overdue, func(r entities.RiskAssessment) string {
			return fmt.Sprintf("%s review was due %s", r.Title, document.FormatOptionalDate(r.ReviewDue, in.loc()))
		})
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d risk assessment(s) overdue for review", len(overdue)), limitItems(items, 10)...))
	}

	parts = append(parts, document.Subheading("Checks"))
	parts = append(parts, checkTable(in, checks, "No health and safety checks were recorded for this period."))

	parts = append(parts, document.Subheading("Risk assessments"))
	parts = append(parts, in.table("No risk assessments are on file for this organization.", []document.Column{
		{Key: "title", Header: "Assessment"},
		{Key: "area", Header: "Area"},
		{Key: "risk", Header: "Risk level", Format: document.ColumnBadge, Badges: riskBadges},
		{Key: "assessed_by", Header: "Assessed by"},
		{Key: "assessed_at", Header: "Assessed", Format: document.ColumnDate},
		{Key: "review_due", Header: "Review due", Format: document.ColumnDate},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: expiryBadges},
	}, ectolinq.Map(assessments, func(r entities.RiskAssessment) document.Row {
		return document.Row{
			"title":       r.Title,
			"area":        r.Area,
			"risk":        r.RiskLevel,
			"assessed_by": r.AssessedBy,
			"assessed_at": r.AssessedAt,
			"review_due":  r.ReviewDue,
			"status":      string(in.expiry(r.ReviewDue)),
		}
	})))
	return document.Join(parts...), nil
}

func buildFireSafety(in *Input) (template.HTML, error) {
	checks := in.Data.FireSafetyChecks
	trained, staff := categoryCoverage(in.Training, entities.TrainingFire)
	if len(checks) == 0 && trained == 0 {
		return document.EmptyState("No fire safety checks or fire training were recorded for this period."), nil
	}

	wardens := 0
	for _, row := range in.Training {
		if e, ok := row.Entry(entities.TrainingFire); ok && e.CourseCode == "FIRE_WARDEN" &&
			(e.Status == entities.TrainingCompliant || e.Status == entities.TrainingExpiringSoon) {
			wardens++
		}
	}

	lastAlarmTest := latestCheck(checks, "alarm")
	alarmCard := document.StatCard{Label: "Last alarm test", Value: document.Placeholder, Hint: "None recorded", Tone: document.ToneWarning}
	if !lastAlarmTest.IsZero() {
		alarmCard = document.StatCard{Label: "Last alarm test", Value: in.date(lastAlarmTest), Tone: document.ToneNeutral}
		if in.Today().Sub(lastAlarmTest) > 8*24*time.Hour {
			alarmCard.Tone = document.ToneWarning
			alarmCard.Hint = "Weekly test overdue"
		}
	}

	parts := []template.HTML{checkStats(checks,
		coverageCard("Fire trained", trained, staff),
		document.StatCard{Label: "Fire wardens", Value: strconv.Itoa(wardens), Tone: countInverseTone(wardens)},
		alarmCard,
	)}
	parts = append(parts, failedChecksCallout(in, checks)...)
	if staff > 0 && wardens == 0 {
		parts = append(parts, document.Callout(document.ToneWarning, "No current fire warden is recorded for this site"))
	}
	parts = append(parts, checkTable(in, checks, "No fire safety checks were recorded for this period."))
	return document.Join(parts...), nil
}

// checkStats leads with the checks and pass rate, followed by extra cards
func checkStats(checks []entities.SafetyCheck, extra ...document.StatCard) template.HTML {
	passed := len(ectolinq.Filter(checks, func(c entities.SafetyCheck) bool { return c.Passed() }))
	cards := []document.StatCard{
		{Label: "Checks", Value: strconv.Itoa(len(checks)), Tone: document.ToneInfo},
		percentCard("Pass rate", document.Percent(passed, len(checks)), len(checks)),
	}
	cards = append(cards, extra...)
	perRow := 4
	if len(cards)%3 == 0 {
		perRow = 3
	}
	return document.StatGrid(perRow, cards...)
}

func failedChecksCallout(in *Input, checks []entities.SafetyCheck) []template.HTML {
	failed := ectolinq.Filter(checks, func(c entities.SafetyCheck) bool { return c.Result != "" && !c.Passed() })
	if len(failed) == 0 {
		return nil
	}
	items := ectolinq.Map(failed, func(c entities.SafetyCheck) string {
		item := fmt.Sprintf("%s %s (%s)", in.date(c.CheckedAt), document.Humanize(c.CheckType), document.Humanize(c.Result))
		if c.Notes != "" {
			item += ": " + c.Notes
		}
		return item
	})
	return []template.HTML{document.Callout(document.ToneDanger,
		fmt.Sprintf("%d check(s) did not pass", len(failed)), limitItems(items, 10)...)}
}

func checkTable(in *Input, checks []entities.SafetyCheck, empty string) template.HTML {
	return in.table(empty, []document.Column{
		{Key: "checked_at", Header: "Date / time", Format: document.ColumnDateTime},
		{Key: "check", Header: "Check"},
		{Key: "area", Header: "Area"},
		{Key: "checked_by", Header: "Checked by"},
		{Key: "result", Header: "Result", Format: document.ColumnBadge, Badges: resultBadges},
		{Key: "notes", Header: "Notes"},
	}, ectolinq.Map(checks, func(c entities.SafetyCheck) document.Row {
		return document.Row{
			"checked_at": c.CheckedAt,
			"check":      document.Humanize(c.CheckType),
			"area":       c.Area,
			"checked_by": c.CheckedBy,
			"result":     c.Result,
			"notes":      c.Notes,
		}
	}))
}

// latestCheck finds the most recent check whose type mentions kind
func latestCheck(checks []entities.SafetyCheck, kind string) time.Time {
	var latest time.Time
	for _, c := range checks {
		if containsFold(c.CheckType, kind) && c.CheckedAt.After(latest) {
			latest = c.CheckedAt
		}
	}
	return latest
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// countInverseTone is success when at least one is present
func countInverseTone(n int) document.Tone {
	if n > 0 {
		return document.ToneSuccess
	}
	return document.ToneWarning
}
