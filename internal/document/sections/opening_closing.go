package sections

import (
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// dayChecks is the opening and closing outcome for one calendar day
type dayChecks struct {
	day     time.Time
	opening *entities.ChecklistRun
	closing *entities.ChecklistRun
}

func buildOpeningClosing(in *Input) (template.HTML, error) {
	runs := in.Data.ChecklistRuns
	if len(runs) == 0 {
		return document.EmptyState("No opening or closing checks were recorded for this period."), nil
	}

	byDay := make(map[string]*dayChecks)
	for i := range runs {
		run := &runs[i]
		key := in.date(run.RunDate)
		dc, ok := byDay[key]
		if !ok {
			dc = &dayChecks{day: run.RunDate}
			byDay[key] = dc
		}
		switch run.ChecklistType {
		case entities.ChecklistOpening:
			dc.opening = better(dc.opening, run)
		case entities.ChecklistClosing:
			dc.closing = better(dc.closing, run)
		}
	}

	// only days up to today can be missed
	today := in.Today()
	var days []dayChecks
	var missing []string
	expected, done := 0, 0
	in.Window.EachDay(func(day time.Time) {
		if day.After(today) {
			return
		}
		key := in.date(day)
		dc := byDay[key]
		if dc == nil {
			dc = &dayChecks{day: day}
		}
		days = append(days, *dc)

		expected += 2
		var gaps []string
		if dc.opening != nil && dc.opening.Complete() {
			done++
		} else {
			gaps = append(gaps, "opening")
		}
		if dc.closing != nil && dc.closing.Complete() {
			done++
		} else {
			gaps = append(gaps, "closing")
		}
		if len(gaps) > 0 {
			missing = append(missing, fmt.Sprintf("%s: %s check incomplete", key, joinWords(gaps)))
		}
	})

	completion := document.Percent(done, expected)
	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Days in period", Value: strconv.Itoa(len(days)), Tone: document.ToneInfo},
			document.StatCard{Label: "Checks expected", Value: strconv.Itoa(expected), Tone: document.ToneNeutral},
			document.StatCard{Label: "Checks completed", Value: strconv.Itoa(done), Tone: document.ToneNeutral},
			document.StatCard{Label: "Completion", Value: document.FormatPercent(completion), Tone: document.PercentTone(completion, nil)},
		),
	}
	if len(missing) > 0 {
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d day(s) with missing or incomplete checks", len(missing)), limitItems(missing, 10)...))
	}

	rows := make([]document.Row, 0, len(days))
	for _, dc := range days {
		rows = append(rows, document.Row{
			"day":        dc.day,
			"opening":    runStatus(dc.opening),
			"opening_by": runBy(dc.opening),
			"closing":    runStatus(dc.closing),
			"closing_by": runBy(dc.closing),
		})
	}
	parts = append(parts, in.table("No opening or closing checks were recorded for this period.", []document.Column{
		{Key: "day", Header: "Date", Format: document.ColumnDate},
		{Key: "opening", Header: "Opening", Format: document.ColumnBadge, Badges: checklistBadges},
		{Key: "opening_by", Header: "Opened by"},
		{Key: "closing", Header: "Closing", Format: document.ColumnBadge, Badges: checklistBadges},
		{Key: "closing_by", Header: "Closed by"},
	}, rows))
	return document.Join(parts...), nil
}

var checklistBadges = map[string]document.Tone{
	"complete":   document.ToneSuccess,
	"incomplete": document.ToneWarning,
	"missing":    document.ToneDanger,
}

// better keeps the more complete of two runs on the same day
func better(current, candidate *entities.ChecklistRun) *entities.ChecklistRun {
	if current == nil {
		return candidate
	}
	if candidate.Complete() && !current.Complete() {
		return candidate
	}
	if candidate.ItemsCompleted > current.ItemsCompleted {
		return candidate
	}
	return current
}

func runStatus(run *entities.ChecklistRun) string {
	switch {
	case run == nil:
		return "missing"
	case run.Complete():
		return "complete"
	default:
		return "incomplete"
	}
}

func runBy(run *entities.ChecklistRun) string {
	if run == nil {
		return ""
	}
	return run.CompletedBy
}

func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		return words[0] + " and " + words[1]
	}
}
