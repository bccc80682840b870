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

func buildTemperature(in *Input) (template.HTML, error) {
	readings := in.Temperatures
	if len(readings) == 0 {
		return document.EmptyState("No temperature readings were recorded for this period."), nil
	}

	breaches := ectolinq.Filter(readings, func(r entities.TemperatureReading) bool { return r.Breach() })
	fromTasks := ectolinq.Filter(readings, func(r entities.TemperatureReading) bool { return r.Source == entities.SourceTask })
	assets := distinctAssets(readings)

	compliance := document.Percent(len(readings)-len(breaches), len(readings))
	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Total readings", Value: strconv.Itoa(len(readings)), Tone: document.ToneInfo},
			document.StatCard{Label: "Breaches", Value: strconv.Itoa(len(breaches)), Tone: countTone(len(breaches))},
			document.StatCard{Label: "Assets monitored", Value: strconv.Itoa(assets), Tone: document.ToneNeutral},
			document.StatCard{Label: "In range", Value: document.FormatPercent(compliance), Tone: document.PercentTone(compliance, nil)},
		),
	}

	if len(breaches) > 0 {
		items := ectolinq.Map(breaches, func(r entities.TemperatureReading) string {
			return fmt.Sprintf("%s: %s at %s", r.AssetName, entities.FormatReading(r.Reading, r.Unit), in.dateTime(r.RecordedAt))
		})
		title := fmt.Sprintf("%d temperature reading(s) outside the safe range", len(breaches))
		parts = append(parts, document.Callout(document.ToneDanger, title, limitItems(items, 10)...))
	}

	rows := ectolinq.Map(readings, func(r entities.TemperatureReading) document.Row {
		return document.Row{
			"recorded_at": r.RecordedAt,
			"asset":       r.AssetName,
			"reading":     entities.FormatReading(r.Reading, r.Unit),
			"status":      r.Status,
			"recorded_by": r.RecordedBy,
			"source":      sourceLabel(r.Source),
		}
	})
	parts = append(parts, in.table("No temperature readings were recorded for this period.", []document.Column{
		{Key: "recorded_at", Header: "Date / time", Format: document.ColumnDateTime},
		{Key: "asset", Header: "Asset"},
		{Key: "reading", Header: "Reading"},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: readingBadges},
		{Key: "recorded_by", Header: "Recorded by"},
		{Key: "source", Header: "Source"},
	}, rows))

	if len(fromTasks) > 0 {
		parts = append(parts, document.Note(fmt.Sprintf(
			"%d reading(s) were taken from task checklists recorded before the temperature log was introduced. "+
				"Readings already present in the temperature log are shown once.", len(fromTasks))))
	}
	return document.Join(parts...), nil
}

func distinctAssets(readings []entities.TemperatureReading) int {
	seen := make(map[string]struct{}, len(readings))
	for _, r := range readings {
		seen[strings.ToLower(strings.TrimSpace(r.AssetName))] = struct{}{}
	}
	return len(seen)
}

func sourceLabel(source string) string {
	if source == entities.SourceTask {
		return "Task checklist"
	}
	return "Temperature log"
}

// limitItems caps a callout list, noting how many were left out
func limitItems(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	out := append([]string{}, items[:n]...)
	return append(out, fmt.Sprintf("and %d more", len(items)-n))
}
