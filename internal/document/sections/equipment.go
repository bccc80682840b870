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

func buildEquipment(in *Input) (template.HTML, error) {
	assets := in.Data.Assets
	appliances := in.Data.Appliances
	if len(assets) == 0 && len(appliances) == 0 {
		return document.EmptyState("No equipment or portable appliances are registered for this site."), nil
	}

	serviceDue := ectolinq.Filter(assets, func(a entities.Asset) bool {
		return in.expiry(a.NextServiceDue) == entities.ExpiryExpired
	})
	testsOverdue := ectolinq.Filter(appliances, func(a entities.Appliance) bool {
		return in.expiry(a.NextTestDue) == entities.ExpiryExpired
	})
	testsFailed := ectolinq.Filter(appliances, func(a entities.Appliance) bool {
		r := strings.ToLower(strings.TrimSpace(a.Result))
		return r == "fail" || r == "failed"
	})

	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Assets", Value: strconv.Itoa(len(assets)), Tone: document.ToneInfo},
			document.StatCard{Label: "Service overdue", Value: strconv.Itoa(len(serviceDue)), Tone: warnTone(len(serviceDue))},
			document.StatCard{Label: "Appliances", Value: strconv.Itoa(len(appliances)), Tone: document.ToneInfo},
			document.StatCard{Label: "Tests overdue", Value: strconv.Itoa(len(testsOverdue)), Tone: countTone(len(testsOverdue))},
		),
	}

	if len(testsOverdue) > 0 || len(testsFailed) > 0 {
		var items []string
		for _, a := range testsOverdue {
			items = append(items, fmt.Sprintf("%s (%s) test was due %s", a.Name, document.FormatValue(a.Location, nil),
				document.FormatOptionalDate(a.NextTestDue, in.loc())))
		}
		for _, a := range testsFailed {
			items = append(items, fmt.Sprintf("%s (%s) failed its last test", a.Name, document.FormatValue(a.Location, nil)))
		}
		parts = append(parts, document.Callout(document.ToneDanger, "Portable appliance testing needs attention", limitItems(items, 10)...))
	}
	if len(serviceDue) > 0 {
		items := ectolinq.Map(serviceDue, func(a entities.Asset) string {
			return fmt.Sprintf("%s service was due %s", a.Name, document.FormatOptionalDate(a.NextServiceDue, in.loc()))
		})
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d asset(s) overdue for service", len(serviceDue)), limitItems(items, 10)...))
	}

	parts = append(parts, document.Subheading("Equipment register"))
	parts = append(parts, in.table("No equipment is registered for this site.", []document.Column{
		{Key: "name", Header: "Asset"},
		{Key: "category", Header: "Category"},
		{Key: "location", Header: "Location"},
		{Key: "range", Header: "Safe range"},
		{Key: "last_serviced", Header: "Last serviced", Format: document.ColumnDate},
		{Key: "next_service", Header: "Next service", Format: document.ColumnDate},
		{Key: "service", Header: "Service", Format: document.ColumnBadge, Badges: expiryBadges},
	}, ectolinq.Map(assets, func(a entities.Asset) document.Row {
		return document.Row{
			"name":          a.Name,
			"category":      document.Humanize(a.Category),
			"location":      a.Location,
			"range":         safeRange(a),
			"last_serviced": a.LastServicedAt,
			"next_service":  a.NextServiceDue,
			"service":       string(in.expiry(a.NextServiceDue)),
		}
	})))

	parts = append(parts, document.Subheading("Portable appliance testing"))
	parts = append(parts, in.table("No portable appliances are registered for this site.", []document.Column{
		{Key: "name", Header: "Appliance"},
		{Key: "location", Header: "Location"},
		{Key: "last_tested", Header: "Last tested", Format: document.ColumnDate},
		{Key: "result", Header: "Result", Format: document.ColumnBadge, Badges: resultBadges},
		{Key: "next_test", Header: "Next test", Format: document.ColumnDate},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: expiryBadges},
	}, ectolinq.Map(appliances, func(a entities.Appliance) document.Row {
		return document.Row{
			"name":        a.Name,
			"location":    a.Location,
			"last_tested": a.LastTestedAt,
			"result":      a.Result,
			"next_test":   a.NextTestDue,
			"status":      string(in.expiry(a.NextTestDue)),
		}
	})))
	return document.Join(parts...), nil
}

func safeRange(a entities.Asset) string {
	switch {
	case a.MinTemp != nil && a.MaxTemp != nil:
		return entities.FormatReading(*a.MinTemp, "") + " to " + entities.FormatReading(*a.MaxTemp, "")
	case a.MaxTemp != nil:
		return "max " + entities.FormatReading(*a.MaxTemp, "")
	case a.MinTemp != nil:
		return "min " + entities.FormatReading(*a.MinTemp, "")
	}
	return ""
}
