package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildCOSHH(in *Input) (template.HTML, error) {
	sheets := in.Data.ChemicalSheets
	trained, staff := categoryCoverage(in.Training, entities.TrainingCOSHH)
	if len(sheets) == 0 && trained == 0 {
		return document.EmptyState("No COSHH data sheets or COSHH training are on file."), nil
	}

	due := ectolinq.Filter(sheets, func(s entities.ChemicalSheet) bool {
		return in.expiry(s.ReviewDue) == entities.ExpiryExpired
	})
	missingSheet := ectolinq.Filter(sheets, func(s entities.ChemicalSheet) bool { return s.SheetURL == "" })

	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Data sheets", Value: strconv.Itoa(len(sheets)), Tone: document.ToneInfo},
			document.StatCard{Label: "Review overdue", Value: strconv.Itoa(len(due)), Tone: countTone(len(due))},
			document.StatCard{Label: "Missing sheet file", Value: strconv.Itoa(len(missingSheet)), Tone: warnTone(len(missingSheet))},
			coverageCard("COSHH trained", trained, staff),
		),
	}

	if len(due) > 0 {
		items := ectolinq.Map(due, func(s entities.ChemicalSheet) string {
			return fmt.Sprintf("%s review was due %s", s.ProductName, document.FormatOptionalDate(s.ReviewDue, in.loc()))
		})
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d data sheet(s) overdue for review", len(due)), limitItems(items, 10)...))
	}

	parts = append(parts, in.table("No COSHH data sheets are on file for this organization.", []document.Column{
		{Key: "product", Header: "Product"},
		{Key: "supplier", Header: "Supplier"},
		{Key: "hazard", Header: "Hazard class"},
		{Key: "reviewed_at", Header: "Last reviewed", Format: document.ColumnDate},
		{Key: "review_due", Header: "Review due", Format: document.ColumnDate},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: expiryBadges},
		{Key: "sheet", Header: "Data sheet", Format: document.ColumnLink, LinkText: "View sheet"},
	}, ectolinq.Map(sheets, func(s entities.ChemicalSheet) document.Row {
		return document.Row{
			"product":     s.ProductName,
			"supplier":    s.Supplier,
			"hazard":      document.Humanize(s.HazardClass),
			"reviewed_at": s.ReviewedAt,
			"review_due":  s.ReviewDue,
			"status":      string(in.expiry(s.ReviewDue)),
			"sheet":       s.SheetURL,
		}
	})))
	return document.Join(parts...), nil
}
