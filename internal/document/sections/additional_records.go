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

var approvalBadges = map[string]document.Tone{
	"approved":  document.ToneSuccess,
	"pending":   document.ToneWarning,
	"suspended": document.ToneDanger,
	"rejected":  document.ToneDanger,
}

// coveredCategories are task categories reported in other sections
var coveredCategories = append([]string{"temperature", "cleaning", "opening", "closing", "pest_control", "fire_safety", "health_safety"},
	foodSafetyCategories...)

func buildAdditionalRecords(in *Input) (template.HTML, error) {
	suppliers := in.Data.SupplierRecords
	other := ectolinq.Filter(in.Data.TaskCompletions, func(t entities.TaskCompletion) bool {
		return !ectolinq.Contains(coveredCategories, strings.ToLower(strings.TrimSpace(t.Category)))
	})
	if len(suppliers) == 0 && len(other) == 0 {
		return document.EmptyState("No supplier records or other checks were recorded for this period."), nil
	}

	certExpired := ectolinq.Filter(suppliers, func(s entities.SupplierRecord) bool {
		return in.expiry(s.CertificateExpiry) == entities.ExpiryExpired
	})
	approved := ectolinq.Filter(suppliers, func(s entities.SupplierRecord) bool {
		return strings.EqualFold(s.ApprovalStatus, "approved")
	})

	parts := []template.HTML{
		document.StatGrid(3,
			document.StatCard{Label: "Suppliers", Value: strconv.Itoa(len(suppliers)), Tone: document.ToneInfo},
			document.StatCard{Label: "Approved", Value: strconv.Itoa(len(approved)), Tone: document.ToneNeutral},
			document.StatCard{Label: "Certificates expired", Value: strconv.Itoa(len(certExpired)), Tone: countTone(len(certExpired))},
		),
	}
	if len(certExpired) > 0 {
		items := ectolinq.Map(certExpired, func(s entities.SupplierRecord) string {
			return fmt.Sprintf("%s certificate expired %s", s.SupplierName, document.FormatOptionalDate(s.CertificateExpiry, in.loc()))
		})
		parts = append(parts, document.Callout(document.ToneWarning, "Supplier certificates have expired", limitItems(items, 10)...))
	}

	parts = append(parts, document.Subheading("Approved suppliers"))
	parts = append(parts, in.table("No supplier records are held for this site.", []document.Column{
		{Key: "supplier", Header: "Supplier"},
		{Key: "category", Header: "Category"},
		{Key: "approval", Header: "Approval", Format: document.ColumnBadge, Badges: approvalBadges},
		{Key: "last_delivery", Header: "Last delivery", Format: document.ColumnDate},
		{Key: "certificate", Header: "Certificate expiry", Format: document.ColumnDate},
		{Key: "status", Header: "Certificate", Format: document.ColumnBadge, Badges: expiryBadges},
	}, ectolinq.Map(suppliers, func(s entities.SupplierRecord) document.Row {
		return document.Row{
			"supplier":      s.SupplierName,
			"category":      document.Humanize(s.Category),
			"approval":      s.ApprovalStatus,
			"last_delivery": s.LastDeliveryAt,
			"certificate":   s.CertificateExpiry,
			"status":        string(in.expiry(s.CertificateExpiry)),
		}
	})))

	parts = append(parts, document.Subheading("Other recorded checks"))
	parts = append(parts, in.table("No other checks were recorded for this period.", taskColumns(), taskRows(other)))
	return document.Join(parts...), nil
}
