package sections

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Gobusters/ectolinq"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildDocumentation(in *Input) (template.HTML, error) {
	docs := in.Data.Documents
	if len(docs) == 0 {
		return document.EmptyState("No licences, certificates or policies are on file for this organization."), nil
	}

	statuses := ectolinq.Map(docs, func(d entities.ComplianceDocument) entities.ExpiryStatus { return in.expiry(d.ExpiresAt) })
	count := func(s entities.ExpiryStatus) int {
		return len(ectolinq.Filter(statuses, func(v entities.ExpiryStatus) bool { return v == s }))
	}
	expired, expiring, valid := count(entities.ExpiryExpired), count(entities.ExpiryExpiring), count(entities.ExpiryValid)

	parts := []template.HTML{
		document.StatGrid(4,
			document.StatCard{Label: "Documents", Value: strconv.Itoa(len(docs)), Tone: document.ToneInfo},
			document.StatCard{Label: "Valid", Value: strconv.Itoa(valid), Tone: document.ToneSuccess},
			document.StatCard{Label: "Expiring soon", Value: strconv.Itoa(expiring), Tone: warnTone(expiring)},
			document.StatCard{Label: "Expired", Value: strconv.Itoa(expired), Tone: countTone(expired)},
		),
	}

	var expiredItems, expiringItems []string
	for i, d := range docs {
		item := fmt.Sprintf("%s (%s)", d.Title, document.FormatOptionalDate(d.ExpiresAt, in.loc()))
		switch statuses[i] {
		case entities.ExpiryExpired:
			expiredItems = append(expiredItems, item)
		case entities.ExpiryExpiring:
			expiringItems = append(expiringItems, item)
		}
	}
	if len(expiredItems) > 0 {
		parts = append(parts, document.Callout(document.ToneDanger,
			fmt.Sprintf("%d document(s) have expired", len(expiredItems)), limitItems(expiredItems, 10)...))
	}
	if len(expiringItems) > 0 {
		parts = append(parts, document.Callout(document.ToneWarning,
			fmt.Sprintf("%d document(s) expire within %d days", len(expiringItems), in.warningDays()), limitItems(expiringItems, 10)...))
	}

	rows := make([]document.Row, 0, len(docs))
	for i, d := range docs {
		rows = append(rows, document.Row{
			"title":     d.Title,
			"category":  document.Humanize(d.Category),
			"reference": d.Reference,
			"issued":    d.IssuedAt,
			"expires":   d.ExpiresAt,
			"status":    string(statuses[i]),
			"url":       d.URL,
		})
	}
	parts = append(parts, in.table("No licences, certificates or policies are on file for this organization.", []document.Column{
		{Key: "title", Header: "Document"},
		{Key: "category", Header: "Category"},
		{Key: "reference", Header: "Reference"},
		{Key: "issued", Header: "Issued", Format: document.ColumnDate},
		{Key: "expires", Header: "Expires", Format: document.ColumnDate},
		{Key: "status", Header: "Status", Format: document.ColumnBadge, Badges: expiryBadges},
		{Key: "url", Header: "File", Format: document.ColumnLink, LinkText: "View"},
	}, rows))
	return document.Join(parts...), nil
}
