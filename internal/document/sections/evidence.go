package sections

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func buildEvidence(in *Input) (template.HTML, error) {
	attachments := make([]entities.Attachment, 0, len(in.Data.Attachments))
	for _, a := range in.Data.Attachments {
		if strings.TrimSpace(a.URL) != "" {
			attachments = append(attachments, a)
		}
	}
	if len(attachments) == 0 {
		return document.EmptyState("No photos or evidence files were attached to records in this period."), nil
	}
	sort.SliceStable(attachments, func(i, j int) bool { return attachments[i].TakenAt.After(attachments[j].TakenAt) })

	limit := in.RowLimit
	if limit <= 0 {
		limit = document.DefaultRowLimit
	}
	shown := attachments
	if len(shown) > limit {
		shown = shown[:limit]
	}

	items := make([]document.GalleryItem, 0, len(shown))
	for _, a := range shown {
		caption := a.Caption
		if caption == "" {
			caption = document.Humanize(a.Category)
		}
		meta := in.dateTime(a.TakenAt)
		if a.SourceKind != "" {
			meta = document.Humanize(a.SourceKind) + ", " + meta
		}
		items = append(items, document.GalleryItem{URL: a.URL, Caption: caption, Meta: meta})
	}

	parts := []template.HTML{document.Gallery(items...)}
	if len(attachments) > len(shown) {
		parts = append(parts, document.Note(fmt.Sprintf(
			"Showing %d of %d attachments. The remaining files are available in the source system.", len(shown), len(attachments))))
	}
	return document.Join(parts...), nil
}
