package services

import (
	"context"
	"fmt"
	"html/template"

	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/document/sections"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// SectionBuildFunc renders one section body
type SectionBuildFunc func(kind sections.Kind, in *sections.Input) (template.HTML, error)

// ReportAssembler runs every section builder in the fixed order and isolates
// their failures
type ReportAssembler struct {
	build SectionBuildFunc
}

// NewReportAssembler creates a new report assembler. A nil build uses sections.Build.
func NewReportAssembler(build SectionBuildFunc) *ReportAssembler {
	if build == nil {
		build = sections.Build
	}
	return &ReportAssembler{build: build}
}

// Assemble builds the cover and every body section. A section that errors or
// panics is replaced by a labelled placeholder; the document is always produced.
func (a *ReportAssembler) Assemble(ctx context.Context, in *sections.Input) *document.Document {
	ctx, span := observability.StartSpan(ctx, "report.assemble")
	defer span.End()

	doc := &document.Document{
		Title:       sections.ReportTitle,
		ReportID:    in.ReportID,
		GeneratedAt: in.GeneratedAt,
		Sections:    make([]document.Section, 0, len(sections.Order)),
		Footer:      sections.Footer(in),
	}
	if in.Site != nil {
		doc.Title = sections.ReportTitle + ": " + in.Site.Name
	}

	cover, err := a.safeBuild(sections.KindCover, in)
	if err != nil {
		a.recordFailure(ctx, sections.KindCover, err)
		cover = document.SectionError(sections.KindCover.Meta().Title)
	}
	doc.Preamble = cover

	group := sections.KindCover.Meta().Group
	for _, kind := range sections.Order {
		meta := kind.Meta()
		section := document.Section{
			Ordinal:         meta.Ordinal,
			Anchor:          meta.Anchor,
			Title:           meta.Title,
			PageBreakBefore: meta.Group != group,
		}
		group = meta.Group

		body, err := a.safeBuild(kind, in)
		if err != nil {
			a.recordFailure(ctx, kind, err)
			body = document.SectionError(meta.Title)
			section.Failed = true
		}
		section.Body = body
		doc.Sections = append(doc.Sections, section)
	}

	span.SetAttributes(attribute.Int("report.failed_sections", doc.FailedSections()))
	return doc
}

func (a *ReportAssembler) safeBuild(kind sections.Kind, in *sections.Input) (body template.HTML, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("section panicked: %v", r)
		}
	}()
	return a.build(kind, in)
}

func (a *ReportAssembler) recordFailure(ctx context.Context, kind sections.Kind, err error) {
	title := kind.Meta().Title
	observability.SectionFailuresTotal.WithLabelValues(title).Inc()
	observability.LoggerFromContext(ctx).Error().
		Err(err).
		Str("section", title).
		Msg("section could not be generated")
}
