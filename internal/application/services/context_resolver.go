package services

import (
	"context"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// ContextResolver resolves the site a report is scoped to
type ContextResolver struct {
	sites repositories.SiteRepository
}

// NewContextResolver creates a new context resolver
func NewContextResolver(sites repositories.SiteRepository) *ContextResolver {
	return &ContextResolver{sites: sites}
}

// Resolve looks up the site. A failed or empty lookup yields the placeholder
// identity with no organization; it never returns an error.
func (r *ContextResolver) Resolve(ctx context.Context, siteID string) *entities.Site {
	ctx, span := observability.StartSpan(ctx, "report.resolve_site", attribute.String("site.id", siteID))
	defer span.End()

	site, err := r.sites.GetSite(ctx, siteID)
	if err != nil || site == nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("site_id", siteID).
			Msg("site lookup failed, using placeholder identity")
		return entities.PlaceholderSite(siteID)
	}

	if site.ID == "" {
		site.ID = siteID
	}
	observability.SetSpanAttributes(span, attribute.Bool("site.has_organization", site.HasOrganization()))
	return site
}
