package repositories

import (
	"context"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// SiteRepository resolves site identity and the organization around it
type SiteRepository interface {
	// GetSite retrieves a site by ID. A missing site returns a not-found error.
	GetSite(ctx context.Context, siteID string) (*entities.Site, error)

	// GetOrganization retrieves an organization profile by ID
	GetOrganization(ctx context.Context, organizationID string) (*entities.Organization, error)

	// ListOrganizationStaff retrieves the full roster of an organization
	ListOrganizationStaff(ctx context.Context, organizationID string) ([]entities.StaffMember, error)

	// ListSiteAccess retrieves the site-access grants of an organization's staff
	ListSiteAccess(ctx context.Context, organizationID string) ([]entities.SiteAccess, error)
}
