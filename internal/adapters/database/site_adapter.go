package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/inspectionreport/pkg/errors"
)

// SiteAdapter implements SiteRepository against Postgres
type SiteAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSiteAdapter creates a new site adapter
func NewSiteAdapter(client *postgres.Client) repositories.SiteRepository {
	return &SiteAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetSite retrieves a site by ID
func (a *SiteAdapter) GetSite(ctx context.Context, siteID string) (*entities.Site, error) {
	ds := a.db.From("sites").
		Select(
			"id",
			"name",
			text("address_line1"),
			text("address_line2"),
			text("city"),
			text("postcode"),
			"organization_id",
		).
		Where(goqu.I("id").Eq(siteID))

	sites, err := selectAll[entities.Site](ctx, a.client, "site", ds)
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("site with id %s not found", siteID))
	}
	return &sites[0], nil
}

// GetOrganization retrieves an organization profile by ID
func (a *SiteAdapter) GetOrganization(ctx context.Context, organizationID string) (*entities.Organization, error) {
	ds := a.db.From("organizations").
		Select("id", "name", text("email"), text("phone")).
		Where(goqu.I("id").Eq(organizationID))

	orgs, err := selectAll[entities.Organization](ctx, a.client, entities.QueryOrganization, ds)
	if err != nil {
		return nil, err
	}
	if len(orgs) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("organization with id %s not found", organizationID))
	}
	return &orgs[0], nil
}

// ListOrganizationStaff retrieves every staff member of the organization
func (a *SiteAdapter) ListOrganizationStaff(ctx context.Context, organizationID string) ([]entities.StaffMember, error) {
	ds := a.db.From("organization_staff").
		Select("id", "full_name", text("role"), text("email"), "started_at", flag("active")).
		Where(goqu.I("organization_id").Eq(organizationID)).
		Order(goqu.I("full_name").Asc())

	return selectAll[entities.StaffMember](ctx, a.client, "organization_staff", ds)
}

// ListSiteAccess retrieves site-access grants for the organization's staff
func (a *SiteAdapter) ListSiteAccess(ctx context.Context, organizationID string) ([]entities.SiteAccess, error) {
	ds := a.db.From(goqu.T("site_access").As("sa")).
		Join(goqu.T("organization_staff").As("os"), goqu.On(goqu.I("os.id").Eq(goqu.I("sa.staff_id")))).
		Select(goqu.I("sa.staff_id"), goqu.I("sa.site_id")).
		Where(goqu.I("os.organization_id").Eq(organizationID))

	return selectAll[entities.SiteAccess](ctx, a.client, "site_access", ds)
}
