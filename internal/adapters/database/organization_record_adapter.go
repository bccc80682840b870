package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
)

// OrganizationRecordAdapter implements the organization-scoped named queries
type OrganizationRecordAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOrganizationRecordAdapter creates a new organization record adapter
func NewOrganizationRecordAdapter(client *postgres.Client) repositories.OrganizationRecordRepository {
	return &OrganizationRecordAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListDocuments retrieves licences, certificates and policies
func (a *OrganizationRecordAdapter) ListDocuments(ctx context.Context, organizationID string) ([]entities.ComplianceDocument, error) {
	ds := a.db.From("compliance_documents").
		Select("id", "title", text("category"), text("reference"), "issued_at", "expires_at", text("url")).
		Where(goqu.I("organization_id").Eq(organizationID)).
		Order(goqu.I("expires_at").Asc().NullsLast(), goqu.I("title").Asc())

	return selectAll[entities.ComplianceDocument](ctx, a.client, entities.QueryDocuments, ds)
}

// ListChemicalSheets retrieves COSHH safety data sheets
func (a *OrganizationRecordAdapter) ListChemicalSheets(ctx context.Context, organizationID string) ([]entities.ChemicalSheet, error) {
	ds := a.db.From("chemical_sheets").
		Select("id", "product_name", text("supplier"), text("hazard_class"), text("sheet_url"), "reviewed_at", "review_due").
		Where(goqu.I("organization_id").Eq(organizationID)).
		Order(goqu.I("product_name").Asc())

	return selectAll[entities.ChemicalSheet](ctx, a.client, entities.QueryChemicalSheets, ds)
}

// ListRiskAssessments retrieves written risk assessments
func (a *OrganizationRecordAdapter) ListRiskAssessments(ctx context.Context, organizationID string) ([]entities.RiskAssessment, error) {
	ds := a.db.From("risk_assessments").
		Select("id", "title", text("area"), text("assessed_by"), "assessed_at", "review_due", text("risk_level")).
		Where(goqu.I("organization_id").Eq(organizationID)).
		Order(goqu.I("review_due").Asc().NullsLast())

	return selectAll[entities.RiskAssessment](ctx, a.client, entities.QueryRiskAssessments, ds)
}
