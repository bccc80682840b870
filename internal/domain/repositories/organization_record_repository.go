package repositories

import (
	"context"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// OrganizationRecordRepository serves the organization-scoped named queries
type OrganizationRecordRepository interface {
	ListDocuments(ctx context.Context, organizationID string) ([]entities.ComplianceDocument, error)
	ListChemicalSheets(ctx context.Context, organizationID string) ([]entities.ChemicalSheet, error)
	ListRiskAssessments(ctx context.Context, organizationID string) ([]entities.RiskAssessment, error)
}
