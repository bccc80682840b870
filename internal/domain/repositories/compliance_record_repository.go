package repositories

import (
	"context"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// ComplianceRecordRepository serves the site-scoped named queries.
// Windowed queries return rows whose timestamp falls in [window.Start, window.EndExclusive()).
type ComplianceRecordRepository interface {
	ListTaskCompletions(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TaskCompletion, error)
	ListTemperatureLogs(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TemperatureLog, error)
	ListCleaningRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.CleaningRecord, error)
	ListPestControlRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.PestControlRecord, error)
	ListIncidents(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Incident, error)
	ListChecklistRuns(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ChecklistRun, error)
	ListComplianceScores(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ComplianceScore, error)
	ListFireSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error)
	ListHealthSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error)
	ListAttachments(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Attachment, error)

	// Current-state registers, not windowed
	ListTrainingRecords(ctx context.Context, siteID string) ([]entities.TrainingRecord, error)
	ListAssets(ctx context.Context, siteID string) ([]entities.Asset, error)
	ListAppliances(ctx context.Context, siteID string) ([]entities.Appliance, error)
	ListSupplierRecords(ctx context.Context, siteID string) ([]entities.SupplierRecord, error)
}
