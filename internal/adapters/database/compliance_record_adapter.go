package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
)

// ComplianceRecordAdapter implements the site-scoped named queries
type ComplianceRecordAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewComplianceRecordAdapter creates a new compliance record adapter
func NewComplianceRecordAdapter(client *postgres.Client) repositories.ComplianceRecordRepository {
	return &ComplianceRecordAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListTaskCompletions retrieves completed tasks with their form payloads
func (a *ComplianceRecordAdapter) ListTaskCompletions(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TaskCompletion, error) {
	ds := a.db.From("task_completions").
		Select(
			"id",
			text("task_name"),
			text("category"),
			"completed_at",
			text("completed_by"),
			goqu.L(`COALESCE("payload", '{}'::jsonb)`).As("payload"),
		).
		Order(goqu.I("completed_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "completed_at", window)

	return selectAll[entities.TaskCompletion](ctx, a.client, entities.QueryTaskCompletions, ds)
}

// ListTemperatureLogs retrieves canonical log readings named after their asset
func (a *ComplianceRecordAdapter) ListTemperatureLogs(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TemperatureLog, error) {
	ds := a.db.From(goqu.T("temperature_logs").As("tl")).
		LeftJoin(goqu.T("assets").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("tl.asset_id")))).
		Select(
			goqu.I("tl.id"),
			text("tl.asset_id"),
			goqu.L(`COALESCE("a"."name", "tl"."asset_name", '')`).As("asset_name"),
			goqu.I("tl.reading"),
			textOr("tl.unit", "°C"),
			text("tl.status"),
			goqu.I("tl.recorded_at"),
			text("tl.recorded_by"),
		).
		Order(goqu.I("tl.recorded_at").Desc())
	ds = inWindow(inSite(ds, "tl.site_id", siteID), "tl.recorded_at", window)

	return selectAll[entities.TemperatureLog](ctx, a.client, entities.QueryTemperatureLogs, ds)
}

// ListCleaningRecords retrieves cleaning jobs due in the window
func (a *ComplianceRecordAdapter) ListCleaningRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.CleaningRecord, error) {
	ds := a.db.From("cleaning_records").
		Select("id", text("area"), text("task"), text("frequency"), "due_at", "completed_at", text("completed_by"), text("status")).
		Order(goqu.I("due_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "due_at", window)

	return selectAll[entities.CleaningRecord](ctx, a.client, entities.QueryCleaningRecords, ds)
}

// ListPestControlRecords retrieves pest control visits in the window
func (a *ComplianceRecordAdapter) ListPestControlRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.PestControlRecord, error) {
	ds := a.db.From("pest_control_records").
		Select(
			"id",
			"visit_date",
			text("contractor"),
			text("visit_type"),
			text("findings"),
			flag("activity_found"),
			text("actions_required"),
			"follow_up_date",
			text("report_url"),
		).
		Order(goqu.I("visit_date").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "visit_date", window)

	return selectAll[entities.PestControlRecord](ctx, a.client, entities.QueryPestControl, ds)
}

// ListIncidents retrieves incidents that occurred in the window
func (a *ComplianceRecordAdapter) ListIncidents(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Incident, error) {
	ds := a.db.From("incidents").
		Select(
			"id",
			"occurred_at",
			text("category"),
			text("severity"),
			text("description"),
			text("reported_by"),
			text("status"),
			flag("reportable"),
			flag("authority_notified"),
			text("actions_taken"),
		).
		Order(goqu.I("occurred_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "occurred_at", window)

	return selectAll[entities.Incident](ctx, a.client, entities.QueryIncidents, ds)
}

// ListChecklistRuns retrieves opening and closing checklist runs
func (a *ComplianceRecordAdapter) ListChecklistRuns(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ChecklistRun, error) {
	ds := a.db.From("checklist_runs").
		Select("id", "checklist_type", "run_date", "completed_at", text("completed_by"), count("items_total"), count("items_completed")).
		Where(goqu.I("checklist_type").In(entities.ChecklistOpening, entities.ChecklistClosing)).
		Order(goqu.I("run_date").Asc(), goqu.I("checklist_type").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "run_date", window)

	return selectAll[entities.ChecklistRun](ctx, a.client, entities.QueryChecklistRuns, ds)
}

// ListComplianceScores retrieves audit scores assessed in the window
func (a *ComplianceRecordAdapter) ListComplianceScores(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ComplianceScore, error) {
	ds := a.db.From("compliance_scores").
		Select("id", text("source"), "score", "rating", "assessed_at", text("notes")).
		Order(goqu.I("assessed_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "assessed_at", window)

	return selectAll[entities.ComplianceScore](ctx, a.client, entities.QueryComplianceScores, ds)
}

// ListFireSafetyChecks retrieves fire safety checks in the window
func (a *ComplianceRecordAdapter) ListFireSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error) {
	return a.listSafetyChecks(ctx, "fire_safety_checks", entities.QueryFireSafetyChecks, siteID, window)
}

// ListHealthSafetyChecks retrieves health & safety checks in the window
func (a *ComplianceRecordAdapter) ListHealthSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error) {
	return a.listSafetyChecks(ctx, "health_safety_checks", entities.QueryHealthSafetyChecks, siteID, window)
}

func (a *ComplianceRecordAdapter) listSafetyChecks(ctx context.Context, table, name, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error) {
	ds := a.db.From(table).
		Select("id", text("check_type"), text("area"), "checked_at", text("checked_by"), text("result"), text("notes")).
		Order(goqu.I("checked_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "checked_at", window)

	return selectAll[entities.SafetyCheck](ctx, a.client, name, ds)
}

// ListAttachments retrieves evidence attachments taken in the window
func (a *ComplianceRecordAdapter) ListAttachments(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Attachment, error) {
	ds := a.db.From("attachments").
		Select("id", text("caption"), "url", text("category"), "taken_at", text("source_kind")).
		Where(goqu.I("url").IsNotNull(), goqu.I("url").Neq("")).
		Order(goqu.I("taken_at").Desc())
	ds = inWindow(inSite(ds, "site_id", siteID), "taken_at", window)

	return selectAll[entities.Attachment](ctx, a.client, entities.QueryAttachments, ds)
}

// ListTrainingRecords retrieves every course record of the site organization's staff,
// plus staff granted access to the site from elsewhere
func (a *ComplianceRecordAdapter) ListTrainingRecords(ctx context.Context, siteID string) ([]entities.TrainingRecord, error) {
	ds := a.db.From(goqu.T("training_records").As("tr")).
		Join(goqu.T("organization_staff").As("os"), goqu.On(goqu.I("os.id").Eq(goqu.I("tr.employee_id")))).
		Select(
			goqu.I("tr.id"),
			goqu.I("tr.employee_id"),
			goqu.I("os.full_name").As("employee_name"),
			goqu.I("tr.course_code"),
			text("tr.course_name"),
			text("tr.status"),
			goqu.I("tr.completed_at"),
			goqu.I("tr.expires_at"),
		).
		Where(goqu.Or(
			goqu.I("os.organization_id").In(
				a.db.From("sites").Select("organization_id").Where(goqu.I("id").Eq(siteID)),
			),
			goqu.I("tr.employee_id").In(
				a.db.From("site_access").Select("staff_id").Where(goqu.I("site_id").Eq(siteID)),
			),
		)).
		Order(goqu.I("os.full_name").Asc(), goqu.I("tr.course_code").Asc())

	return selectAll[entities.TrainingRecord](ctx, a.client, entities.QueryTrainingRecords, ds)
}

// ListAssets retrieves the equipment register
func (a *ComplianceRecordAdapter) ListAssets(ctx context.Context, siteID string) ([]entities.Asset, error) {
	ds := a.db.From("assets").
		Select("id", "name", text("category"), text("location"), "min_temp", "max_temp", "last_serviced_at", "next_service_due", text("status")).
		Order(goqu.I("name").Asc())
	ds = inSite(ds, "site_id", siteID)

	return selectAll[entities.Asset](ctx, a.client, entities.QueryAssets, ds)
}

// ListAppliances retrieves portable appliances and their test schedule
func (a *ComplianceRecordAdapter) ListAppliances(ctx context.Context, siteID string) ([]entities.Appliance, error) {
	ds := a.db.From("appliances").
		Select("id", "name", text("location"), "last_tested_at", "next_test_due", text("result")).
		Order(goqu.I("next_test_due").Asc().NullsLast())
	ds = inSite(ds, "site_id", siteID)

	return selectAll[entities.Appliance](ctx, a.client, entities.QueryAppliances, ds)
}

// ListSupplierRecords retrieves the approved supplier list
func (a *ComplianceRecordAdapter) ListSupplierRecords(ctx context.Context, siteID string) ([]entities.SupplierRecord, error) {
	ds := a.db.From("supplier_records").
		Select("id", "supplier_name", text("category"), text("approval_status"), "last_delivery_at", "certificate_expiry").
		Order(goqu.I("supplier_name").Asc())
	ds = inSite(ds, "site_id", siteID)

	return selectAll[entities.SupplierRecord](ctx, a.client, entities.QuerySupplierRecords, ds)
}
