package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Fallback reasons recorded for a failed query
const (
	reasonError   = "error"
	reasonTimeout = "timeout"
	reasonPanic   = "panic"
)

// DefaultQueryTimeout bounds the whole fan-out when no timeout is configured
const DefaultQueryTimeout = 20 * time.Second

// QueryResult is the settled outcome of one named query: rows, or a failure
// that falls back to an empty collection. Skipped queries were never issued.
type QueryResult[T any] struct {
	Name    string
	Rows    []T
	Err     error
	Reason  string
	Skipped bool
}

// DataGatherer issues every named query of a report concurrently and joins
// once all of them have settled
type DataGatherer struct {
	sites      repositories.SiteRepository
	records    repositories.ComplianceRecordRepository
	orgRecords repositories.OrganizationRecordRepository
	timeout    time.Duration
	metrics    *observability.Metrics
}

// NewDataGatherer creates a new data gatherer
func NewDataGatherer(
	sites repositories.SiteRepository,
	records repositories.ComplianceRecordRepository,
	orgRecords repositories.OrganizationRecordRepository,
	timeout time.Duration,
	metrics *observability.Metrics,
) *DataGatherer {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &DataGatherer{
		sites:      sites,
		records:    records,
		orgRecords: orgRecords,
		timeout:    timeout,
		metrics:    metrics,
	}
}

// Gather runs the batch. It never fails: every failed, timed-out or skipped
// query yields an empty collection and failures are listed in ReportData.Failures.
func (g *DataGatherer) Gather(ctx context.Context, site *entities.Site, window entities.ReportWindow) *entities.ReportData {
	ctx, span := observability.StartSpan(ctx, "report.gather",
		attribute.String("site.id", site.ID),
		attribute.Bool("site.has_organization", site.HasOrganization()),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	siteID := site.ID
	var orgID string
	if site.HasOrganization() {
		orgID = *site.OrganizationID
	}

	var (
		taskCompletions    QueryResult[entities.TaskCompletion]
		temperatureLogs    QueryResult[entities.TemperatureLog]
		cleaningRecords    QueryResult[entities.CleaningRecord]
		pestControl        QueryResult[entities.PestControlRecord]
		trainingRecords    QueryResult[entities.TrainingRecord]
		incidents          QueryResult[entities.Incident]
		checklistRuns      QueryResult[entities.ChecklistRun]
		assets             QueryResult[entities.Asset]
		appliances         QueryResult[entities.Appliance]
		complianceScores   QueryResult[entities.ComplianceScore]
		fireSafetyChecks   QueryResult[entities.SafetyCheck]
		healthSafetyChecks QueryResult[entities.SafetyCheck]
		supplierRecords    QueryResult[entities.SupplierRecord]
		attachments        QueryResult[entities.Attachment]
		organization       QueryResult[entities.Organization]
		documents          QueryResult[entities.ComplianceDocument]
		chemicalSheets     QueryResult[entities.ChemicalSheet]
		riskAssessments    QueryResult[entities.RiskAssessment]
		staffRoster        QueryResult[entities.StaffMember]
	)

	// Each goroutine owns one result; Wait is the only synchronisation needed.
	var eg errgroup.Group

	eg.Go(func() error {
		taskCompletions = runQuery(ctx, g.metrics, entities.QueryTaskCompletions, func(ctx context.Context) ([]entities.TaskCompletion, error) {
			return g.records.ListTaskCompletions(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		temperatureLogs = runQuery(ctx, g.metrics, entities.QueryTemperatureLogs, func(ctx context.Context) ([]entities.TemperatureLog, error) {
			return g.records.ListTemperatureLogs(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		cleaningRecords = runQuery(ctx, g.metrics, entities.QueryCleaningRecords, func(ctx context.Context) ([]entities.CleaningRecord, error) {
			return g.records.ListCleaningRecords(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		pestControl = runQuery(ctx, g.metrics, entities.QueryPestControl, func(ctx context.Context) ([]entities.PestControlRecord, error) {
			return g.records.ListPestControlRecords(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		trainingRecords = runQuery(ctx, g.metrics, entities.QueryTrainingRecords, func(ctx context.Context) ([]entities.TrainingRecord, error) {
			return g.records.ListTrainingRecords(ctx, siteID)
		})
		return nil
	})
	eg.Go(func() error {
		incidents = runQuery(ctx, g.metrics, entities.QueryIncidents, func(ctx context.Context) ([]entities.Incident, error) {
			return g.records.ListIncidents(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		checklistRuns = runQuery(ctx, g.metrics, entities.QueryChecklistRuns, func(ctx context.Context) ([]entities.ChecklistRun, error) {
			return g.records.ListChecklistRuns(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		assets = runQuery(ctx, g.metrics, entities.QueryAssets, func(ctx context.Context) ([]entities.Asset, error) {
			return g.records.ListAssets(ctx, siteID)
		})
		return nil
	})
	eg.Go(func() error {
		appliances = runQuery(ctx, g.metrics, entities.QueryAppliances, func(ctx context.Context) ([]entities.Appliance, error) {
			return g.records.ListAppliances(ctx, siteID)
		})
		return nil
	})
	eg.Go(func() error {
		complianceScores = runQuery(ctx, g.metrics, entities.QueryComplianceScores, func(ctx context.Context) ([]entities.ComplianceScore, error) {
			return g.records.ListComplianceScores(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		fireSafetyChecks = runQuery(ctx, g.metrics, entities.QueryFireSafetyChecks, func(ctx context.Context) ([]entities.SafetyCheck, error) {
			return g.records.ListFireSafetyChecks(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		healthSafetyChecks = runQuery(ctx, g.metrics, entities.QueryHealthSafetyChecks, func(ctx context.Context) ([]entities.SafetyCheck, error) {
			return g.records.ListHealthSafetyChecks(ctx, siteID, window)
		})
		return nil
	})
	eg.Go(func() error {
		supplierRecords = runQuery(ctx, g.metrics, entities.QuerySupplierRecords, func(ctx context.Context) ([]entities.SupplierRecord, error) {
			return g.records.ListSupplierRecords(ctx, siteID)
		})
		return nil
	})
	eg.Go(func() error {
		attachments = runQuery(ctx, g.metrics, entities.QueryAttachments, func(ctx context.Context) ([]entities.Attachment, error) {
			return g.records.ListAttachments(ctx, siteID, window)
		})
		return nil
	})

	if orgID == "" {
		organization = skipped[entities.Organization](entities.QueryOrganization)
		documents = skipped[entities.ComplianceDocument](entities.QueryDocuments)
		chemicalSheets = skipped[entities.ChemicalSheet](entities.QueryChemicalSheets)
		riskAssessments = skipped[entities.RiskAssessment](entities.QueryRiskAssessments)
		staffRoster = skipped[entities.StaffMember](entities.QueryStaffRoster)
	} else {
		eg.Go(func() error {
			organization = runQuery(ctx, g.metrics, entities.QueryOrganization, func(ctx context.Context) ([]entities.Organization, error) {
				org, err := g.sites.GetOrganization(ctx, orgID)
				if err != nil || org == nil {
					return nil, err
				}
				return []entities.Organization{*org}, nil
			})
			return nil
		})
		eg.Go(func() error {
			documents = runQuery(ctx, g.metrics, entities.QueryDocuments, func(ctx context.Context) ([]entities.ComplianceDocument, error) {
				return g.orgRecords.ListDocuments(ctx, orgID)
			})
			return nil
		})
		eg.Go(func() error {
			chemicalSheets = runQuery(ctx, g.metrics, entities.QueryChemicalSheets, func(ctx context.Context) ([]entities.ChemicalSheet, error) {
				return g.orgRecords.ListChemicalSheets(ctx, orgID)
			})
			return nil
		})
		eg.Go(func() error {
			riskAssessments = runQuery(ctx, g.metrics, entities.QueryRiskAssessments, func(ctx context.Context) ([]entities.RiskAssessment, error) {
				return g.orgRecords.ListRiskAssessments(ctx, orgID)
			})
			return nil
		})
		eg.Go(func() error {
			staffRoster = runQuery(ctx, g.metrics, entities.QueryStaffRoster, func(ctx context.Context) ([]entities.StaffMember, error) {
				return g.siteRoster(ctx, orgID, siteID)
			})
			return nil
		})
	}

	// Every goroutine returns nil, so Wait is a pure join.
	_ = eg.Wait()

	data := entities.NewReportData()
	data.TaskCompletions = settle(ctx, data, taskCompletions)
	data.TemperatureLogs = settle(ctx, data, temperatureLogs)
	data.CleaningRecords = settle(ctx, data, cleaningRecords)
	data.PestControl = settle(ctx, data, pestControl)
	data.TrainingRecords = settle(ctx, data, trainingRecords)
	data.Incidents = settle(ctx, data, incidents)
	data.ChecklistRuns = settle(ctx, data, checklistRuns)
	data.Assets = settle(ctx, data, assets)
	data.Appliances = settle(ctx, data, appliances)
	data.ComplianceScores = settle(ctx, data, complianceScores)
	data.FireSafetyChecks = settle(ctx, data, fireSafetyChecks)
	data.HealthSafetyChecks = settle(ctx, data, healthSafetyChecks)
	data.SupplierRecords = settle(ctx, data, supplierRecords)
	data.Attachments = settle(ctx, data, attachments)
	data.Documents = settle(ctx, data, documents)
	data.ChemicalSheets = settle(ctx, data, chemicalSheets)
	data.RiskAssessments = settle(ctx, data, riskAssessments)
	data.StaffRoster = settle(ctx, data, staffRoster)
	if orgs := settle(ctx, data, organization); len(orgs) > 0 {
		data.Organization = &orgs[0]
	}

	span.SetAttributes(attribute.Int("report.query_failures", len(data.Failures)))
	return data
}

// siteRoster fetches the organization roster and narrows it to staff with access
// to the site. Organizations without any site-access rows keep the full roster.
func (g *DataGatherer) siteRoster(ctx context.Context, orgID, siteID string) ([]entities.StaffMember, error) {
	staff, err := g.sites.ListOrganizationStaff(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("organization staff: %w", err)
	}
	access, err := g.sites.ListSiteAccess(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("site access: %w", err)
	}
	if len(access) == 0 {
		return staff, nil
	}

	allowed := make(map[string]struct{}, len(access))
	for _, a := range access {
		if a.SiteID == siteID {
			allowed[a.StaffID] = struct{}{}
		}
	}

	roster := make([]entities.StaffMember, 0, len(allowed))
	for _, member := range staff {
		if _, ok := allowed[member.ID]; ok {
			roster = append(roster, member)
		}
	}
	return roster, nil
}

// runQuery runs one named query under its own span. The query is abandoned
// when ctx ends and a panic inside it is treated as a failure.
func runQuery[T any](ctx context.Context, metrics *observability.Metrics, name string, fn func(ctx context.Context) ([]T, error)) QueryResult[T] {
	ctx, span := observability.StartSpan(ctx, "report.query."+name, attribute.String("report.query", name))
	defer span.End()

	start := time.Now()
	type outcome struct {
		rows   []T
		err    error
		reason string
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("query panicked: %v", r), reason: reasonPanic}
			}
		}()
		rows, err := fn(ctx)
		done <- outcome{rows: rows, err: err, reason: reasonError}
	}()

	var res QueryResult[T]
	select {
	case out := <-done:
		res = QueryResult[T]{Name: name, Rows: out.rows, Err: out.err}
		if out.err != nil {
			res.Reason = out.reason
			if errors.Is(out.err, context.DeadlineExceeded) {
				res.Reason = reasonTimeout
			}
		}
	case <-ctx.Done():
		res = QueryResult[T]{Name: name, Err: fmt.Errorf("query abandoned: %w", ctx.Err()), Reason: reasonTimeout}
	}

	outcomeLabel := "ok"
	if res.Err != nil {
		outcomeLabel = res.Reason
		observability.RecordError(span, res.Err)
	}
	span.SetAttributes(attribute.Int("report.query.rows", len(res.Rows)))
	observability.RecordQueryMetric(ctx, metrics, name, outcomeLabel, time.Since(start))
	return res
}

func skipped[T any](name string) QueryResult[T] {
	return QueryResult[T]{Name: name, Skipped: true}
}

// settle resolves a result to a non-nil collection, logging and recording
// any failure on data
func settle[T any](ctx context.Context, data *entities.ReportData, res QueryResult[T]) []T {
	if res.Skipped {
		observability.LoggerFromContext(ctx).Debug().
			Str("query", res.Name).
			Msg("query skipped, site has no organization")
		return []T{}
	}

	if res.Err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(res.Err).
			Str("query", res.Name).
			Str("reason", res.Reason).
			Msg("report query failed, using empty collection")
		observability.QueryFallbacksTotal.WithLabelValues(res.Name, res.Reason).Inc()
		data.Failures = append(data.Failures, entities.QueryFailure{
			Query:  res.Name,
			Reason: res.Reason,
			Err:    res.Err,
		})
		return []T{}
	}

	if res.Rows == nil {
		return []T{}
	}
	return res.Rows
}
