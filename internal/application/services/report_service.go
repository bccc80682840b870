package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/document/sections"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/domain/repositories"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/inspectionreport/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Report outcomes recorded in ReportsTotal
const (
	outcomeOK          = "ok"
	outcomeDegraded    = "degraded"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

// DefaultMaxWindowDays caps the report window when no limit is configured
const DefaultMaxWindowDays = 366

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// Pinger checks the database is reachable before any query is issued
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReportRequest is one report generation request. Dates are YYYY-MM-DD and
// both ends of the window are inclusive.
type ReportRequest struct {
	SiteID string `validate:"required"`
	Start  string `validate:"required,datetime=2006-01-02"`
	End    string `validate:"required,datetime=2006-01-02"`
	Actor  entities.Actor
}

// Report is a generated report and its rendered page
type Report struct {
	ID          string
	Site        *entities.Site
	Window      entities.ReportWindow
	GeneratedAt time.Time
	Document    *document.Document
	HTML        []byte
	Failures    []entities.QueryFailure
}

// ReportServiceConfig tunes report generation
type ReportServiceConfig struct {
	QueryTimeout      time.Duration
	ExpiryWarningDays int
	RowLimit          int
	MaxWindowDays     int
	Location          *time.Location
}

// ReportService runs the whole pipeline: resolve, gather, reconcile, resolve
// training, assemble, render
type ReportService struct {
	db         Pinger
	resolver   *ContextResolver
	gatherer   *DataGatherer
	reconciler *TemperatureReconciler
	training   *TrainingResolver
	assembler  *ReportAssembler
	cfg        ReportServiceConfig
	metrics    *observability.Metrics
	now        func() time.Time
	newID      func() string
}

// NewReportService creates a new report service
func NewReportService(
	db Pinger,
	sites repositories.SiteRepository,
	records repositories.ComplianceRecordRepository,
	orgRecords repositories.OrganizationRecordRepository,
	cfg ReportServiceConfig,
	metrics *observability.Metrics,
) *ReportService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxWindowDays == 0 {
		cfg.MaxWindowDays = DefaultMaxWindowDays
	}
	return &ReportService{
		db:         db,
		resolver:   NewContextResolver(sites),
		gatherer:   NewDataGatherer(sites, records, orgRecords, cfg.QueryTimeout, metrics),
		reconciler: NewTemperatureReconciler(),
		training:   NewTrainingResolver(),
		assembler:  NewReportAssembler(nil),
		cfg:        cfg,
		metrics:    metrics,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// WithSectionBuilder replaces the section builder used by the assembler
func (s *ReportService) WithSectionBuilder(build SectionBuildFunc) *ReportService {
	s.assembler = NewReportAssembler(build)
	return s
}

// WithClock replaces the generation clock
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Generate produces one report. Only invalid parameters and an unreachable
// database are errors; every other failure degrades the document.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*Report, error) {
	start := time.Now()
	req.SiteID = strings.TrimSpace(req.SiteID)
	reportID := s.newID()
	ctx = observability.WithReportFields(ctx, reportID, req.SiteID)
	ctx, span := observability.StartSpan(ctx, "report.generate",
		attribute.String("report.id", reportID),
		attribute.String("site.id", req.SiteID),
	)
	defer span.End()
	logger := observability.LoggerFromContext(ctx)

	window, err := s.validate(req)
	if err != nil {
		observability.ReportsTotal.WithLabelValues(outcomeRejected).Inc()
		observability.RecordError(span, err)
		logger.Info().Err(err).Msg("report request rejected")
		return nil, err
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			observability.ReportsTotal.WithLabelValues(outcomeUnavailable).Inc()
			observability.RecordError(span, err)
			logger.Error().Err(err).Msg("database unreachable, report not generated")
			return nil, apperrors.NewUnavailableError("report data source is unavailable", err)
		}
	}

	site := s.resolver.Resolve(ctx, req.SiteID)
	data := s.gatherer.Gather(ctx, site, window)
	readings := s.reconciler.Reconcile(ctx, data.TemperatureLogs, data.TaskCompletions, data.Assets)
	matrix := s.training.Resolve(ctx, data.StaffRoster, data.TrainingRecords)

	actor := req.Actor
	if actor.SiteID == "" {
		actor.SiteID = site.ID
	}
	generatedAt := s.now()
	in := &sections.Input{
		ReportID:          reportID,
		GeneratedAt:       generatedAt,
		Actor:             actor,
		Site:              site,
		Window:            window,
		Data:              data,
		Temperatures:      readings,
		Training:          matrix,
		Location:          s.cfg.Location,
		ExpiryWarningDays: s.cfg.ExpiryWarningDays,
		RowLimit:          s.cfg.RowLimit,
	}

	doc := s.assembler.Assemble(ctx, in)
	html, err := doc.Render()
	if err != nil {
		observability.ReportsTotal.WithLabelValues(outcomeError).Inc()
		observability.RecordError(span, err)
		return nil, apperrors.NewInternalError("failed to render report", err)
	}

	failed := doc.FailedSections()
	outcome := outcomeOK
	if failed > 0 || len(data.Failures) > 0 {
		outcome = outcomeDegraded
	}
	elapsed := time.Since(start)
	observability.ReportsTotal.WithLabelValues(outcome).Inc()
	observability.GenerationDuration.Observe(elapsed.Seconds())
	observability.RecordReportMetric(ctx, s.metrics, failed, elapsed)
	observability.SetSpanAttributes(span,
		attribute.String("report.outcome", outcome),
		attribute.Int("report.query_failures", len(data.Failures)),
		attribute.Int("report.failed_sections", failed),
	)

	logger.Info().
		Str("outcome", outcome).
		Int("query_failures", len(data.Failures)).
		Int("failed_sections", failed).
		Int("temperature_readings", len(readings)).
		Dur("duration", elapsed).
		Msg("report generated")

	return &Report{
		ID:          reportID,
		Site:        site,
		Window:      window,
		GeneratedAt: generatedAt,
		Document:    doc,
		HTML:        html,
		Failures:    data.Failures,
	}, nil
}

// validate rejects a request before any query is issued
func (s *ReportService) validate(req ReportRequest) (entities.ReportWindow, error) {
	if err := requestValidator.Struct(req); err != nil {
		return entities.ReportWindow{}, apperrors.NewValidationError(describeValidation(err))
	}

	window, err := entities.ParseReportWindow(req.Start, req.End, s.cfg.Location)
	if err != nil {
		return entities.ReportWindow{}, apperrors.NewValidationError(err.Error())
	}
	if err := window.Validate(s.cfg.MaxWindowDays); err != nil {
		return entities.ReportWindow{}, apperrors.NewValidationError(err.Error())
	}
	return window, nil
}

var requestFields = map[string]string{"SiteID": "site id", "Start": "start", "End": "end"}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := requestFields[fe.Field()]
		if name == "" {
			name = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			fields = append(fields, name+" is required")
		case "datetime":
			fields = append(fields, name+" must be a date in YYYY-MM-DD format")
		default:
			fields = append(fields, name+" is invalid")
		}
	}
	return strings.Join(fields, "; ")
}
