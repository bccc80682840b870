package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
)

// Headers carrying the authenticated actor, set by the gateway in front of this service.
const (
	HeaderActorUser    = "X-Actor-User"
	HeaderActorCompany = "X-Actor-Company"
	HeaderActorSite    = "X-Actor-Site"
	HeaderActorRole    = "X-Actor-Role"
)

// ReportGenerator produces one inspection report
type ReportGenerator interface {
	Generate(ctx context.Context, req services.ReportRequest) (*services.Report, error)
}

// ReportHandler serves inspection reports as standalone HTML pages
type ReportHandler struct {
	generator ReportGenerator
}

// NewReportHandler creates a new report handler
func NewReportHandler(generator ReportGenerator) *ReportHandler {
	return &ReportHandler{generator: generator}
}

// GetInspectionReport handles GET /api/sites/{siteId}/inspection-report?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportHandler) GetInspectionReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := services.ReportRequest{
		SiteID: r.PathValue("siteId"),
		Start:  query.Get("start"),
		End:    query.Get("end"),
		Actor:  actorFromRequest(r),
	}

	report, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().
			Err(err).
			Str("site_id", req.SiteID).
			Msg("inspection report request failed")
		respondWithAppError(w, err)
		return
	}

	filename := fmt.Sprintf("inspection-report-%s-%s.html", report.Site.ID, report.Window.Start.Format(entities.DateLayout))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("X-Report-Id", report.ID)
	w.Header().Set("X-Report-Failed-Sections", strconv.Itoa(report.Document.FailedSections()))
	w.WriteHeader(http.StatusOK)
	w.Write(report.HTML)
}

func actorFromRequest(r *http.Request) entities.Actor {
	return entities.Actor{
		UserID:    r.Header.Get(HeaderActorUser),
		CompanyID: r.Header.Get(HeaderActorCompany),
		SiteID:    r.Header.Get(HeaderActorSite),
		Role:      r.Header.Get(HeaderActorRole),
	}
}
