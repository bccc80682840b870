package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/inspectionreport/internal/adapters/database"
	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"github.com/zatekoja/inspectionreport/pkg/config"
)

func main() {
	var siteID, start, end, out string
	var actor entities.Actor

	flag.StringVar(&siteID, "site", "", "Site ID to report on (required)")
	flag.StringVar(&start, "start", "", "First day of the window, YYYY-MM-DD (required)")
	flag.StringVar(&end, "end", "", "Last day of the window, YYYY-MM-DD (required)")
	flag.StringVar(&out, "out", "", "Output file (defaults to inspection-report-<site>-<start>.html)")
	flag.StringVar(&actor.UserID, "user", "", "Acting user ID")
	flag.StringVar(&actor.CompanyID, "company", "", "Acting user's organization ID")
	flag.StringVar(&actor.Role, "role", "", "Acting user's role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger(cfg.App.Name+"-render", cfg.App.Env)

	location, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid report timezone")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgClient.Close()

	svc := services.NewReportService(
		pgClient,
		database.NewSiteAdapter(pgClient),
		database.NewComplianceRecordAdapter(pgClient),
		database.NewOrganizationRecordAdapter(pgClient),
		services.ReportServiceConfig{
			QueryTimeout:      cfg.Report.QueryTimeout,
			ExpiryWarningDays: cfg.Report.ExpiryWarningDays,
			RowLimit:          cfg.Report.TableRowLimit,
			MaxWindowDays:     cfg.Report.MaxWindowDays,
			Location:          location,
		},
		nil,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	begin := time.Now()
	report, err := svc.Generate(ctx, services.ReportRequest{SiteID: siteID, Start: start, End: end, Actor: actor})
	if err != nil {
		log.Fatal().Err(err).Str("site_id", siteID).Msg("Failed to generate report")
	}

	if out == "" {
		out = fmt.Sprintf("inspection-report-%s-%s.html", report.Site.ID, report.Window.Start.Format(entities.DateLayout))
	}
	if err := os.WriteFile(out, report.HTML, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", out).Msg("Failed to write report")
	}

	log.Info().
		Str("report_id", report.ID).
		Str("path", out).
		Int("failed_queries", len(report.Failures)).
		Int("failed_sections", report.Document.FailedSections()).
		Dur("duration", time.Since(begin)).
		Msg("Report written")
}
