package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/inspectionreport/internal/adapters/database"
	"github.com/zatekoja/inspectionreport/internal/api/handlers"
	"github.com/zatekoja/inspectionreport/internal/api/routes"
	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"github.com/zatekoja/inspectionreport/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	location, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid report timezone")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Initialize adapters
	siteAdapter := database.NewSiteAdapter(pgClient)
	complianceAdapter := database.NewComplianceRecordAdapter(pgClient)
	organizationAdapter := database.NewOrganizationRecordAdapter(pgClient)

	reportService := services.NewReportService(
		pgClient,
		siteAdapter,
		complianceAdapter,
		organizationAdapter,
		services.ReportServiceConfig{
			QueryTimeout:      cfg.Report.QueryTimeout,
			ExpiryWarningDays: cfg.Report.ExpiryWarningDays,
			RowLimit:          cfg.Report.TableRowLimit,
			MaxWindowDays:     cfg.Report.MaxWindowDays,
			Location:          location,
		},
		metrics,
	)

	router := routes.NewRouter(
		handlers.NewReportHandler(reportService),
		handlers.NewHealthHandler(pgClient),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// Generation is bounded by the query timeout; rendering and writing need headroom on top.
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Report.QueryTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
