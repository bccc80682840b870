package observability

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// InitLogger initializes the global zerolog logger.
// Development gets human-readable console output at debug level; everything else gets JSON at info.
func InitLogger(serviceName, env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().
			Str("service", serviceName).
			Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// WithReportFields returns a context whose logger carries the report reference and site.
// Every downgrade point of one report invocation logs through it.
func WithReportFields(ctx context.Context, reportID, siteID string) context.Context {
	logger := baseLogger(ctx).With().
		Str("report_id", reportID).
		Str("site_id", siteID).
		Logger()
	return logger.WithContext(ctx)
}

// LoggerFromContext returns the logger attached to ctx (or the global one) with trace context
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := baseLogger(ctx).With().Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}

func baseLogger(ctx context.Context) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled && logger != zerolog.DefaultContextLogger {
		return logger
	}
	return &log.Logger
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}
