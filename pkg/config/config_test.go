package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReportConfig(t *testing.T) {
	t.Setenv("REPORT_QUERY_TIMEOUT_SECONDS", "7")
	t.Setenv("REPORT_EXPIRY_WARNING_DAYS", "14")
	t.Setenv("REPORT_TABLE_ROW_LIMIT", "25")
	t.Setenv("REPORT_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, cfg.Report.QueryTimeout)
	assert.Equal(t, 14, cfg.Report.ExpiryWarningDays)
	assert.Equal(t, 25, cfg.Report.TableRowLimit)

	loc, err := cfg.Report.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REPORT_QUERY_TIMEOUT_SECONDS", "")
	t.Setenv("REPORT_TIMEZONE", "")
	t.Setenv("DB_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.Report.QueryTimeout)
	assert.Equal(t, 30, cfg.Report.ExpiryWarningDays)
	assert.Equal(t, "Europe/London", cfg.Report.Timezone)
	assert.Equal(t, 366, cfg.Report.MaxWindowDays)
	assert.Equal(t, "compliance", cfg.Database.Database)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://portal.example.com, ,https://admin.example.com ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://portal.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)

	t.Setenv("ALLOWED_ORIGINS", "")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("REPORT_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("REPORT_QUERY_TIMEOUT_SECONDS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=require", cfg.DatabaseDSN())
}
