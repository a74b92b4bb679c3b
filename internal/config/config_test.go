package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POS_BASE_URL", "https://pos.example.com")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "fnb_backoffice", cfg.MongoDB.DBName)
	assert.Equal(t, "0 2 * * *", cfg.Analysis.CronSchedule)
	assert.Equal(t, 28, cfg.Analysis.WindowDays)
	assert.Equal(t, "MenuAnalysis!A:J", cfg.Sheets.ReportRange)
	assert.False(t, cfg.SheetsEnabled())
}

func TestLoad_RequiresPOSBaseURL(t *testing.T) {
	t.Setenv("POS_BASE_URL", "")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POS_BASE_URL")
}

func TestLoad_RejectsNonNumericWindow(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANALYSIS_WINDOW_DAYS", "four weeks")

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoad_SheetsExportNeedsSpreadsheetID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEET_REPORT_ID")
}

func TestLoad_SheetsEnabledWhenFullyConfigured(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-123")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.SheetsEnabled())
}

func TestValidate_RejectsNonPositiveWindow(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANALYSIS_WINDOW_DAYS", "0")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYSIS_WINDOW_DAYS")
}
