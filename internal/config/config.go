package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	POS      POSConfig
	Sheets   SheetsConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the catalog database.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// POSConfig contains credentials and options for the point-of-sale API the
// units-sold figures are fetched from.
type POSConfig struct {
	BaseURL string
	APIKey  string
}

// SheetsConfig contains configuration for the Google Sheets report export.
// Leaving the credentials path empty disables the export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReportRange     string
}

// AnalysisConfig holds scheduler settings for the recurring menu analysis.
type AnalysisConfig struct {
	CronSchedule string
	WindowDays   int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	windowDays, err := strconv.Atoi(getenvWithDefault("ANALYSIS_WINDOW_DAYS", "28"))
	if err != nil {
		return nil, fmt.Errorf("ANALYSIS_WINDOW_DAYS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "fnb_backoffice"),
		},
		POS: POSConfig{
			BaseURL: os.Getenv("POS_BASE_URL"),
			APIKey:  os.Getenv("POS_API_KEY"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
			ReportRange:     getenvWithDefault("GOOGLE_SHEET_REPORT_RANGE", "MenuAnalysis!A:J"),
		},
		Analysis: AnalysisConfig{
			CronSchedule: getenvWithDefault("ANALYSIS_CRON_SCHEDULE", "0 2 * * *"),
			WindowDays:   windowDays,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.POS.BaseURL == "" {
		return errors.New("POS_BASE_URL must be provided")
	}

	if c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_REPORT_ID must be provided when sheets export is enabled")
	}

	if c.Analysis.CronSchedule == "" {
		return errors.New("ANALYSIS_CRON_SCHEDULE must be provided")
	}
	if c.Analysis.WindowDays <= 0 {
		return errors.New("ANALYSIS_WINDOW_DAYS must be positive")
	}

	return nil
}

// SheetsEnabled reports whether the Google Sheets export is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
