package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/config"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

const dateLayout = "2006-01-02"

// GoogleSheetExporter appends menu engineering analysis rows to a report
// spreadsheet using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	reportRange   string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		reportRange:   cfg.ReportRange,
		logger:        logger,
	}, nil
}

// AppendAnalysis appends one row per classified product to the report range.
func (e *GoogleSheetExporter) AppendAnalysis(ctx context.Context, snapshot models.AnalysisSnapshot) error {
	if len(snapshot.Rows) == 0 {
		return nil
	}

	values := make([][]interface{}, 0, len(snapshot.Rows))
	for _, row := range snapshot.Rows {
		values = append(values, []interface{}{
			snapshot.CreatedAt.Format(dateLayout),
			snapshot.From.Format(dateLayout),
			snapshot.To.Format(dateLayout),
			row.ProductID,
			row.ProductName,
			row.Sold,
			row.Margin,
			row.TotalMargin,
			row.MarginPct,
			string(row.Classification),
		})
	}

	payload := &sheetsapi.ValueRange{Values: values}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append analysis into range %s: %w", e.reportRange, err)
	}

	e.logger.Debug("analysis appended to sheet",
		zap.String("range", e.reportRange),
		zap.Int("rows", len(values)))
	return nil
}
