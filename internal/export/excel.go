// Package export builds downloadable report files from analysis snapshots.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// BuildAnalysisWorkbook renders an analysis snapshot into an Excel workbook.
// The caller owns the returned file and must Close it.
func BuildAnalysisWorkbook(snapshot models.AnalysisSnapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"product_id",
		"product_name",
		"sold",
		"margin",
		"total_margin",
		"margin_pct",
		"classification",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write workbook header: %w", err)
	}

	row := 2
	for _, r := range snapshot.Rows {
		excelRow := []interface{}{
			r.ProductID,
			r.ProductName,
			r.Sold,
			r.Margin,
			r.TotalMargin,
			r.MarginPct,
			string(r.Classification),
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write workbook row %d: %w", row, err)
		}
		row++
	}

	summary := []interface{}{
		"averages",
		"",
		snapshot.AvgSold,
		snapshot.AvgMargin,
	}
	cell := fmt.Sprintf("A%d", row+1)
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write workbook summary: %w", err)
	}

	return f, nil
}
