package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/export"
)

func TestBuildAnalysisWorkbook(t *testing.T) {
	snapshot := models.AnalysisSnapshot{
		From:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		AvgSold:   20,
		AvgMargin: 4.5,
		Rows: []models.ClassificationRow{
			{ProductID: "fries", ProductName: "Fries", Sold: 30, Margin: 2, TotalMargin: 60, MarginPct: 40, Classification: models.QuadrantPlowhorse},
			{ProductID: "steak", ProductName: "Steak", Sold: 10, Margin: 7, TotalMargin: 70, MarginPct: 28, Classification: models.QuadrantPuzzle},
		},
		CreatedAt: time.Now().UTC(),
	}

	f, err := export.BuildAnalysisWorkbook(snapshot)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "product_id", rows[0][0])
	assert.Equal(t, "fries", rows[1][0])
	assert.Equal(t, "Plowhorse", rows[1][6])
	assert.Equal(t, "steak", rows[2][0])
}

func TestBuildAnalysisWorkbook_EmptySnapshot(t *testing.T) {
	f, err := export.BuildAnalysisWorkbook(models.AnalysisSnapshot{})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "product_id", rows[0][0])
}
