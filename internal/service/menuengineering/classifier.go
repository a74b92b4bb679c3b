// Package menuengineering classifies menu items into the four classic
// quadrants (Star, Plowhorse, Puzzle, Dog) by comparing each product's
// popularity and unit margin against the averages of the analyzed
// population. The classification is population-relative: changing the
// comparison window moves quadrant boundaries, which is intended.
package menuengineering

import (
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// PerformanceRow is the per-product input of one classification run.
type PerformanceRow struct {
	ProductID   string
	ProductName string
	Price       float64
	Margin      float64
	Sold        float64
}

// Analysis is the outcome of one classification run over a population.
type Analysis struct {
	AvgSold   float64
	AvgMargin float64
	Rows      []models.ClassificationRow
}

// Classify assigns every row exactly one quadrant. Both axes use inclusive
// thresholds on the high branch, so a product sitting exactly on an average
// counts as high. An empty population yields zero averages and no rows.
func Classify(rows []PerformanceRow) Analysis {
	avgSold, avgMargin := averages(rows)

	out := Analysis{AvgSold: avgSold, AvgMargin: avgMargin}
	if len(rows) == 0 {
		return out
	}

	out.Rows = make([]models.ClassificationRow, 0, len(rows))
	for _, row := range rows {
		var quadrant models.Quadrant
		switch {
		case row.Sold >= avgSold && row.Margin >= avgMargin:
			quadrant = models.QuadrantStar
		case row.Sold >= avgSold:
			quadrant = models.QuadrantPlowhorse
		case row.Margin >= avgMargin:
			quadrant = models.QuadrantPuzzle
		default:
			quadrant = models.QuadrantDog
		}

		var marginPct float64
		if row.Price > 0 {
			marginPct = row.Margin / row.Price * 100
		}

		out.Rows = append(out.Rows, models.ClassificationRow{
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Sold:           row.Sold,
			Margin:         row.Margin,
			TotalMargin:    row.Margin * row.Sold,
			MarginPct:      marginPct,
			Classification: quadrant,
		})
	}
	return out
}

func averages(rows []PerformanceRow) (avgSold, avgMargin float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	for _, row := range rows {
		avgSold += row.Sold
		avgMargin += row.Margin
	}
	n := float64(len(rows))
	return avgSold / n, avgMargin / n
}
