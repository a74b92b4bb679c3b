package models

import "time"

// Quadrant is a menu engineering classification relative to the analyzed
// population: popularity on one axis, unit margin on the other.
type Quadrant string

const (
	QuadrantStar      Quadrant = "Star"
	QuadrantPlowhorse Quadrant = "Plowhorse"
	QuadrantPuzzle    Quadrant = "Puzzle"
	QuadrantDog       Quadrant = "Dog"
)

// ClassificationRow is the per-product outcome of one menu engineering run.
// Rows are always recomputed from scratch; the same product can land in a
// different quadrant when the comparison population changes.
type ClassificationRow struct {
	ProductID      string   `bson:"product_id" json:"productId"`
	ProductName    string   `bson:"product_name" json:"productName"`
	Sold           float64  `bson:"sold" json:"sold"`
	Margin         float64  `bson:"margin" json:"margin"`
	TotalMargin    float64  `bson:"total_margin" json:"totalMargin"`
	MarginPct      float64  `bson:"margin_pct" json:"marginPct"`
	Classification Quadrant `bson:"classification" json:"classification"`
}

// AnalysisSnapshot is the persisted record of one menu engineering run over
// a sales window. Snapshots are write-only history for trend charts.
type AnalysisSnapshot struct {
	From      time.Time           `bson:"from" json:"from"`
	To        time.Time           `bson:"to" json:"to"`
	AvgSold   float64             `bson:"avg_sold" json:"avgSold"`
	AvgMargin float64             `bson:"avg_margin" json:"avgMargin"`
	Rows      []ClassificationRow `bson:"rows" json:"rows"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}

// SalesCount reports units sold for one product over a queried window, as
// returned by the point-of-sale system.
type SalesCount struct {
	ProductID string  `json:"product_id"`
	Sold      float64 `json:"sold"`
}
