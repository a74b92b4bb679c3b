package models

// WarningKind categorizes data-quality findings raised during a cost
// calculation. Warnings never change the numeric result; they exist so the
// UI can flag incomplete catalog data.
type WarningKind string

const (
	WarningUnresolvedIngredient WarningKind = "unresolved_ingredient"
	WarningUnresolvedRecipe     WarningKind = "unresolved_recipe"
	WarningZeroPriceIngredient  WarningKind = "zero_price_ingredient"
)

// Warning flags a single catalog record that degraded the calculation.
type Warning struct {
	Kind WarningKind `json:"kind"`
	ID   string      `json:"id"`
}

// CostResult is the ephemeral output of one product cost calculation. It is
// never persisted; consumers round and format for display.
type CostResult struct {
	Cost         float64   `json:"cost"`
	FoodcostPct  float64   `json:"foodcostPct"`
	ExclVatPrice float64   `json:"exclVatPrice"`
	Warnings     []Warning `json:"warnings,omitempty"`
}
