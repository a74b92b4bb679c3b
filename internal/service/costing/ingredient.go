package costing

import (
	"math"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// vatTracker records the highest VAT percentage among the ingredients
// touched by one calculation. The winner serves as the product-level VAT
// fallback when the product itself declares no rate.
type vatTracker struct {
	highest float64
	seen    bool
}

func (t *vatTracker) observe(vat *float64) {
	rate := DefaultVatPct
	if vat != nil && !math.IsNaN(*vat) && !math.IsInf(*vat, 0) {
		rate = *vat
	}
	if !t.seen || rate > t.highest {
		t.highest = rate
		t.seen = true
	}
}

// sanitizeQuantity maps unusable quantities to 0 so they never propagate
// NaN into a result.
func sanitizeQuantity(q float64) float64 {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

// normalizeYield returns the usable-fraction percentage for a composition
// line. Absent or non-positive yields mean no shrinkage: 100.
func normalizeYield(yield *float64) float64 {
	if yield == nil {
		return DefaultYieldPct
	}
	y := *yield
	if math.IsNaN(y) || math.IsInf(y, 0) || y <= 0 {
		return DefaultYieldPct
	}
	return y
}

// ingredientLineCost prices one composition line. The gross quantity grows
// in inverse proportion to yield: a 50% yield means buying twice the net
// amount used. Ingredients that resolve to a zero price are flagged on the
// warnings channel because they silently understate the total.
func ingredientLineCost(ing models.Ingredient, quantity float64, yield *float64, cat Catalog, warn *warnings) float64 {
	gross := sanitizeQuantity(quantity) * (100 / normalizeYield(yield))
	price, ok := resolveUnitPrice(ing, cat)
	if !ok || price == 0 {
		warn.add(models.WarningZeroPriceIngredient, ing.ID)
	}
	return gross * price
}
