package costing

import (
	"math"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// unitPrice derives a price per base unit from a price/content pair. The
// pair is usable only when both values are present and finite, the content
// is strictly positive, and the price is not negative.
func unitPrice(price, content *float64) (float64, bool) {
	if price == nil || content == nil {
		return 0, false
	}
	p, c := *price, *content
	if math.IsNaN(p) || math.IsInf(p, 0) || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	if c <= 0 || p < 0 {
		return 0, false
	}
	return p / c, true
}

// resolveUnitPrice picks the cheapest usable price among the articles linked
// to the ingredient, falling back to the ingredient's own price/content
// pair. ok is false when no priced source exists.
func resolveUnitPrice(ing models.Ingredient, cat Catalog) (float64, bool) {
	var best float64
	found := false
	for _, id := range ing.Articles {
		art, ok := cat.Articles[id]
		if !ok {
			continue
		}
		up, ok := unitPrice(art.PricePerStockUnit, art.ContentPerStockUnit)
		if !ok {
			continue
		}
		if !found || up < best {
			best = up
			found = true
		}
	}
	if found {
		return best, true
	}
	return unitPrice(ing.PricePerStockUnit, ing.ContentPerStockUnit)
}

// ResolveUnitPrice returns the effective cost per base unit of an
// ingredient. Missing or unusable pricing data collapses to 0 here; this is
// the single boundary where the optional resolution degrades, so an
// incomplete catalog understates cost instead of failing the rollup.
func ResolveUnitPrice(ing models.Ingredient, cat Catalog) float64 {
	price, _ := resolveUnitPrice(ing, cat)
	return price
}
