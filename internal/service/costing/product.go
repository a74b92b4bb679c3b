package costing

import (
	"fmt"
	"math"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// CalculateCostAndFoodcost is the primary entry point of the engine. It
// rolls the product's ingredient lines and recipe usages up into a total
// unit cost, derives the VAT-exclusive sale price, and expresses cost as a
// percentage of it. The result carries the data-quality warnings gathered
// along the way; the numeric fields are unaffected by them.
func CalculateCostAndFoodcost(product models.Product, cat Catalog) (models.CostResult, error) {
	var (
		cost    float64
		tracker vatTracker
		warn    warnings
	)

	for _, line := range product.Composition {
		ing, ok := cat.Ingredients[line.IngredientID]
		if !ok {
			warn.add(models.WarningUnresolvedIngredient, line.IngredientID)
			continue
		}
		tracker.observe(ing.Vat)
		cost += ingredientLineCost(ing, line.Quantity, line.Yield, cat, &warn)
	}

	for _, usage := range product.Recipes {
		recipe, ok := cat.Recipes[usage.RecipeID]
		if !ok {
			warn.add(models.WarningUnresolvedRecipe, usage.RecipeID)
			continue
		}

		// The VAT scan over the recipe's own ingredient lines is kept
		// separate from the cost rollup: which rate applies does not depend
		// on what the recipe costs.
		for _, line := range recipe.Composition {
			if ing, ok := cat.Ingredients[line.IngredientID]; ok {
				tracker.observe(ing.Vat)
			}
		}

		batchCost, err := recipeCost(recipe, cat, map[string]bool{recipe.ID: true}, &warn)
		if err != nil {
			return models.CostResult{}, fmt.Errorf("product %s: %w", product.ID, err)
		}

		// Cost scales with the fraction of a batch consumed.
		cost += sanitizeQuantity(usage.Quantity) / batchContent(recipe.Content) * batchCost
	}

	vat := effectiveVat(product.Vat, tracker)

	var exclVatPrice float64
	if denom := 1 + vat/100; denom > 0 {
		exclVatPrice = sanitizeQuantity(product.Price) / denom
	}

	var foodcostPct float64
	if exclVatPrice > 0 {
		foodcostPct = cost / exclVatPrice * 100
	}

	return models.CostResult{
		Cost:         cost,
		FoodcostPct:  foodcostPct,
		ExclVatPrice: exclVatPrice,
		Warnings:     warn.list,
	}, nil
}

// effectiveVat resolves the rate used for the exclusive price: an explicit
// product rate wins, then the highest rate seen among the ingredients
// touched, then the system default.
func effectiveVat(productVat *float64, tracker vatTracker) float64 {
	if productVat != nil && !math.IsNaN(*productVat) && !math.IsInf(*productVat, 0) {
		return *productVat
	}
	if tracker.seen {
		return tracker.highest
	}
	return DefaultVatPct
}
