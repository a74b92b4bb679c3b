package costing

import (
	"fmt"
	"math"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// batchContent returns the declared yield quantity of a recipe, treating
// absent or non-positive content as a single-unit batch so batch-fraction
// divisions never collapse.
func batchContent(content *float64) float64 {
	if content == nil {
		return 1
	}
	c := *content
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return 1
	}
	return c
}

// CalculateRecipeCost returns the cost of producing one full batch
// (recipe.Content units) of the recipe, summing every ingredient and
// sub-recipe line. Dangling references contribute nothing; the only failure
// mode is ErrCompositionCycle.
func CalculateRecipeCost(recipe models.Recipe, cat Catalog) (float64, error) {
	var warn warnings
	return recipeCost(recipe, cat, map[string]bool{recipe.ID: true}, &warn)
}

// recipeCost walks a recipe's composition with a visited set so cyclic
// sub-recipe references fail fast instead of recursing unboundedly.
func recipeCost(r models.Recipe, cat Catalog, visited map[string]bool, warn *warnings) (float64, error) {
	var total float64
	for _, line := range r.Composition {
		if line.SubRecipeID != "" {
			sub, ok := cat.Recipes[line.SubRecipeID]
			if !ok {
				warn.add(models.WarningUnresolvedRecipe, line.SubRecipeID)
				continue
			}
			if visited[sub.ID] {
				return 0, fmt.Errorf("recipe %s via %s: %w", sub.ID, r.ID, ErrCompositionCycle)
			}
			visited[sub.ID] = true
			subCost, err := recipeCost(sub, cat, visited, warn)
			if err != nil {
				return 0, err
			}
			delete(visited, sub.ID)

			// A sub-recipe line consumes a fraction of the sub batch.
			total += sanitizeQuantity(line.Quantity) / batchContent(sub.Content) * subCost
			continue
		}

		ing, ok := cat.Ingredients[line.IngredientID]
		if !ok {
			warn.add(models.WarningUnresolvedIngredient, line.IngredientID)
			continue
		}
		total += ingredientLineCost(ing, line.Quantity, nil, cat, warn)
	}
	return total, nil
}
