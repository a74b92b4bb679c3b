package costing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/costing"
)

func TestCalculateRecipeCost_SumsIngredientLines(t *testing.T) {
	cat := costing.NewCatalog(
		[]models.Article{
			{ID: "a-flour", PricePerStockUnit: fptr(1), ContentPerStockUnit: fptr(1000)},
			{ID: "a-butter", PricePerStockUnit: fptr(8), ContentPerStockUnit: fptr(1000)},
		},
		[]models.Ingredient{
			{ID: "flour", Articles: []string{"a-flour"}},
			{ID: "butter", Articles: []string{"a-butter"}},
		},
		nil,
	)
	recipe := models.Recipe{
		ID:      "dough",
		Content: fptr(10),
		Composition: []models.RecipeLine{
			{IngredientID: "flour", Quantity: 500},
			{IngredientID: "butter", Quantity: 250},
		},
	}

	cost, err := costing.CalculateRecipeCost(recipe, cat)
	require.NoError(t, err)
	// 500*0.001 + 250*0.008
	assert.InDelta(t, 2.5, cost, 1e-9)
}

func TestCalculateRecipeCost_SkipsDanglingReferences(t *testing.T) {
	cat := costing.NewCatalog(
		[]models.Article{{ID: "a1", PricePerStockUnit: fptr(10), ContentPerStockUnit: fptr(10)}},
		[]models.Ingredient{{ID: "salt", Articles: []string{"a1"}}},
		nil,
	)
	recipe := models.Recipe{
		ID: "brine",
		Composition: []models.RecipeLine{
			{IngredientID: "salt", Quantity: 3},
			{IngredientID: "ghost", Quantity: 100},
			{SubRecipeID: "ghost-recipe", Quantity: 2},
		},
	}

	cost, err := costing.CalculateRecipeCost(recipe, cat)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, cost, 1e-9)
}

func TestCalculateRecipeCost_SubRecipeBatchFraction(t *testing.T) {
	cat := costing.NewCatalog(
		[]models.Article{{ID: "a1", PricePerStockUnit: fptr(10), ContentPerStockUnit: fptr(1)}},
		[]models.Ingredient{{ID: "stock-base", Articles: []string{"a1"}}},
		[]models.Recipe{
			{
				ID:      "stock",
				Content: fptr(4),
				Composition: []models.RecipeLine{
					{IngredientID: "stock-base", Quantity: 2},
				},
			},
		},
	)
	// Uses half a stock batch: 2 of content 4, batch costs 20.
	recipe := models.Recipe{
		ID: "soup",
		Composition: []models.RecipeLine{
			{SubRecipeID: "stock", Quantity: 2},
		},
	}

	cost, err := costing.CalculateRecipeCost(recipe, cat)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, cost, 1e-9)
}

func TestCalculateRecipeCost_AbsentContentCountsAsOne(t *testing.T) {
	cat := costing.NewCatalog(
		[]models.Article{{ID: "a1", PricePerStockUnit: fptr(5), ContentPerStockUnit: fptr(1)}},
		[]models.Ingredient{{ID: "base", Articles: []string{"a1"}}},
		[]models.Recipe{
			{ID: "sub", Composition: []models.RecipeLine{{IngredientID: "base", Quantity: 1}}},
		},
	)
	recipe := models.Recipe{
		ID:          "outer",
		Composition: []models.RecipeLine{{SubRecipeID: "sub", Quantity: 3}},
	}

	cost, err := costing.CalculateRecipeCost(recipe, cat)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, cost, 1e-9)
}

func TestCalculateRecipeCost_CycleDetected(t *testing.T) {
	cat := costing.NewCatalog(nil, nil, []models.Recipe{
		{ID: "a", Composition: []models.RecipeLine{{SubRecipeID: "b", Quantity: 1}}},
		{ID: "b", Composition: []models.RecipeLine{{SubRecipeID: "a", Quantity: 1}}},
	})

	_, err := costing.CalculateRecipeCost(cat.Recipes["a"], cat)
	require.Error(t, err)
	assert.ErrorIs(t, err, costing.ErrCompositionCycle)
}

func TestCalculateRecipeCost_SelfReferenceDetected(t *testing.T) {
	cat := costing.NewCatalog(nil, nil, []models.Recipe{
		{ID: "loop", Composition: []models.RecipeLine{{SubRecipeID: "loop", Quantity: 1}}},
	})

	_, err := costing.CalculateRecipeCost(cat.Recipes["loop"], cat)
	assert.ErrorIs(t, err, costing.ErrCompositionCycle)
}

func TestCalculateRecipeCost_DiamondIsNotACycle(t *testing.T) {
	cat := costing.NewCatalog(
		[]models.Article{{ID: "a1", PricePerStockUnit: fptr(1), ContentPerStockUnit: fptr(1)}},
		[]models.Ingredient{{ID: "base", Articles: []string{"a1"}}},
		[]models.Recipe{
			{ID: "shared", Content: fptr(1), Composition: []models.RecipeLine{{IngredientID: "base", Quantity: 1}}},
			{ID: "left", Content: fptr(1), Composition: []models.RecipeLine{{SubRecipeID: "shared", Quantity: 1}}},
			{ID: "right", Content: fptr(1), Composition: []models.RecipeLine{{SubRecipeID: "shared", Quantity: 1}}},
		},
	)
	top := models.Recipe{
		ID: "top",
		Composition: []models.RecipeLine{
			{SubRecipeID: "left", Quantity: 1},
			{SubRecipeID: "right", Quantity: 1},
		},
	}

	cost, err := costing.CalculateRecipeCost(top, cat)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cost, 1e-9)
}
