package costing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/costing"
)

type mockRepository struct {
	articles    []models.Article
	ingredients []models.Ingredient
	recipes     []models.Recipe
	products    []models.Product
	snapshots   []models.AnalysisSnapshot
}

func (m *mockRepository) ListArticles(context.Context) ([]models.Article, error) {
	return m.articles, nil
}

func (m *mockRepository) ListIngredients(context.Context) ([]models.Ingredient, error) {
	return m.ingredients, nil
}

func (m *mockRepository) ListRecipes(context.Context) ([]models.Recipe, error) {
	return m.recipes, nil
}

func (m *mockRepository) ListProducts(context.Context) ([]models.Product, error) {
	return m.products, nil
}

func (m *mockRepository) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (m *mockRepository) SaveAnalysisSnapshot(_ context.Context, snapshot models.AnalysisSnapshot) error {
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *mockRepository) LatestAnalysisSnapshot(context.Context) (*models.AnalysisSnapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, mongodb.ErrNotFound
	}
	snapshot := m.snapshots[len(m.snapshots)-1]
	return &snapshot, nil
}

func tunaRepository() *mockRepository {
	return &mockRepository{
		articles:    []models.Article{{ID: "a-tuna", PricePerStockUnit: fptr(20), ContentPerStockUnit: fptr(1000)}},
		ingredients: []models.Ingredient{{ID: "tuna", Articles: []string{"a-tuna"}}},
		products: []models.Product{
			{
				ID:    "sandwich",
				Price: 10,
				Vat:   fptr(21),
				Composition: []models.ProductLine{
					{IngredientID: "tuna", Quantity: 100},
				},
			},
		},
	}
}

func TestService_ProductCost(t *testing.T) {
	svc := costing.NewService(tunaRepository(), nil)

	result, err := svc.ProductCost(context.Background(), "sandwich")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, result.Cost, 1e-9)
	assert.InDelta(t, 10.0/1.21, result.ExclVatPrice, 1e-9)
}

func TestService_ProductCost_NotFound(t *testing.T) {
	svc := costing.NewService(tunaRepository(), nil)

	_, err := svc.ProductCost(context.Background(), "nope")
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestService_CatalogCosts_SkipsCyclicProducts(t *testing.T) {
	repo := tunaRepository()
	repo.recipes = []models.Recipe{
		{ID: "a", Composition: []models.RecipeLine{{SubRecipeID: "a", Quantity: 1}}},
	}
	repo.products = append(repo.products, models.Product{
		ID:      "broken",
		Price:   10,
		Recipes: []models.RecipeUsage{{RecipeID: "a", Quantity: 1}},
	})

	svc := costing.NewService(repo, nil)

	results, err := svc.CatalogCosts(context.Background())
	require.NoError(t, err)
	assert.Contains(t, results, "sandwich")
	assert.NotContains(t, results, "broken")
}
