package costing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
	repo "github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
)

// Service exposes cost calculations over the stored catalog.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService wires a new costing service instance.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// ProductCost calculates cost, food-cost percentage and VAT-exclusive price
// for a single product.
func (s *Service) ProductCost(ctx context.Context, productID string) (*models.CostResult, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	cat, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result, err := CalculateCostAndFoodcost(*product, cat)
	if err != nil {
		return nil, err
	}

	if len(result.Warnings) > 0 {
		s.logger.Warn("cost calculated from incomplete catalog data",
			zap.String("product_id", productID),
			zap.Int("warnings", len(result.Warnings)))
	}

	return &result, nil
}

// CatalogCosts calculates the cost triple for every stored product, keyed
// by product id. Products whose composition contains a cycle are skipped
// and logged rather than failing the whole batch.
func (s *Service) CatalogCosts(ctx context.Context) (map[string]models.CostResult, error) {
	cat, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	results := make(map[string]models.CostResult, len(products))
	for _, product := range products {
		result, err := CalculateCostAndFoodcost(product, cat)
		if err != nil {
			s.logger.Error("skipping product with invalid composition",
				zap.String("product_id", product.ID), zap.Error(err))
			continue
		}
		results[product.ID] = result
	}
	return results, nil
}

// LoadCatalog fetches one immutable snapshot of the article, ingredient and
// recipe collections for use as engine input.
func (s *Service) LoadCatalog(ctx context.Context) (Catalog, error) {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load articles: %w", err)
	}
	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load ingredients: %w", err)
	}
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load recipes: %w", err)
	}

	return NewCatalog(articles, ingredients, recipes), nil
}
