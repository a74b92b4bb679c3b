package menuengineering

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
	repo "github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/costing"
)

// SalesProvider supplies per-product units-sold figures for a window,
// normally backed by the point-of-sale system.
type SalesProvider interface {
	FetchSalesCounts(ctx context.Context, from, to time.Time) ([]models.SalesCount, error)
}

// Exporter pushes a finished analysis to an external report target.
type Exporter interface {
	AppendAnalysis(ctx context.Context, snapshot models.AnalysisSnapshot) error
}

// Service runs menu engineering analyses: it combines catalog costs with
// POS sales counts, classifies the population, and persists the snapshot.
type Service struct {
	repo     repo.Repository
	costing  *costing.Service
	sales    SalesProvider
	exporter Exporter
	logger   *zap.Logger
}

// NewService wires a new menu engineering service. The exporter is
// optional; analyses still run and persist without one.
func NewService(repository repo.Repository, costingSvc *costing.Service, sales SalesProvider, exporter Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repository,
		costing:  costingSvc,
		sales:    sales,
		exporter: exporter,
		logger:   logger,
	}
}

// Run executes one analysis over the given sales window and returns the
// persisted snapshot. Every stored product participates in the population;
// products without sales in the window count as zero sold.
func (s *Service) Run(ctx context.Context, from, to time.Time) (*models.AnalysisSnapshot, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	cat, err := s.costing.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.sales.FetchSalesCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch sales counts: %w", err)
	}
	soldByProduct := make(map[string]float64, len(counts))
	for _, c := range counts {
		soldByProduct[c.ProductID] += c.Sold
	}

	rows := make([]PerformanceRow, 0, len(products))
	for _, product := range products {
		result, err := costing.CalculateCostAndFoodcost(product, cat)
		if err != nil {
			s.logger.Error("excluding product with invalid composition",
				zap.String("product_id", product.ID), zap.Error(err))
			continue
		}
		rows = append(rows, PerformanceRow{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       result.ExclVatPrice,
			Margin:      result.ExclVatPrice - result.Cost,
			Sold:        soldByProduct[product.ID],
		})
	}

	analysis := Classify(rows)

	snapshot := models.AnalysisSnapshot{
		From:      from,
		To:        to,
		AvgSold:   analysis.AvgSold,
		AvgMargin: analysis.AvgMargin,
		Rows:      analysis.Rows,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.SaveAnalysisSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	if s.exporter != nil {
		if err := s.exporter.AppendAnalysis(ctx, snapshot); err != nil {
			// Export failure must not invalidate the persisted analysis.
			s.logger.Error("analysis export failed", zap.Error(err))
		}
	}

	s.logger.Info("menu analysis completed",
		zap.Time("from", from), zap.Time("to", to),
		zap.Int("products", len(snapshot.Rows)))

	return &snapshot, nil
}

// Latest returns the most recently persisted analysis snapshot.
func (s *Service) Latest(ctx context.Context) (*models.AnalysisSnapshot, error) {
	return s.repo.LatestAnalysisSnapshot(ctx)
}
