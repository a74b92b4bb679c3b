package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/costing"
)

// CostingHandler exposes product cost calculations over HTTP.
type CostingHandler struct {
	svc    *costing.Service
	logger *zap.Logger
}

// NewCostingHandler constructs the HTTP handler adapter.
func NewCostingHandler(svc *costing.Service, logger *zap.Logger) *CostingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostingHandler{svc: svc, logger: logger}
}

// ProductCost returns the cost triple for one product.
func (h *CostingHandler) ProductCost(c *gin.Context) {
	productID := c.Param("id")

	result, err := h.svc.ProductCost(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if errors.Is(err, costing.ErrCompositionCycle) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product composition contains a cycle"})
			return
		}
		h.logger.Error("failed calculating product cost", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate product cost"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CatalogCosts returns the cost triple for every product, keyed by id.
func (h *CostingHandler) CatalogCosts(c *gin.Context) {
	results, err := h.svc.CatalogCosts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed calculating catalog costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate catalog costs"})
		return
	}

	c.JSON(http.StatusOK, results)
}
