package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/export"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/menuengineering"
)

const dateLayout = "2006-01-02"

// AnalysisHandler exposes menu engineering analysis runs over HTTP.
type AnalysisHandler struct {
	svc    *menuengineering.Service
	logger *zap.Logger
}

// NewAnalysisHandler constructs the HTTP handler adapter.
func NewAnalysisHandler(svc *menuengineering.Service, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{svc: svc, logger: logger}
}

// analysisRequest is the JSON body of a manual analysis trigger.
type analysisRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// Run triggers an analysis over the requested sales window.
func (h *AnalysisHandler) Run(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted as " + dateLayout})
		return
	}
	to, err := time.Parse(dateLayout, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted as " + dateLayout})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	snapshot, err := h.svc.Run(c.Request.Context(), from, to)
	if err != nil {
		h.logger.Error("menu analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run menu analysis"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Latest returns the most recently persisted analysis snapshot.
func (h *AnalysisHandler) Latest(c *gin.Context) {
	snapshot, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no analysis has been run yet"})
			return
		}
		h.logger.Error("failed loading latest analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load latest analysis"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ExportExcel streams the latest analysis as an Excel workbook.
func (h *AnalysisHandler) ExportExcel(c *gin.Context) {
	snapshot, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no analysis has been run yet"})
			return
		}
		h.logger.Error("failed loading latest analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load latest analysis"})
		return
	}

	workbook, err := export.BuildAnalysisWorkbook(*snapshot)
	if err != nil {
		h.logger.Error("failed building analysis workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer func() { _ = workbook.Close() }()

	filename := fmt.Sprintf("menu-analysis-%s.xlsx", snapshot.CreatedAt.Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		h.logger.Error("failed streaming analysis workbook", zap.Error(err))
	}
}
