package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/config"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/mongodb"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/repository/sheets"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/scheduler"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/server/handlers"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/server/router"
	costingsvc "github.com/SmekensRuben/RevenuePilot-sub001/internal/service/costing"
	menusvc "github.com/SmekensRuben/RevenuePilot-sub001/internal/service/menuengineering"
	"github.com/SmekensRuben/RevenuePilot-sub001/pkg/clients/pos"
	"github.com/SmekensRuben/RevenuePilot-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// The sheets export is optional; analyses still run and persist without it.
	var exporter menusvc.Exporter
	if cfg.SheetsEnabled() {
		sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("export.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("google sheets export enabled")
	} else {
		baseLogger.Warn("google sheets credentials missing, report export disabled")
	}

	posClient := pos.NewClient(cfg.POS)

	costingSvc := costingsvc.NewService(mongoRepo, baseLogger.Named("svc.costing"))
	analysisSvc := menusvc.NewService(mongoRepo, costingSvc, posClient, exporter, baseLogger.Named("svc.menuengineering"))

	costingHandler := handlers.NewCostingHandler(costingSvc, baseLogger.Named("handlers.costing"))
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc, baseLogger.Named("handlers.analysis"))
	engine := router.New(costingHandler, analysisHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Analysis, analysisSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
