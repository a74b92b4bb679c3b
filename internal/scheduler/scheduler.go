package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/config"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/service/menuengineering"
)

// Scheduler runs the recurring menu engineering analysis.
type Scheduler struct {
	cron        *cron.Cron
	analysisSvc *menuengineering.Service
	cfg         config.AnalysisConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.AnalysisConfig, analysisSvc *menuengineering.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:        c,
		analysisSvc: analysisSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the analysis job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runAnalysis)
	if err != nil {
		s.logger.Error("failed to schedule menu analysis", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runAnalysis() {
	s.logger.Info("running scheduled menu analysis")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -s.cfg.WindowDays)

	if _, err := s.analysisSvc.Run(ctx, from, to); err != nil {
		s.logger.Error("scheduled menu analysis failed", zap.Error(err))
	}
}
