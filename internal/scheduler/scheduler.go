package scheduler

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/jobs"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.JobRunner
	logger *slog.Logger
}

func NewScheduler(jobRunner *jobs.JobRunner, logger *slog.Logger) (*Scheduler, error) {
	// UTC with seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		jobs:   jobRunner,
		logger: logger,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.OverdueReport, s.jobs.ReportOverdueRentals); err != nil {
		s.logger.Error("Failed to register ReportOverdueRentals job", "spec", cfg.OverdueReport, "error", err)
		return err
	}

	s.logger.Info("All cron jobs registered successfully", "entries", len(s.cron.Entries()))
	return nil
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("Stopping cron scheduler...")
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Cron scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
