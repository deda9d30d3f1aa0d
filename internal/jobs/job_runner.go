package jobs

import (
	"log/slog"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/queries"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentals queries.RentalQueries
	config  config.Config
	logger  *slog.Logger
}

func NewJobRunner(rentals queries.RentalQueries, cfg config.Config, logger *slog.Logger) *JobRunner {
	return &JobRunner{
		rentals: rentals,
		config:  cfg,
		logger:  logger,
	}
}

func (jr *JobRunner) Config() config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.logger.Info("Starting job", "job", jobName)
	jobFunc()
	jr.logger.Info("Job completed", "job", jobName)
}
