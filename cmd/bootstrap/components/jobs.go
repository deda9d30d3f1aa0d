package components

import (
	"context"

	"car-rental-api/internal/jobs"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/scheduler"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewJobRunner,
		scheduler.NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func registerScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, cfg config.Config) {
	if !cfg.Scheduler.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
