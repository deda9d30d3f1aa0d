//go:build unit

package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"car-rental-api/internal/jobs"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/scheduler"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewScheduler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rentals := queriesmock.NewMockRentalQueries(gomock.NewController(t))

	t.Run("秒付きのcron式を登録", func(t *testing.T) {
		runner := jobs.NewJobRunner(rentals, config.NewTestConfig(), logger)

		s, err := scheduler.NewScheduler(runner, logger)

		require.NoError(t, err)
		assert.Equal(t, 1, s.Entries())
		s.Start()
		assert.NoError(t, s.Stop(context.Background()))
	})

	t.Run("不正なcron式はエラー", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Scheduler.OverdueReport = "every hour"
		runner := jobs.NewJobRunner(rentals, cfg, logger)

		_, err := scheduler.NewScheduler(runner, logger)

		assert.Error(t, err)
	})
}
