package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/jobs"
)

func TestNewScheduler(t *testing.T) {
	t.Run("RegistersMonthlyReconcile", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{ReconcileMonthly: "0 0 0 1 * *"}}
		s, err := NewScheduler(jobs.NewJobRunner(nil, &jobs.Services{}, cfg))
		require.NoError(t, err)
		assert.Equal(t, 1, s.Entries())
	})

	t.Run("RejectsBadSpec", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{ReconcileMonthly: "first of the month"}}
		_, err := NewScheduler(jobs.NewJobRunner(nil, &jobs.Services{}, cfg))
		assert.Error(t, err)
	})
}
