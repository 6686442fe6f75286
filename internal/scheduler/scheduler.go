package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"rent-ledger-backend/internal/jobs"
	"rent-ledger-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner. It fails
// when a configured schedule does not parse.
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	// Monthly jobs
	if _, err := s.cron.AddFunc(cfg.ReconcileMonthly, s.jobs.ReconcileCurrentMonth); err != nil {
		logger.Error("Failed to register ReconcileCurrentMonth job", "schedule", cfg.ReconcileMonthly, "error", err)
		return err
	}

	logger.Info("All cron jobs registered successfully", "count", len(s.cron.Entries()))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// NextRun returns when the first registered job fires next. It is zero until
// the scheduler has been started.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
