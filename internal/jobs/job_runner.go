package jobs

import (
	"time"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository"
	"rent-ledger-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	owners   repository.OwnerRepository
	services *Services
	config   *config.Config
	now      func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Rent service.RentService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(owners repository.OwnerRepository, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		owners:   owners,
		services: services,
		config:   cfg,
		now:      time.Now,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithJob(jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	log.Info("Starting job")
	start := jr.now()
	jobFunc()
	log.Info("Job completed", "duration", jr.now().Sub(start))
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.ReconcileCurrentMonth()
}
