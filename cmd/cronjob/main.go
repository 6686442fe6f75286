package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/database"
	"rent-ledger-backend/internal/jobs"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository/postgres"
	"rent-ledger-backend/internal/scheduler"
	"rent-ledger-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reconcile-current-month', 'all-monthly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent Ledger Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := database.Open(cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	rentService := service.NewRentService(
		store.PropertyRepository,
		store.TenantRepository,
		store.RentRecordRepository,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store.OwnerRepository, &jobs.Services{Rent: rentService}, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to register jobs: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "reconcile-current-month":
		jobRunner.ReconcileCurrentMonth()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - reconcile-current-month\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
