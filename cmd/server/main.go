package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "rent-ledger-backend/internal/api/http"
	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/database"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository/postgres"
	"rent-ledger-backend/internal/security"
	"rent-ledger-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent Ledger Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := database.Open(cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	if cfg.Database.MigrateOnBoot {
		if err := database.Migrate(db); err != nil {
			logger.Error("Failed to apply migrations", "error", err)
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		version, _ := database.Version(db)
		logger.Info("Migrations applied", "version", version)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	// Initialize Services
	propertySvc := service.NewPropertyService(store.PropertyRepository)
	tenantSvc := service.NewTenantService(store.TenantRepository, store.PropertyRepository)
	rentSvc := service.NewRentService(store.PropertyRepository, store.TenantRepository, store.RentRecordRepository)
	reportSvc := service.NewReportService(store.PropertyRepository, store.TenantRepository, store.RentRecordRepository)

	// Initialize HTTP handlers
	handler := httpapi.NewHandler(propertySvc, tenantSvc, rentSvc, reportSvc, store)
	router := httpapi.NewRouter(handler, tokenManager)

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve HTTP", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
