package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/database"
	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/repository/postgres"
	"rent-ledger-backend/internal/security"
	"rent-ledger-backend/internal/service"
)

type environment struct {
	cfg *config.Config
}

var env environment

func loadEnvironment(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.InitializeWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	env.cfg = cfg
	return nil
}

func openDB() (*sql.DB, error) {
	db, err := database.Open(env.cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func monthFlag(cmd *cobra.Command) (domain.Month, error) {
	raw, _ := cmd.Flags().GetString("month")
	if raw == "" {
		return domain.CurrentMonth(), nil
	}
	return domain.ParseMonth(raw)
}

func ownerFlag(cmd *cobra.Command) (domain.Owner, error) {
	id, _ := cmd.Flags().GetString("owner")
	email, _ := cmd.Flags().GetString("email")
	owner := domain.Owner{ID: id, Email: email}
	if !owner.Valid() {
		return owner, fmt.Errorf("--owner is required")
	}
	return owner, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}
			version, err := database.Version(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", version)
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Create the missing rent records of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			month, err := monthFlag(cmd)
			if err != nil {
				return err
			}
			propertyID, _ := cmd.Flags().GetString("property")

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			store := postgres.NewStore(db)
			rent := service.NewRentService(store.PropertyRepository, store.TenantRepository, store.RentRecordRepository)

			ctx := context.Background()
			var created int
			if propertyID != "" {
				created, err = rent.ReconcileProperty(ctx, owner, propertyID, month)
			} else {
				created, err = rent.ReconcileOwner(ctx, owner, month)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d rent records for %s\n", created, month)
			return nil
		},
	}
	cmd.Flags().String("owner", "", "Owner ID")
	cmd.Flags().String("month", "", "Month as YYYY-MM (defaults to the current month)")
	cmd.Flags().String("property", "", "Limit to one property")
	return cmd
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the monthly collection report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			month, err := monthFlag(cmd)
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			store := postgres.NewStore(db)
			reports := service.NewReportService(store.PropertyRepository, store.TenantRepository, store.RentRecordRepository)
			report, err := reports.MonthlyReport(context.Background(), owner, month)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().String("owner", "", "Owner ID")
	cmd.Flags().String("month", "", "Month as YYYY-MM (defaults to the current month)")
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			tm := security.NewTokenManager(env.cfg.JWT.Secret, env.cfg.AccessTokenTTL())
			token, err := tm.GenerateAccessToken(owner)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("owner", "", "Owner ID")
	cmd.Flags().String("email", "", "Owner email carried in the token")
	return cmd
}
