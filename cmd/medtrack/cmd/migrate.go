package cmd

import (
	"fmt"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/db"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/spf13/cobra"
)

// MigrateCmd applies or rolls back database migrations.
func MigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer database.Close()

			err = db.RunMigrations(database.DB, cfg.DBDriver)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}

			fmt.Println("migrations applied")
			return nil
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer database.Close()

			err = db.MigrateDown(database.DB, cfg.DBDriver)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}

			fmt.Println("rolled back one migration")
			return nil
		},
	})

	return migrateCmd
}
