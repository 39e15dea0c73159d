package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pageza/digital-parsley/backend/config"
	"github.com/pageza/digital-parsley/backend/internal/database"
	"github.com/pageza/digital-parsley/backend/internal/logger"
)

func main() {
	var rollback bool
	var dir string

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back database migrations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger.Setup(cfg.LogLevel, false)
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			db, err := database.New(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if rollback {
				name, err := database.RollbackLast(db, dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully rolled back migration: %s\n", name)
				return nil
			}

			if err := database.RunMigrations(db, dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All migrations applied successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&rollback, "rollback", false, "Rollback the last migration")
	cmd.Flags().StringVar(&dir, "dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")

	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
