package main

import (
	"github.com/spf13/cobra"

	"github.com/rpattn/dinaquery/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return db.RunMigrations(cfg.Database, logger)
	},
}
