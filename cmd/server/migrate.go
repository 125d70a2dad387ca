package main

import (
	"fmt"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	dbpkg "github.com/Shreyaj-Padigala/ProSolve/internal/infra/db"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err := logger.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := dbpkg.New(cfg, log)
		if err != nil {
			return err
		}
		if err := dbpkg.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Sugar().Infow("schema up to date", "dsn", dbpkg.RedactDSN(cfg.Database.DSN))
		return nil
	},
}
