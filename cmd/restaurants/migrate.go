package main

import (
	"context"
	"time"

	"github.com/deppfellow/restaurants-api/internal/database"
	"github.com/spf13/cobra"
)

// migrateTimeout bounds a whole migration run.
const migrateTimeout = 2 * time.Minute

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the restaurants and dishes tables",
	Long: `migrate applies the embedded schema migrations to the configured store.
SQLite files are created when missing and opened read-write for the run,
whatever database.read_only says.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Database.ReadOnly = false

	log, loggerService := newLogger(cfg)
	defer loggerService.Shutdown()

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Error().Err(err).Msg("migration failed")
		return err
	}

	return nil
}
