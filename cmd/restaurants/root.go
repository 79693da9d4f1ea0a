package main

import (
	"github.com/deppfellow/restaurants-api/internal/config"
	"github.com/deppfellow/restaurants-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// dbPathFlag overrides database.path for the sqlite driver.
var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "Read-only restaurants and dishes API",
	Long: `restaurants serves a read-only JSON API over a restaurants and dishes
store. Configuration comes from RESTAURANTS_* environment variables and an
optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "",
		"Path to the SQLite database file (overrides RESTAURANTS_DATABASE__PATH)")
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if dbPathFlag != "" {
		cfg.Database.Path = dbPathFlag
	}

	return cfg, nil
}

// newLogger builds the root logger and the optional New Relic service.
func newLogger(cfg *config.Config) (*zerolog.Logger, *logger.LoggerService) {
	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return &log, loggerService
}
