// Package database opens the store the API reads from.
//
// Two drivers are supported behind a single *sql.DB:
//   - sqlite (default): a single database file, opened with the pure-Go
//     modernc driver, read-only unless told otherwise
//   - postgres: pgx through its database/sql adapter, with query tracing
//     (New Relic) and local SQL logging wired into the connection config
//
// Callers get the placeholder format that matches the driver so the query
// builder can render statements for it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/deppfellow/restaurants-api/internal/config"
	loggerConfig "github.com/deppfellow/restaurants-api/internal/logger"
	"github.com/deppfellow/restaurants-api/internal/query"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Database wraps the connection pool together with what callers need to
// talk to it.
type Database struct {
	DB          *sql.DB
	Driver      string
	Placeholder query.PlaceholderFormat
	log         *zerolog.Logger
}

// multiTracer chains several pgx tracers into the single ConnConfig.Tracer
// slot. Tracers that do not implement a hook are skipped for it.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is how many seconds New waits for the first ping.
const DatabasePingTimeout = 10

// sqliteBusyTimeout is how long SQLite waits on a locked file, in ms.
const sqliteBusyTimeout = 5000

// New opens the configured store, applies pool settings and pings it.
//
// A missing or unreadable SQLite file surfaces here, so the server fails
// at startup instead of on the first request.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var (
		db          *sql.DB
		placeholder query.PlaceholderFormat
		err         error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg, logger, loggerService)
		placeholder = query.Dollar
	case config.DriverSQLite:
		db, err = sql.Open("sqlite", SQLiteDSN(cfg.Database.Path, cfg.Database.ReadOnly))
		placeholder = query.Question
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Database.Driver, err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetimeDuration())
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTimeDuration())

	database := &Database{
		DB:          db,
		Driver:      cfg.Database.Driver,
		Placeholder: placeholder,
		log:         logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("driver", database.Driver).
		Bool("read_only", cfg.Database.ReadOnly).
		Msg("connected to the database")

	return database, nil
}

// SQLiteDSN builds a file: URI for path. Read-only stores are opened with
// mode=ro so no statement can modify the file.
func SQLiteDSN(path string, readOnly bool) string {
	params := url.Values{}
	if readOnly {
		params.Set("mode", "ro")
	}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", sqliteBusyTimeout))

	return "file:" + path + "?" + params.Encode()
}

// PostgresDSN builds a postgres:// URL from the config.
func PostgresDSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	// Keep special characters in the password from breaking the URL.
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

func openPostgres(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(PostgresDSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		connConfig.Tracer = nrpgx5.NewTracer()
	}

	// SQL logging is noisy, so only local runs get it.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		}

		if connConfig.Tracer != nil {
			connConfig.Tracer = &multiTracer{
				tracers: []any{connConfig.Tracer, localTracer},
			}
		} else {
			connConfig.Tracer = localTracer
		}
	}

	return stdlib.OpenDB(*connConfig), nil
}

// Ping checks the store is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close releases every pooled connection.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
