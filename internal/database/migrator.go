package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/deppfellow/restaurants-api/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// Embed all SQL files under migrations/ at compile time so the binary
// carries its own schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// migrationSeparator splits a tern migration into its up and down halves.
const migrationSeparator = "---- create above / drop below ----"

// Migrate brings the configured store up to the latest schema.
//
// Postgres is migrated with tern, which keeps its version in the
// schema_version table. SQLite has no tern driver, so the same files are
// applied in order and the version is kept in PRAGMA user_version.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return migratePostgres(ctx, logger, cfg)
	case config.DriverSQLite:
		if cfg.Database.ReadOnly {
			return fmt.Errorf("cannot migrate a read-only sqlite database")
		}
		db, err := sql.Open("sqlite", SQLiteDSN(cfg.Database.Path, false))
		if err != nil {
			return err
		}
		defer db.Close()
		return MigrateSQLite(ctx, logger, db)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func migrationsFS() (fs.FS, error) {
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	return subtree, nil
}

func migratePostgres(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	// A single connection is enough for a one-off action.
	conn, err := pgx.Connect(ctx, PostgresDSN(cfg.Database))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := migrationsFS()
	if err != nil {
		return err
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	logMigration(logger, int(from), len(m.Migrations))
	return nil
}

// MigrateSQLite applies every pending migration to db, each in its own
// transaction together with the user_version bump.
func MigrateSQLite(ctx context.Context, logger *zerolog.Logger, db *sql.DB) error {
	subtree, err := migrationsFS()
	if err != nil {
		return err
	}

	// FindMigrations returns the files ordered by their sequence number and
	// rejects gaps or duplicates.
	paths, err := tern.FindMigrations(subtree)
	if err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	var from int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&from); err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	for i := from; i < len(paths); i++ {
		body, err := fs.ReadFile(subtree, paths[i])
		if err != nil {
			return err
		}
		upSQL := strings.TrimSpace(strings.SplitN(string(body), migrationSeparator, 2)[0])

		if err := applySQLiteMigration(ctx, db, upSQL, i+1); err != nil {
			return fmt.Errorf("%s: %w", paths[i], err)
		}
	}

	logMigration(logger, from, len(paths))
	return nil
}

func applySQLiteMigration(ctx context.Context, db *sql.DB, upSQL string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upSQL); err != nil {
		return err
	}

	// PRAGMA does not accept bind parameters; version is our own counter.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return err
	}

	return tx.Commit()
}

func logMigration(logger *zerolog.Logger, from, to int) {
	if from >= to {
		logger.Info().Msgf("database schema up to date, version %d", to)
		return
	}
	logger.Info().Msgf("migrated database schema, from %d to %d", from, to)
}
