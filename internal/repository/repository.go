// Package repository handles all interactions with the database.
//
// Every statement is produced by the query builder with the placeholder
// format of the open store, so the same repository code runs on SQLite and
// Postgres. Caller input only ever reaches the store as bind values.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// selectAll runs stmt and scans every row with scan.
func selectAll[T any](
	ctx context.Context,
	s *server.Server,
	stmt query.SelectBuilder,
	scan func(rowScanner) (T, error),
) ([]T, error) {
	sqlText, args := stmt.ToSQL(s.DB.Placeholder)

	start := time.Now()
	defer func() { logQuery(ctx, s, sqlText, len(args), time.Since(start)) }()

	rows, err := s.DB.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate")
	}

	return items, nil
}

// selectOne runs stmt and scans at most one row. A missing row is
// reported as sql.ErrNoRows tagged with table.
func selectOne[T any](
	ctx context.Context,
	s *server.Server,
	table query.Table,
	stmt query.SelectBuilder,
	scan func(rowScanner) (T, error),
) (T, error) {
	sqlText, args := stmt.ToSQL(s.DB.Placeholder)

	start := time.Now()
	defer func() { logQuery(ctx, s, sqlText, len(args), time.Since(start)) }()

	item, err := scan(s.DB.DB.QueryRowContext(ctx, sqlText, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return item, notFound(table)
	}
	if err != nil {
		return item, errors.Wrap(err, "query")
	}

	return item, nil
}

// logQuery writes one debug line per statement to the request logger, and
// a warning when the statement exceeded the slow query threshold.
func logQuery(ctx context.Context, s *server.Server, sqlText string, argCount int, elapsed time.Duration) {
	log := zerolog.Ctx(ctx)

	event := log.Debug()
	if threshold := slowQueryThreshold(s); threshold > 0 && elapsed > threshold {
		event = log.Warn().Bool("slow", true)
	}

	event.
		Str("sql", sqlText).
		Int("args", argCount).
		Dur("duration", elapsed).
		Msg("store query")
}

func slowQueryThreshold(s *server.Server) time.Duration {
	if s.Config == nil || s.Config.Observability == nil {
		return 0
	}
	return s.Config.Observability.Logging.SlowQueryThreshold
}
