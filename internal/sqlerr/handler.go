package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/deppfellow/restaurants-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrCode reports the category of err.
//
// Already-normalized errors keep their code; raw driver errors are
// classified on the fly.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	if converted := Convert(err); converted != nil {
		return converted.Code
	}
	return Other
}

// Convert normalizes a driver error. It returns nil when err does not come
// from a supported driver and is not a context error.
func Convert(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return ConvertSQLiteError(liteErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: Canceled, Message: err.Error(), driverErr: err}
	}

	return nil
}

// ConvertPgError converts a raw Postgres error into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:         MapPgCode(src.Code),
		Driver:       "postgres",
		DatabaseCode: src.Code,
		Message:      src.Message,
		TableName:    src.TableName,
		driverErr:    src,
	}
}

// MapPgCode maps a SQLSTATE to a Code.
func MapPgCode(sqlState string) Code {
	switch {
	case strings.HasPrefix(sqlState, "08"), sqlState == "57P01", sqlState == "57P03", sqlState == "53300":
		return Unavailable
	case sqlState == "42P01":
		return UndefinedTable
	case sqlState == "42703":
		return UndefinedColumn
	case sqlState == "25006":
		return ReadOnly
	case sqlState == "57014":
		return Canceled
	case strings.HasPrefix(sqlState, "XX"):
		return Corrupt
	default:
		return Other
	}
}

// ConvertSQLiteError converts a modernc SQLite error into our Error.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	return &Error{
		Code:         MapSQLiteCode(src.Code(), src.Error()),
		Driver:       "sqlite",
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		TableName:    extractSQLiteTable(src.Error()),
		driverErr:    src,
	}
}

// MapSQLiteCode maps a SQLite (possibly extended) result code to a Code.
//
// SQLite reports a missing table or column as a generic SQLITE_ERROR, so
// the message is consulted for those two cases.
func MapSQLiteCode(code int, message string) Code {
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN:
		return Unavailable
	case sqlite3.SQLITE_READONLY:
		return ReadOnly
	case sqlite3.SQLITE_INTERRUPT:
		return Canceled
	case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
		return Corrupt
	case sqlite3.SQLITE_ERROR:
		switch {
		case strings.Contains(message, "no such table"):
			return UndefinedTable
		case strings.Contains(message, "no such column"):
			return UndefinedColumn
		}
	}
	return Other
}

// extractSQLiteTable pulls the table out of "no such table: dishes".
func extractSQLiteTable(message string) string {
	const marker = "no such table: "
	if i := strings.Index(message, marker); i >= 0 {
		if fields := strings.Fields(message[i+len(marker):]); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// getEntityName turns a table name into a singular, human entity name.
//
//	"restaurants" -> "Restaurant"
//	"dishes"      -> "Dish"
func getEntityName(tableName string) string {
	if tableName == "" {
		return "Record"
	}

	entity := strings.ToLower(tableName)
	switch {
	case strings.HasSuffix(entity, "shes"), strings.HasSuffix(entity, "ches"):
		entity = strings.TrimSuffix(entity, "es")
	case strings.HasSuffix(entity, "s") && len(entity) > 1:
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// NotFoundTable marks an ErrNoRows with the table it came from so
// HandleError can name the missing entity:
//
//	fmt.Errorf("table:%s: %w", "dishes", sql.ErrNoRows)
func NotFoundTable(table string) error {
	return fmt.Errorf("table:%s: %w", table, sql.ErrNoRows)
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If ErrNoRows: a 404, naming the entity when the table is known
//   - Otherwise: errs.NewInternalServerError, whatever the driver said
//
// The caller is responsible for logging the original error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(table)), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
