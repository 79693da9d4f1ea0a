// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database drivers (SQLite result
// codes, Postgres SQLSTATE) into a small set of categories, and converts
// them into application HTTP errors that never leak driver detail to the
// client.
package sqlerr

import "fmt"

// Code is the driver-independent category of a database error.
type Code string

const (
	// Other is any error we have no specific mapping for.
	Other Code = "other"

	// Unavailable means the store could not be reached or is locked/busy.
	Unavailable Code = "unavailable"

	// UndefinedTable means the schema has not been provisioned.
	UndefinedTable Code = "undefined_table"

	// UndefinedColumn means the schema does not match the queries.
	UndefinedColumn Code = "undefined_column"

	// ReadOnly means a write was attempted on a read-only store.
	ReadOnly Code = "read_only"

	// Canceled means the request context ended before the query finished.
	Canceled Code = "canceled"

	// Corrupt means the database file is damaged or not a database.
	Corrupt Code = "corrupt"
)

// Error is the normalized form of a driver error.
type Error struct {
	Code Code

	// Driver is "sqlite", "postgres" or "" for non-driver errors.
	Driver string

	// DatabaseCode keeps the original SQLite result code or SQLSTATE.
	DatabaseCode string

	Message   string
	TableName string

	driverErr error
}

func (e *Error) Error() string {
	if e.DatabaseCode != "" {
		return fmt.Sprintf("%s (%s %s): %s", e.Code, e.Driver, e.DatabaseCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
