package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/restaurants-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "http error passes through",
			err:         errs.NewBadRequestError("Please provide cuisine", true, nil, nil, nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please provide cuisine",
		},
		{
			name:        "no rows with table",
			err:         fmt.Errorf("get dish: %w", NotFoundTable("dishes")),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Dish not found",
		},
		{
			name:        "no rows without table",
			err:         sql.ErrNoRows,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "driver error is opaque",
			err:         &pgconn.PgError{Code: "42P01", Message: `relation "restaurants" does not exist`},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "unknown error is opaque",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			if !errors.As(HandleError(tt.err), &httpErr) {
				t.Fatal("HandleError did not return *errs.HTTPError")
			}
			if httpErr.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", httpErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapPgCode(t *testing.T) {
	tests := map[string]Code{
		"08006": Unavailable,
		"57P01": Unavailable,
		"42P01": UndefinedTable,
		"42703": UndefinedColumn,
		"25006": ReadOnly,
		"57014": Canceled,
		"XX001": Corrupt,
		"23505": Other,
	}

	for state, want := range tests {
		if got := MapPgCode(state); got != want {
			t.Errorf("MapPgCode(%q) = %q, want %q", state, got, want)
		}
	}
}

func TestMapSQLiteCode(t *testing.T) {
	tests := []struct {
		code    int
		message string
		want    Code
	}{
		{sqlite3.SQLITE_BUSY, "database is locked", Unavailable},
		{sqlite3.SQLITE_CANTOPEN, "unable to open database file", Unavailable},
		{sqlite3.SQLITE_READONLY, "attempt to write a readonly database", ReadOnly},
		{sqlite3.SQLITE_NOTADB, "file is not a database", Corrupt},
		{sqlite3.SQLITE_ERROR, "SQL logic error: no such table: dishes", UndefinedTable},
		{sqlite3.SQLITE_ERROR, "SQL logic error: no such column: isVeg", UndefinedColumn},
		{sqlite3.SQLITE_ERROR, "SQL logic error: near \"SELEC\"", Other},
	}

	for _, tt := range tests {
		if got := MapSQLiteCode(tt.code, tt.message); got != tt.want {
			t.Errorf("MapSQLiteCode(%d, %q) = %q, want %q", tt.code, tt.message, got, tt.want)
		}
	}
}

func TestErrCode(t *testing.T) {
	if got := ErrCode(&pgconn.PgError{Code: "08001"}); got != Unavailable {
		t.Errorf("ErrCode(pg 08001) = %q, want %q", got, Unavailable)
	}
	if got := ErrCode(fmt.Errorf("query: %w", context.DeadlineExceeded)); got != Canceled {
		t.Errorf("ErrCode(deadline) = %q, want %q", got, Canceled)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode(plain) = %q, want %q", got, Other)
	}
}

func TestGetEntityName(t *testing.T) {
	tests := map[string]string{
		"restaurants": "Restaurant",
		"dishes":      "Dish",
		"":            "Record",
	}
	for table, want := range tests {
		if got := getEntityName(table); got != want {
			t.Errorf("getEntityName(%q) = %q, want %q", table, got, want)
		}
	}
}
