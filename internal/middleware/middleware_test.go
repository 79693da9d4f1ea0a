package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/restaurants-api/internal/errs"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/deppfellow/restaurants-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	return &server.Server{Config: testutil.Config(t), Logger: testutil.Logger()}
}

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewGlobalMiddlewares(newTestServer(t)).GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &body); decodeErr != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), decodeErr)
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("unknown error is opaque", func(t *testing.T) {
		rec, body := runErrorHandler(t, errors.New("no such column: secret"))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if body.Message != "Internal Server Error" || body.Code != "INTERNAL_SERVER_ERROR" {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("http error passes through", func(t *testing.T) {
		rec, body := runErrorHandler(t, errs.NewNotFoundError("No dishes found", true, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if body.Message != "No dishes found" || !body.Override {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("unmatched route", func(t *testing.T) {
		rec, body := runErrorHandler(t, echo.ErrNotFound)
		if rec.Code != http.StatusNotFound || body.Message != "Route not found" {
			t.Errorf("status = %d, body = %+v", rec.Code, body)
		}
	})

	t.Run("echo error keeps its status", func(t *testing.T) {
		rec, body := runErrorHandler(t, echo.ErrMethodNotAllowed)
		if rec.Code != http.StatusMethodNotAllowed || body.Code != "METHOD_NOT_ALLOWED" {
			t.Errorf("status = %d, body = %+v", rec.Code, body)
		}
	})

	t.Run("rate limit sets retry-after", func(t *testing.T) {
		rec, body := runErrorHandler(t, errs.NewTooManyRequestsError(2))
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", rec.Code)
		}
		if got := rec.Header().Get("Retry-After"); got != "2" {
			t.Errorf("Retry-After = %q, want 2", got)
		}
		if body.Action == nil || body.Action.Type != errs.ActionTypeRetry {
			t.Errorf("action = %+v", body.Action)
		}
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", errs.NewNotFoundError("x", false, nil), http.StatusNotFound},
		{"echo error", echo.ErrNotFound, http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromError(tt.err); got != tt.want {
				t.Errorf("statusFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	if err := h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatal(err)
	}
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id = %q, header = %q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if seen != "abc" || rec.Header().Get(RequestIDHeader) != "abc" {
		t.Errorf("reused id = %q, header = %q", seen, rec.Header().Get(RequestIDHeader))
	}
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	e := echo.New()
	ce := NewContextEnhancer(newTestServer(t))

	var stored bool
	h := ce.EnhanceContext()(func(c echo.Context) error {
		_, stored = c.Get(LoggerKey).(*zerolog.Logger)
		return nil
	})

	if err := h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())); err != nil {
		t.Fatal(err)
	}
	if !stored {
		t.Error("request logger was not stored in the echo context")
	}
}

func TestRateLimitEnabled(t *testing.T) {
	s := newTestServer(t)
	rl := NewRateLimitMiddleware(s)

	if rl.Enabled() {
		t.Error("Enabled() = true with no rate configured")
	}
	s.Config.Server.RateLimit = 5
	if !rl.Enabled() {
		t.Error("Enabled() = false with a positive rate")
	}
}
