package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/restaurants-api/internal/middleware"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the service and its store are usable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth runs the configured dependency checks and answers 200 when
// all pass, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	healthCfg := h.server.Config.Observability.HealthChecks
	if healthCfg.Enabled {
		for _, name := range healthCfg.Checks {
			if name != "database" {
				continue
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), healthCfg.Timeout)
			dbStart := time.Now()
			err := h.server.DB.Ping(ctx)
			cancel()

			if err != nil {
				isHealthy = false
				checks["database"] = map[string]interface{}{
					"status":        "unhealthy",
					"response_time": time.Since(dbStart).String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Dur("response_time", time.Since(dbStart)).
					Msg("database health check failed")

				h.recordHealthError("database", "database_unhealthy", time.Since(dbStart), err)
				continue
			}

			checks["database"] = map[string]interface{}{
				"status":        "healthy",
				"driver":        h.server.DB.Driver,
				"response_time": time.Since(dbStart).String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordHealthError sends a HealthCheckError custom event when New Relic
// is enabled.
func (h *HealthHandler) recordHealthError(checkType, errorType string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":       checkType,
			"operation":        "health_check",
			"error_type":       errorType,
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		},
	)
}
