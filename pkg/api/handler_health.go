package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/elliebot/relay/pkg/database"
	"github.com/elliebot/relay/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the relay's own components (database, dispatcher) gate the status;
// missing chat transports degrade it but never fail it, so a revoked bot
// token cannot get the process restarted by an orchestrator.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var channels []string
	if s.transports != nil {
		channels = s.transports.Channels()
	}
	if len(channels) == 0 {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
		checks["transports"] = HealthCheck{Status: healthStatusDegraded, Message: "no chat transports registered"}
	} else {
		checks["transports"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.dispatcher != nil {
		checks["dispatcher"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:      status,
		Version:     version.GitCommit,
		Checks:      checks,
		Channels:    channels,
		VoiceActive: s.voiceHandler != nil && s.voiceHandler.Active(),
	})
}

// queueStatusHandler handles GET /queue-status with the dispatcher's
// live snapshot: the running turn plus everything waiting at the gate.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.dispatcher.Status())
}
