package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/bookflow/agentplane/pkg/database"
	"github.com/bookflow/agentplane/pkg/queue"
	"github.com/bookflow/agentplane/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the control plane's own components are checked. The LLM provider is
// reported (a missing API key degrades the llm feature) but never makes the
// process unhealthy, so the orchestrator does not restart us for an
// external outage.
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

	var poolHealth *queue.PoolHealth
	if s.workerPool != nil {
		ph := s.workerPool.Health()
		poolHealth = ph
		if ph != nil && !ph.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if ph.DBError != "" {
				msg = ph.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.cache != nil {
		if err := s.cache.Ping(reqCtx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["cache"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["cache"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.llmClient != nil {
		if s.llmClient.Available() {
			checks["llm"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["llm"] = HealthCheck{Status: healthStatusDegraded, Message: "provider API key not configured"}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	resp := &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	}
	resp.WorkerPool = poolHealth
	return c.JSON(httpStatus, resp)
}
