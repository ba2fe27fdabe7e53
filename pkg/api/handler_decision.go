package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/pkg/services"
)

// listDecisionsHandler handles GET /api/v1/decisions.
func (s *Server) listDecisionsHandler(c *echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}

	filter := services.ListFilter{
		AgentName: c.QueryParam("agent_name"),
		Limit:     50,
	}

	if v := c.QueryParam("kind"); v != "" {
		if err := decision.KindValidator(decision.Kind(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid kind: "+v)
		}
		filter.Kind = v
	}
	if v := c.QueryParam("outcome_status"); v != "" {
		if err := decision.OutcomeStatusValidator(decision.OutcomeStatus(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid outcome_status: "+v)
		}
		filter.OutcomeStatus = v
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-200")
		}
		filter.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		filter.Offset = n
	}

	decisions, err := s.decisions.List(c.Request().Context(), tenantID, filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, decisions)
}

// getDecisionHandler handles GET /api/v1/decisions/:id.
func (s *Server) getDecisionHandler(c *echo.Context) error {
	decisionID := c.Param("id")
	if decisionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "decision id is required")
	}
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}

	d, err := s.decisions.Get(c.Request().Context(), tenantID, decisionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, d)
}
