package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/pipeline"
)

// invokeAgentHandler handles POST /api/v1/agents/:name/invoke.
// Agent failures come back as structured success=false results; only the
// transport-level mapping below turns machine reasons into status codes.
func (s *Server) invokeAgentHandler(c *echo.Context) error {
	agentName := c.Param("name")
	if agentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	var req InvokeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Context.TenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "context.tenant_id is required")
	}

	query, _ := req.Params["query"].(string)

	in := agent.Input{
		TenantID:  req.Context.TenantID,
		UserID:    req.Context.UserID,
		SessionID: req.Context.SessionID,
		Channel:   req.Context.Channel,
		Language:  req.Context.Language,
		Query:     query,
		Params:    req.Params,
	}

	deadline := s.cfg.Pipeline.RequestDeadline
	if deadline <= 0 {
		deadline = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), deadline)
	defer cancel()

	res := s.pipeline.Execute(ctx, agentName, in)

	return c.JSON(invokeStatus(res), &InvokeResponse{
		Success:     res.Success,
		Data:        res.Data,
		Message:     res.Message,
		Cached:      res.Cached,
		Suggestions: res.Suggestions,
		Confidence:  res.Confidence,
		ModelUsed:   res.ModelUsed,
		Timestamp:   time.Now().UTC(),
	})
}

// invokeStatus maps a pipeline result to an HTTP status. Guardrail
// rejections stay 200: the rejection text is the response body.
func invokeStatus(res pipeline.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Message {
	case pipeline.ReasonRateLimited:
		return http.StatusTooManyRequests
	case pipeline.ReasonCircuitOpen, "provider_unavailable", "provider_rate_limited":
		return http.StatusServiceUnavailable
	case pipeline.ReasonUnknownAgent:
		return http.StatusNotFound
	case pipeline.ReasonInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
