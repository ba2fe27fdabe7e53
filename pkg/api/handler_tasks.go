package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/bookflow/agentplane/pkg/scheduler"
)

// taskExecuteHandler handles POST /internal/tasks/execute.
// Enqueues an agent run; a paused agent or open breaker is an expected
// business outcome and still answers 2xx so the queue does not retry.
func (s *Server) taskExecuteHandler(c *echo.Context) error {
	var req TaskExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TenantID == "" || req.AgentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id and agent_name are required")
	}

	if err := s.sched.ScheduleAgentRun(c.Request().Context(), req.TenantID, req.AgentName, req.Action, req.Data, 0); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &TaskAcceptedResponse{Status: "enqueued"})
}

// taskSendNotificationHandler handles POST /internal/tasks/send-notification.
func (s *Server) taskSendNotificationHandler(c *echo.Context) error {
	var req TaskSendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TenantID == "" || req.OutreachID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id and outreach_id are required")
	}

	if err := s.sched.ScheduleOutreachSend(c.Request().Context(), req.TenantID, req.OutreachID, req.Channel, 0); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &TaskAcceptedResponse{Status: "enqueued"})
}

// taskCleanupHandler handles POST /internal/tasks/cleanup.
func (s *Server) taskCleanupHandler(c *echo.Context) error {
	var req TaskCleanupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch req.TaskType {
	case scheduler.CleanupExpiredApprovals, scheduler.CleanupExpiredOutreach, scheduler.CleanupExpiredGaps:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown cleanup task_type")
	}

	tenantID, _ := req.Data["tenant_id"].(string)
	if err := s.sched.ScheduleCleanup(c.Request().Context(), req.TaskType, tenantID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &TaskAcceptedResponse{Status: "enqueued"})
}
