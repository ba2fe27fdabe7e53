package api

import (
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/bookflow/agentplane/pkg/agent/gapfill"
)

// listApprovalsHandler handles GET /api/v1/approvals.
// Returns a tenant's pending approvals, most urgent first.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-200")
		}
		limit = n
	}

	pending, err := s.approvals.ListPending(c.Request().Context(), tenantID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pending)
}

// approveHandler handles POST /api/v1/approvals/:id/approve.
// On success the originating decision is dispatched; a dispatch failure
// (e.g. the customer's cooldown became active meanwhile) does not undo
// the approval.
func (s *Server) approveHandler(c *echo.Context) error {
	tenantID, approvalID, req, err := s.bindApprovalAction(c)
	if err != nil {
		return err
	}
	responder := extractResponder(c)

	ctx := c.Request().Context()
	if err := s.approvals.Approve(ctx, tenantID, approvalID, responder, req.Notes); err != nil {
		return mapServiceError(err)
	}

	resp := &ApprovalActionResponse{ApprovalID: approvalID, Status: "approved"}

	a, err := s.approvals.Get(ctx, tenantID, approvalID)
	if err == nil && a.AgentName == gapfill.AgentName {
		if err := s.orchestrator.DispatchApproved(ctx, tenantID, a.DecisionID); err != nil {
			s.logger.Warn("approved action not dispatched",
				slog.String("approval_id", approvalID),
				slog.String("decision_id", a.DecisionID),
				slog.String("error", err.Error()))
			resp.Message = "approved, but dispatch failed: " + err.Error()
		} else {
			resp.Dispatched = true
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// rejectHandler handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectHandler(c *echo.Context) error {
	tenantID, approvalID, req, err := s.bindApprovalAction(c)
	if err != nil {
		return err
	}

	if err := s.approvals.Reject(c.Request().Context(), tenantID, approvalID, extractResponder(c), req.Notes); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ApprovalActionResponse{ApprovalID: approvalID, Status: "rejected"})
}

// cancelApprovalHandler handles POST /api/v1/approvals/:id/cancel.
func (s *Server) cancelApprovalHandler(c *echo.Context) error {
	tenantID, approvalID, _, err := s.bindApprovalAction(c)
	if err != nil {
		return err
	}

	if err := s.approvals.Cancel(c.Request().Context(), tenantID, approvalID, extractResponder(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ApprovalActionResponse{ApprovalID: approvalID, Status: "cancelled"})
}

// bindApprovalAction validates the common parts of approval resolution
// requests. The body is optional; an empty body means no notes.
func (s *Server) bindApprovalAction(c *echo.Context) (tenantID, approvalID string, req ApprovalActionRequest, err error) {
	approvalID = c.Param("id")
	if approvalID == "" {
		return "", "", req, echo.NewHTTPError(http.StatusBadRequest, "approval id is required")
	}
	tenantID = c.QueryParam("tenant_id")
	if tenantID == "" {
		return "", "", req, echo.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}
	if c.Request().ContentLength > 0 {
		if bindErr := c.Bind(&req); bindErr != nil {
			return "", "", req, echo.NewHTTPError(http.StatusBadRequest, bindErr.Error())
		}
	}
	return tenantID, approvalID, req, nil
}
