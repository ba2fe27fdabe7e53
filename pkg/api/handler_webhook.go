package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// webhookDeadline bounds the synchronous phase of webhook handling. The
// provider retries on non-2xx, so handlers must answer quickly and swallow
// downstream failures after logging.
const webhookDeadline = 5 * time.Second

// providerStatusHandler handles POST /webhooks/provider/status.
// Form-encoded delivery-status callbacks; always answers 200 so the
// provider does not retry events we have already folded in.
func (s *Server) providerStatusHandler(c *echo.Context) error {
	sid := c.FormValue("MessageSid")
	status := c.FormValue("MessageStatus")
	if sid == "" || status == "" {
		return c.String(http.StatusOK, "ok")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), webhookDeadline)
	defer cancel()

	err := s.outreaches.ApplyProviderStatus(ctx, sid,
		status,
		c.FormValue("ErrorCode"),
		c.FormValue("ErrorMessage"))
	if err != nil {
		s.logger.Warn("provider status webhook not applied",
			slog.String("provider_message_id", sid),
			slog.String("message_status", status),
			slog.String("error", err.Error()))
	}
	return c.String(http.StatusOK, "ok")
}

// providerIncomingHandler handles POST /webhooks/provider/incoming.
// Inbound customer messages: the reply is matched to the most recent
// outreach for the sender's phone and handed to the orchestrator for
// attribution. Unparseable bodies are left for the conversational surface.
func (s *Server) providerIncomingHandler(c *echo.Context) error {
	from := c.FormValue("From")
	body := c.FormValue("Body")
	if from == "" || body == "" {
		return c.String(http.StatusOK, "ok")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), webhookDeadline)
	defer cancel()

	action, ot, err := s.outreaches.HandleReply(ctx, from, body)
	if err != nil {
		s.logger.Warn("inbound reply not handled",
			slog.String("from", from),
			slog.String("error", err.Error()))
		return c.String(http.StatusOK, "ok")
	}
	if action == "" || ot == nil {
		return c.String(http.StatusOK, "ok")
	}

	if err := s.orchestrator.OnReply(ctx, ot, action, "", 0); err != nil {
		s.logger.Warn("reply attribution failed",
			slog.String("outreach_id", ot.ID),
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
	return c.String(http.StatusOK, "ok")
}
