package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookflow/agentplane/ent"
)

// Config holds the parameters needed to construct a Service.
type Config struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service delivers approval notifications to the operations channel.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg Config) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// ApprovalRequested posts a new pending approval to the channel.
// Fail-open: errors are logged, never returned. Reports whether the
// notification went out so the caller can record the channel.
func (s *Service) ApprovalRequested(ctx context.Context, a *ent.Approval) bool {
	if s == nil {
		return false
	}

	blocks := BuildApprovalRequestedMessage(a, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send approval notification",
			"approval_id", a.ID,
			"error", err)
		return false
	}
	return true
}

// ApprovalResolved posts the resolution as a threaded reply under the
// original request when it can be found.
// Fail-open: errors are logged, never returned.
func (s *Service) ApprovalResolved(ctx context.Context, a *ent.Approval, status string) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, ApprovalFingerprint(a.ID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for approval",
			"approval_id", a.ID,
			"error", err)
	}

	blocks := BuildApprovalResolvedMessage(a, status)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send approval resolution notification",
			"approval_id", a.ID,
			"status", status,
			"error", err)
	}
}
