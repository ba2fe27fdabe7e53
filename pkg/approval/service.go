// Package approval owns the human-approval lifecycle for supervised
// decisions: pending → approved | rejected | expired | cancelled, exactly
// once. Every transition is a conditional update on status=pending, mirrored
// onto the owning Decision, published as an event, and audited.
package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/pkg/audit"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/events"
	"github.com/bookflow/agentplane/pkg/metrics"
	"github.com/bookflow/agentplane/pkg/services"
)

// CreateInput describes a new approval request.
type CreateInput struct {
	TenantID      string
	DecisionID    string
	AgentName     string
	ActionType    string
	ActionSummary string
	ActionDetail  map[string]interface{}
	Priority      approval.Priority
	ExpiresAt     time.Time // optional override of the priority-derived expiry
}

// Notifier pushes approval lifecycle updates to an operations channel.
// Implementations must be fail-open: a delivery failure never blocks the
// approval transition itself.
type Notifier interface {
	// ApprovalRequested announces a new pending approval. Returns whether
	// the notification actually went out.
	ApprovalRequested(ctx context.Context, a *ent.Approval) bool
	// ApprovalResolved announces the terminal status of an approval.
	ApprovalResolved(ctx context.Context, a *ent.Approval, status string)
}

// Service owns Approval records.
type Service struct {
	client    *ent.Client
	decisions *services.DecisionService
	cfg       *config.ApprovalConfig
	publisher *events.Publisher
	auditor   *audit.Writer
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the approval service.
func NewService(client *ent.Client, decisions *services.DecisionService, cfg *config.ApprovalConfig, publisher *events.Publisher, auditor *audit.Writer, logger *slog.Logger) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	return &Service{
		client:    client,
		decisions: decisions,
		cfg:       cfg,
		publisher: publisher,
		auditor:   auditor,
		logger:    logger,
		now:       time.Now,
	}
}

// Create opens a pending approval. Expiry derives from priority
// (low 30, medium 15, high 5, urgent 2 minutes) unless overridden.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ent.Approval, error) {
	if len(input.ActionSummary) < 10 {
		return nil, services.NewValidationError("action_summary", "summary must be at least 10 characters")
	}
	if len(input.ActionSummary) > 500 {
		return nil, services.NewValidationError("action_summary", "summary must be at most 500 characters")
	}

	priority := input.Priority
	if priority == "" {
		priority = approval.PriorityMedium
	}
	expiresAt := input.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = s.now().UTC().Add(s.cfg.Expiry(string(priority)))
	}

	create := s.client.Approval.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetDecisionID(input.DecisionID).
		SetAgentName(input.AgentName).
		SetActionType(input.ActionType).
		SetActionSummary(input.ActionSummary).
		SetPriority(priority).
		SetExpiresAt(expiresAt)
	if len(input.ActionDetail) > 0 {
		create.SetActionDetail(input.ActionDetail)
	}

	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}

	if s.publisher != nil {
		s.publisher.PublishBestEffort(ctx, input.TenantID, events.TypeApprovalRequested, map[string]any{
			"approval_id": a.ID,
			"decision_id": input.DecisionID,
			"priority":    string(priority),
			"expires_at":  expiresAt.Format(time.RFC3339),
		})
	}
	if s.notifier != nil && s.notifier.ApprovalRequested(ctx, a) {
		if err := s.MarkNotified(ctx, input.TenantID, a.ID, "slack"); err != nil {
			s.logger.Warn("failed to record notification channel",
				slog.String("approval_id", a.ID),
				slog.String("error", err.Error()))
		}
	}
	return a, nil
}

// SetNotifier attaches an operations-channel notifier. Optional: without one
// approvals still flow through events and the API.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Approve resolves a pending approval. Exactly-once: a second resolution of
// any kind returns ErrStateConflict.
func (s *Service) Approve(ctx context.Context, tenantID, approvalID, responder, notes string) error {
	return s.resolve(ctx, tenantID, approvalID, approval.StatusApproved, responder, notes)
}

// Reject resolves a pending approval as rejected.
func (s *Service) Reject(ctx context.Context, tenantID, approvalID, responder, notes string) error {
	return s.resolve(ctx, tenantID, approvalID, approval.StatusRejected, responder, notes)
}

// Cancel withdraws a pending approval, typically because the triggering
// condition disappeared.
func (s *Service) Cancel(ctx context.Context, tenantID, approvalID, responder string) error {
	return s.resolve(ctx, tenantID, approvalID, approval.StatusCancelled, responder, "")
}

func (s *Service) resolve(ctx context.Context, tenantID, approvalID string, status approval.Status, responder, notes string) error {
	a, err := s.Get(ctx, tenantID, approvalID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	update := s.client.Approval.Update().
		Where(
			approval.IDEQ(approvalID),
			approval.TenantIDEQ(tenantID),
			approval.StatusEQ(approval.StatusPending),
		).
		SetStatus(status).
		SetResponseAction(string(status)).
		SetRespondedAt(now)
	if responder != "" {
		update.SetResponder(responder)
	}
	if notes != "" {
		update.SetResponseNotes(notes)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve approval: %w", err)
	}
	if n == 0 {
		return services.ErrStateConflict
	}

	a.Status = status
	a.Responder = responder
	a.ResponseNotes = notes
	s.afterResolve(ctx, a, status, responder)
	return nil
}

// afterResolve mirrors the transition onto the Decision, publishes the
// event, and audits. All best-effort: the approval transition has committed.
func (s *Service) afterResolve(ctx context.Context, a *ent.Approval, status approval.Status, responder string) {
	mirror := map[approval.Status]decision.ApprovalStatus{
		approval.StatusApproved:  decision.ApprovalStatusApproved,
		approval.StatusRejected:  decision.ApprovalStatusRejected,
		approval.StatusExpired:   decision.ApprovalStatusExpired,
		approval.StatusCancelled: decision.ApprovalStatusCancelled,
	}[status]
	if err := s.decisions.MirrorApprovalStatus(ctx, a.TenantID, a.DecisionID, mirror, responder); err != nil {
		s.logger.Warn("failed to mirror approval status onto decision",
			slog.String("approval_id", a.ID),
			slog.String("decision_id", a.DecisionID),
			slog.String("error", err.Error()))
	}

	// Rejection and expiry also settle the decision outcome.
	switch status {
	case approval.StatusRejected:
		s.settleDecision(ctx, a, decision.OutcomeStatusRejected, "approval rejected")
	case approval.StatusExpired:
		s.settleDecision(ctx, a, decision.OutcomeStatusExpired, "approval expired")
	}

	metrics.ApprovalsTotal.WithLabelValues(string(status)).Inc()
	if s.publisher != nil && eventTypeFor(status) != "" {
		s.publisher.PublishBestEffort(ctx, a.TenantID, eventTypeFor(status), map[string]any{
			"approval_id": a.ID,
			"decision_id": a.DecisionID,
			"responder":   responder,
		})
	}
	if s.notifier != nil {
		s.notifier.ApprovalResolved(ctx, a, string(status))
	}
	if s.auditor != nil {
		actor := responder
		if actor == "" {
			actor = "system"
		}
		s.auditor.Record(ctx, audit.Entry{
			TenantID:     a.TenantID,
			EventType:    "approval." + string(status),
			Actor:        actor,
			ResourceType: "approval",
			ResourceID:   a.ID,
			Details:      map[string]interface{}{"decision_id": a.DecisionID},
		})
	}
}

func (s *Service) settleDecision(ctx context.Context, a *ent.Approval, status decision.OutcomeStatus, result string) {
	if err := s.decisions.ResolveOutcome(ctx, a.TenantID, a.DecisionID, status, result, "", 0); err != nil {
		s.logger.Warn("failed to settle decision outcome",
			slog.String("decision_id", a.DecisionID),
			slog.String("error", err.Error()))
	}
}

// eventTypeFor maps a terminal status to its published event type.
// Cancellation is internal housekeeping and publishes nothing.
func eventTypeFor(status approval.Status) string {
	switch status {
	case approval.StatusApproved:
		return events.TypeApprovalApproved
	case approval.StatusRejected:
		return events.TypeApprovalRejected
	case approval.StatusExpired:
		return events.TypeApprovalExpired
	default:
		return ""
	}
}

// Get returns one approval within the tenant.
func (s *Service) Get(ctx context.Context, tenantID, approvalID string) (*ent.Approval, error) {
	a, err := s.client.Approval.Query().
		Where(approval.IDEQ(approvalID), approval.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return a, nil
}

// ListPending returns a tenant's pending approvals, oldest first.
func (s *Service) ListPending(ctx context.Context, tenantID string, limit int) ([]*ent.Approval, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	as, err := s.client.Approval.Query().
		Where(approval.TenantIDEQ(tenantID), approval.StatusEQ(approval.StatusPending)).
		Order(ent.Asc(approval.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return as, nil
}

// MarkNotified records that the approval request went out on a channel.
func (s *Service) MarkNotified(ctx context.Context, tenantID, approvalID, channel string) error {
	a, err := s.Get(ctx, tenantID, approvalID)
	if err != nil {
		return err
	}
	sent := map[string]bool{}
	for k, v := range a.NotificationsSent {
		sent[k] = v
	}
	sent[channel] = true

	_, err = a.Update().SetNotificationsSent(sent).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark approval notified: %w", err)
	}
	return nil
}

// ExpireOverdue sweeps pending approvals past expiry to expired, one
// conditional transition per record so a concurrent approve cannot be
// overwritten. Returns the number expired.
func (s *Service) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	overdue, err := s.client.Approval.Query().
		Where(approval.StatusEQ(approval.StatusPending), approval.ExpiresAtLT(now)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query overdue approvals: %w", err)
	}

	expired := 0
	for _, a := range overdue {
		n, err := s.client.Approval.Update().
			Where(approval.IDEQ(a.ID), approval.StatusEQ(approval.StatusPending)).
			SetStatus(approval.StatusExpired).
			SetRespondedAt(now).
			Save(ctx)
		if err != nil {
			return expired, fmt.Errorf("failed to expire approval %s: %w", a.ID, err)
		}
		if n == 0 {
			continue // approved or rejected while sweeping
		}
		expired++
		a.Status = approval.StatusExpired
		s.afterResolve(ctx, a, approval.StatusExpired, "")
	}
	return expired, nil
}
