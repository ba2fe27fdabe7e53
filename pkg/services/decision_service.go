package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/decision"
)

// CreateDecisionInput contains the domain-level data needed to create a
// decision. Built by agents, never directly from HTTP input.
type CreateDecisionInput struct {
	TenantID         string
	AgentName        string
	Kind             decision.Kind
	Autonomy         decision.Autonomy
	TriggerID        string
	TriggerKind      string
	CustomerID       string
	StaffID          string
	ServiceID        string
	SlotRef          string
	ActionSummary    string
	ActionDetail     map[string]interface{}
	RevenuePotential int64
	ApprovalRequired bool
	ExpiresAt        time.Time
}

// DecisionService owns the Decision records.
type DecisionService struct {
	client *ent.Client
}

// NewDecisionService creates a new DecisionService.
func NewDecisionService(client *ent.Client) *DecisionService {
	if client == nil {
		panic("NewDecisionService: client must not be nil")
	}
	return &DecisionService{client: client}
}

// Create persists a new decision in outcome pending.
func (s *DecisionService) Create(ctx context.Context, input CreateDecisionInput) (*ent.Decision, error) {
	if input.TenantID == "" {
		return nil, NewValidationError("tenant_id", "tenant id is required")
	}
	if input.ActionSummary == "" {
		return nil, NewValidationError("action_summary", "action summary is required")
	}
	if input.ExpiresAt.IsZero() {
		return nil, NewValidationError("expires_at", "expiry is required")
	}

	approvalStatus := decision.ApprovalStatusNone
	if input.ApprovalRequired {
		approvalStatus = decision.ApprovalStatusPending
	}

	create := s.client.Decision.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetAgentName(input.AgentName).
		SetKind(input.Kind).
		SetAutonomy(input.Autonomy).
		SetTriggerID(input.TriggerID).
		SetTriggerKind(input.TriggerKind).
		SetActionSummary(input.ActionSummary).
		SetRevenuePotential(input.RevenuePotential).
		SetApprovalRequired(input.ApprovalRequired).
		SetApprovalStatus(approvalStatus).
		SetExpiresAt(input.ExpiresAt)
	if input.CustomerID != "" {
		create.SetCustomerID(input.CustomerID)
	}
	if input.StaffID != "" {
		create.SetStaffID(input.StaffID)
	}
	if input.ServiceID != "" {
		create.SetServiceID(input.ServiceID)
	}
	if input.SlotRef != "" {
		create.SetSlotRef(input.SlotRef)
	}
	if len(input.ActionDetail) > 0 {
		create.SetActionDetail(input.ActionDetail)
	}

	d, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}
	return d, nil
}

// Get returns one decision within the tenant.
func (s *DecisionService) Get(ctx context.Context, tenantID, decisionID string) (*ent.Decision, error) {
	d, err := s.client.Decision.Query().
		Where(decision.IDEQ(decisionID), decision.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return d, nil
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	AgentName     string
	Kind          string
	OutcomeStatus string
	Limit         int
	Offset        int
}

// List returns a tenant's decisions, newest first.
func (s *DecisionService) List(ctx context.Context, tenantID string, filter ListFilter) ([]*ent.Decision, error) {
	q := s.client.Decision.Query().
		Where(decision.TenantIDEQ(tenantID)).
		Order(ent.Desc(decision.FieldCreatedAt))

	if filter.AgentName != "" {
		q = q.Where(decision.AgentNameEQ(filter.AgentName))
	}
	if filter.Kind != "" {
		q = q.Where(decision.KindEQ(decision.Kind(filter.Kind)))
	}
	if filter.OutcomeStatus != "" {
		q = q.Where(decision.OutcomeStatusEQ(decision.OutcomeStatus(filter.OutcomeStatus)))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q = q.Limit(limit).Offset(filter.Offset)

	ds, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return ds, nil
}

// ByTrigger returns a tenant's decisions created for a trigger id.
func (s *DecisionService) ByTrigger(ctx context.Context, tenantID, triggerID string) ([]*ent.Decision, error) {
	ds, err := s.client.Decision.Query().
		Where(decision.TenantIDEQ(tenantID), decision.TriggerIDEQ(triggerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions by trigger: %w", err)
	}
	return ds, nil
}

// MirrorApprovalStatus mirrors an Approval transition onto the decision. The
// update is conditional on the mirrored status still being pending, keeping
// the mirror monotone under duplicate deliveries.
func (s *DecisionService) MirrorApprovalStatus(ctx context.Context, tenantID, decisionID string, status decision.ApprovalStatus, approver string) error {
	update := s.client.Decision.Update().
		Where(
			decision.IDEQ(decisionID),
			decision.TenantIDEQ(tenantID),
			decision.ApprovalStatusEQ(decision.ApprovalStatusPending),
		).
		SetApprovalStatus(status).
		SetApprovalDecidedAt(time.Now().UTC())
	if approver != "" {
		update.SetApprovalApprover(approver)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mirror approval status: %w", err)
	}
	if n == 0 {
		return ErrStateConflict
	}
	return nil
}

// ResolveOutcome moves a pending decision to a terminal outcome. Conditional
// on the outcome still being pending: the first resolution wins.
func (s *DecisionService) ResolveOutcome(ctx context.Context, tenantID, decisionID string, status decision.OutcomeStatus, result, bookingID string, revenueActual int64) error {
	update := s.client.Decision.Update().
		Where(
			decision.IDEQ(decisionID),
			decision.TenantIDEQ(tenantID),
			decision.OutcomeStatusEQ(decision.OutcomeStatusPending),
		).
		SetOutcomeStatus(status).
		SetCompletedAt(time.Now().UTC())
	if result != "" {
		update.SetOutcomeResult(result)
	}
	if bookingID != "" {
		update.SetOutcomeBookingID(bookingID)
	}
	if revenueActual > 0 {
		update.SetRevenueActual(revenueActual)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve decision outcome: %w", err)
	}
	if n == 0 {
		return ErrStateConflict
	}
	return nil
}

// ExpireOverdue moves pending decisions past their expiry to outcome expired.
// Returns the number of decisions expired.
func (s *DecisionService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.Decision.Update().
		Where(
			decision.OutcomeStatusEQ(decision.OutcomeStatusPending),
			decision.ExpiresAtLT(now),
		).
		SetOutcomeStatus(decision.OutcomeStatusExpired).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire decisions: %w", err)
	}
	return n, nil
}
