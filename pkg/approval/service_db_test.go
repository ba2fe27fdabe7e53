package approval

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/services"
	testdb "github.com/bookflow/agentplane/test/database"
)

func newDBService(t *testing.T) (*Service, *services.DecisionService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	decisions := services.NewDecisionService(client.Client)
	svc := NewService(client.Client, decisions, config.DefaultApprovalConfig(), nil, nil, slog.Default())
	return svc, decisions
}

func seedSupervisedDecision(t *testing.T, decisions *services.DecisionService, tenantID string) *ent.Decision {
	t.Helper()
	d, err := decisions.Create(context.Background(), services.CreateDecisionInput{
		TenantID:         tenantID,
		AgentName:        "gap_fill",
		Kind:             decision.KindGapFill,
		Autonomy:         decision.AutonomySupervised,
		TriggerID:        "gap-1",
		TriggerKind:      "gap",
		ActionSummary:    "Offer 45 min slot with Maya at 14:00 to Dana",
		ApprovalRequired: true,
		ExpiresAt:        time.Now().UTC().Add(15 * time.Minute),
	})
	require.NoError(t, err)
	return d
}

func TestApproveExactlyOnce(t *testing.T) {
	svc, decisions := newDBService(t)
	ctx := context.Background()

	d := seedSupervisedDecision(t, decisions, "t1")
	a, err := svc.Create(ctx, CreateInput{
		TenantID:      "t1",
		DecisionID:    d.ID,
		AgentName:     "gap_fill",
		ActionType:    "gap_fill_outreach",
		ActionSummary: d.ActionSummary,
		Priority:      approval.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, a.Status)

	require.NoError(t, svc.Approve(ctx, "t1", a.ID, "owner@salon", "looks good"))

	got, err := svc.Get(ctx, "t1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, got.Status)
	assert.Equal(t, "owner@salon", got.Responder)
	assert.Equal(t, "looks good", got.ResponseNotes)

	// The transition mirrors onto the owning decision.
	dGot, err := decisions.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.ApprovalStatusApproved, dGot.ApprovalStatus)
	require.NotNil(t, dGot.ApprovalApprover)
	assert.Equal(t, "owner@salon", *dGot.ApprovalApprover)

	// A second resolution of any kind loses.
	err = svc.Reject(ctx, "t1", a.ID, "manager@salon", "")
	assert.ErrorIs(t, err, services.ErrStateConflict)
	err = svc.Approve(ctx, "t1", a.ID, "manager@salon", "")
	assert.ErrorIs(t, err, services.ErrStateConflict)
}

func TestRejectSettlesDecision(t *testing.T) {
	svc, decisions := newDBService(t)
	ctx := context.Background()

	d := seedSupervisedDecision(t, decisions, "t1")
	a, err := svc.Create(ctx, CreateInput{
		TenantID:      "t1",
		DecisionID:    d.ID,
		AgentName:     "gap_fill",
		ActionType:    "gap_fill_outreach",
		ActionSummary: d.ActionSummary,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, "t1", a.ID, "owner@salon", "not today"))

	dGot, err := decisions.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.ApprovalStatusRejected, dGot.ApprovalStatus)
	assert.Equal(t, decision.OutcomeStatusRejected, dGot.OutcomeStatus)
}

func TestExpireOverdueSweep(t *testing.T) {
	svc, decisions := newDBService(t)
	ctx := context.Background()

	dOverdue := seedSupervisedDecision(t, decisions, "t1")
	overdue, err := svc.Create(ctx, CreateInput{
		TenantID:      "t1",
		DecisionID:    dOverdue.ID,
		AgentName:     "gap_fill",
		ActionType:    "gap_fill_outreach",
		ActionSummary: dOverdue.ActionSummary,
		ExpiresAt:     time.Now().UTC().Add(-time.Minute),
	})
	require.NoError(t, err)

	dFresh := seedSupervisedDecision(t, decisions, "t1")
	fresh, err := svc.Create(ctx, CreateInput{
		TenantID:      "t1",
		DecisionID:    dFresh.ID,
		AgentName:     "gap_fill",
		ActionType:    "gap_fill_outreach",
		ActionSummary: dFresh.ActionSummary,
	})
	require.NoError(t, err)

	n, err := svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Get(ctx, "t1", overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusExpired, got.Status)

	got, err = svc.Get(ctx, "t1", fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, got.Status)

	// Expiry settles the owning decision; a late approve loses.
	dGot, err := decisions.Get(ctx, "t1", dOverdue.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.ApprovalStatusExpired, dGot.ApprovalStatus)
	assert.Equal(t, decision.OutcomeStatusExpired, dGot.OutcomeStatus)

	err = svc.Approve(ctx, "t1", overdue.ID, "owner@salon", "")
	assert.ErrorIs(t, err, services.ErrStateConflict)

	// Idempotent: a second sweep finds nothing.
	n, err = svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApprovalTenantIsolation(t *testing.T) {
	svc, decisions := newDBService(t)
	ctx := context.Background()

	d := seedSupervisedDecision(t, decisions, "t1")
	a, err := svc.Create(ctx, CreateInput{
		TenantID:      "t1",
		DecisionID:    d.ID,
		AgentName:     "gap_fill",
		ActionType:    "gap_fill_outreach",
		ActionSummary: d.ActionSummary,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "t2", a.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Approve(ctx, "t2", a.ID, "intruder", "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	pending, err := svc.ListPending(ctx, "t2", 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	pending, err = svc.ListPending(ctx, "t1", 10)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestCreateSummaryBounds(t *testing.T) {
	svc, decisions := newDBService(t)
	ctx := context.Background()
	d := seedSupervisedDecision(t, decisions, "t1")

	base := CreateInput{
		TenantID:   "t1",
		DecisionID: d.ID,
		AgentName:  "gap_fill",
		ActionType: "gap_fill_outreach",
	}

	short := base
	short.ActionSummary = "too short"
	_, err := svc.Create(ctx, short)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "action_summary", verr.Field)

	long := base
	long.ActionSummary = strings.Repeat("a", 501)
	_, err = svc.Create(ctx, long)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "at most 500")

	atLimit := base
	atLimit.ActionSummary = strings.Repeat("a", 500)
	_, err = svc.Create(ctx, atLimit)
	assert.NoError(t, err)
}
