package outreach

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent/decision"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/services"
	testdb "github.com/bookflow/agentplane/test/database"
)

func createInput(tenantID, customerID, phone string) CreateInput {
	return CreateInput{
		TenantID:      tenantID,
		CustomerID:    customerID,
		CustomerName:  "Dana",
		CustomerPhone: phone,
		Type:          "gap_fill",
		Message:       "Hi Dana, Maya has a 14:00 slot free today. Want it?",
		TriggerID:     "gap-1",
		TriggerKind:   "gap",
	}
}

func TestCreateCooldownBlocksRepeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, config.DefaultOutreachConfig(), nil, slog.Default())
	ctx := context.Background()

	first, err := svc.Create(ctx, createInput("t1", "c1", "+15550000001"))
	require.NoError(t, err)
	assert.Equal(t, entoutreach.StatusPending, first.Status)

	// Same customer within the cooldown window: blocked, nothing created.
	_, err = svc.Create(ctx, createInput("t1", "c1", "+15550000001"))
	require.ErrorIs(t, err, ErrPreconditionFailed)
	var pe *PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonCustomerCooldown, pe.Reason)

	n, err := client.Outreach.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A different customer is unaffected.
	_, err = svc.Create(ctx, createInput("t1", "c2", "+15550000002"))
	assert.NoError(t, err)

	// The cooldown is per tenant: c1 at another salon is fine.
	_, err = svc.Create(ctx, createInput("t2", "c1", "+15550000001"))
	assert.NoError(t, err)
}

func TestCreateDailyCapReached(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := &config.OutreachConfig{CooldownMinutes: 0, DailyCap: 1, Expiry: 15 * time.Minute}
	svc := NewService(client.Client, cfg, nil, slog.Default())
	ctx := context.Background()

	_, err := svc.Create(ctx, createInput("t1", "c1", "+15550000001"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createInput("t1", "c2", "+15550000002"))
	require.ErrorIs(t, err, ErrPreconditionFailed)
	var pe *PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonDailyCapReached, pe.Reason)
}

func TestCreateWaitsForApproval(t *testing.T) {
	client := testdb.NewTestClient(t)
	decisions := services.NewDecisionService(client.Client)
	svc := NewService(client.Client, config.DefaultOutreachConfig(), nil, slog.Default())
	ctx := context.Background()

	d, err := decisions.Create(ctx, services.CreateDecisionInput{
		TenantID:         "t1",
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

	input := createInput("t1", "c1", "+15550000001")
	input.DecisionID = d.ID

	_, err = svc.Create(ctx, input)
	var pe *PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonApprovalPending, pe.Reason)

	require.NoError(t, decisions.MirrorApprovalStatus(ctx, "t1", d.ID, decision.ApprovalStatusApproved, "owner@salon"))

	_, err = svc.Create(ctx, input)
	assert.NoError(t, err)
}

func TestCreateBlockedAfterDenial(t *testing.T) {
	client := testdb.NewTestClient(t)
	decisions := services.NewDecisionService(client.Client)
	svc := NewService(client.Client, config.DefaultOutreachConfig(), nil, slog.Default())
	ctx := context.Background()

	d, err := decisions.Create(ctx, services.CreateDecisionInput{
		TenantID:         "t1",
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
	require.NoError(t, decisions.MirrorApprovalStatus(ctx, "t1", d.ID, decision.ApprovalStatusRejected, "owner@salon"))

	input := createInput("t1", "c1", "+15550000001")
	input.DecisionID = d.ID

	_, err = svc.Create(ctx, input)
	var pe *PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonApprovalDenied, pe.Reason)
}

func TestExpireOverduePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, config.DefaultOutreachConfig(), nil, slog.Default())
	ctx := context.Background()

	input := createInput("t1", "c1", "+15550000001")
	input.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	overdue, err := svc.Create(ctx, input)
	require.NoError(t, err)

	fresh, err := svc.Create(ctx, createInput("t1", "c2", "+15550000002"))
	require.NoError(t, err)

	n, err := svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Get(ctx, "t1", overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, entoutreach.StatusExpired, got.Status)

	got, err = svc.Get(ctx, "t1", fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, entoutreach.StatusPending, got.Status)

	// Expired is terminal; a late provider ack cannot resurrect it.
	err = svc.MarkSent(ctx, "t1", overdue.ID, "SM123")
	assert.ErrorIs(t, err, services.ErrStateConflict)
}
