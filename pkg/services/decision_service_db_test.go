package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/decision"
	testdb "github.com/bookflow/agentplane/test/database"
)

func seedDecision(t *testing.T, svc *DecisionService, tenantID string, expiresAt time.Time) *ent.Decision {
	t.Helper()
	d, err := svc.Create(context.Background(), CreateDecisionInput{
		TenantID:         tenantID,
		AgentName:        "gap_fill",
		Kind:             decision.KindGapFill,
		Autonomy:         decision.AutonomySupervised,
		TriggerID:        "gap-1",
		TriggerKind:      "gap",
		CustomerID:       "c1",
		ActionSummary:    "Offer 45 min slot with Maya at 14:00 to Dana",
		RevenuePotential: 4500,
		ExpiresAt:        expiresAt,
	})
	require.NoError(t, err)
	return d
}

func TestResolveOutcomeFirstWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDecisionService(client.Client)
	ctx := context.Background()

	d := seedDecision(t, svc, "t1", time.Now().UTC().Add(15*time.Minute))

	require.NoError(t, svc.ResolveOutcome(ctx, "t1", d.ID,
		decision.OutcomeStatusSuccess, "gap filled via outreach", "bk-1", 5200))

	got, err := svc.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusSuccess, got.OutcomeStatus)
	require.NotNil(t, got.OutcomeBookingID)
	assert.Equal(t, "bk-1", *got.OutcomeBookingID)
	require.NotNil(t, got.RevenueActual)
	assert.Equal(t, int64(5200), *got.RevenueActual)
	require.NotNil(t, got.CompletedAt)

	// A second resolution of any kind loses.
	err = svc.ResolveOutcome(ctx, "t1", d.ID, decision.OutcomeStatusFailed, "customer declined", "", 0)
	assert.ErrorIs(t, err, ErrStateConflict)

	got, err = svc.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusSuccess, got.OutcomeStatus)
}

func TestDecisionTenantIsolation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDecisionService(client.Client)
	ctx := context.Background()

	d1 := seedDecision(t, svc, "t1", time.Now().UTC().Add(15*time.Minute))
	seedDecision(t, svc, "t2", time.Now().UTC().Add(15*time.Minute))

	listed, err := svc.List(ctx, "t1", ListFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "t1", listed[0].TenantID)

	// A record id from another tenant does not resolve.
	_, err = svc.Get(ctx, "t2", d1.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.ResolveOutcome(ctx, "t2", d1.ID, decision.OutcomeStatusSuccess, "", "", 0)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestExpireOverdueDecisions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDecisionService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	overdue := seedDecision(t, svc, "t1", now.Add(-time.Minute))
	fresh := seedDecision(t, svc, "t1", now.Add(15*time.Minute))

	n, err := svc.ExpireOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Get(ctx, "t1", overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusExpired, got.OutcomeStatus)

	got, err = svc.Get(ctx, "t1", fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusPending, got.OutcomeStatus)
}
