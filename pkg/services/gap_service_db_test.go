package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/gap"
	testdb "github.com/bookflow/agentplane/test/database"
)

func seedGap(t *testing.T, svc *GapService, tenantID string, start, end time.Time) *ent.Gap {
	t.Helper()
	g, err := svc.Create(context.Background(), CreateGapInput{
		TenantID:           tenantID,
		StaffID:            "st-1",
		StaffName:          "Maya",
		Date:               start.Format("2006-01-02"),
		StartTime:          start,
		EndTime:            end,
		PotentialRevenue:   4500,
		FittableServiceIDs: []string{"svc-color"},
	})
	require.NoError(t, err)
	return g
}

func TestMarkFilledFirstWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewGapService(client.Client)
	ctx := context.Background()
	start := time.Now().UTC().Add(time.Hour)

	g := seedGap(t, svc, "t1", start, start.Add(45*time.Minute))

	require.NoError(t, svc.MarkFilled(ctx, "t1", g.ID, "bk-1", "c1"))

	got, err := svc.Get(ctx, "t1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, gap.StatusFilled, got.Status)
	require.NotNil(t, got.FilledByBookingID)
	assert.Equal(t, "bk-1", *got.FilledByBookingID)
	require.NotNil(t, got.FilledByCustomerID)
	assert.Equal(t, "c1", *got.FilledByCustomerID)

	err = svc.MarkFilled(ctx, "t1", g.ID, "bk-2", "c2")
	assert.ErrorIs(t, err, ErrStateConflict)

	// The losing fill did not overwrite the attribution.
	got, err = svc.Get(ctx, "t1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", *got.FilledByBookingID)
}

func TestGapExpireOverdue(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewGapService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	overdue := seedGap(t, svc, "t1", now.Add(-2*time.Hour), now.Add(-time.Hour))
	fresh := seedGap(t, svc, "t1", now.Add(time.Hour), now.Add(2*time.Hour))

	expired, err := svc.ExpireOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, overdue.ID, expired[0].ID)

	got, err := svc.Get(ctx, "t1", overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, gap.StatusExpired, got.Status)

	got, err = svc.Get(ctx, "t1", fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, gap.StatusOpen, got.Status)

	// An expired gap no longer accepts fill attempts.
	err = svc.RecordFillAttempt(ctx, "t1", overdue.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
}
