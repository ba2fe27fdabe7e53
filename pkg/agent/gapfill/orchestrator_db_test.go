package gapfill

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/decision"
	entgap "github.com/bookflow/agentplane/ent/gap"
	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/approval"
	"github.com/bookflow/agentplane/pkg/booking"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/outreach"
	"github.com/bookflow/agentplane/pkg/services"
	testdb "github.com/bookflow/agentplane/test/database"
)

// recordingBookings is a scheduling-service stand-in that captures every
// create request.
type recordingBookings struct {
	calls  []booking.Request
	result booking.Booking
	err    error
}

func (b *recordingBookings) Create(_ context.Context, _ string, req booking.Request) (booking.Booking, error) {
	b.calls = append(b.calls, req)
	if b.err != nil {
		return booking.Booking{}, b.err
	}
	return b.result, nil
}

type orchestratorFixture struct {
	orchestrator *Orchestrator
	gaps         *services.GapService
	decisions    *services.DecisionService
	outreaches   *outreach.Service
	runtime      *agent.Runtime
}

func newDBOrchestrator(t *testing.T, bookings Bookings) *orchestratorFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()

	cfg := &config.Config{
		Breaker:  config.DefaultBreakerConfig(),
		Outreach: config.DefaultOutreachConfig(),
		Approval: config.DefaultApprovalConfig(),
		Agents:   config.DefaultAgents(),
	}

	gaps := services.NewGapService(client.Client)
	scores := services.NewScoreService(client.Client)
	decisions := services.NewDecisionService(client.Client)
	outreaches := outreach.NewService(client.Client, cfg.Outreach, nil, logger)
	approvals := approval.NewService(client.Client, decisions, cfg.Approval, nil, nil, logger)
	runtime := agent.NewRuntime(client.Client, cfg, nil, nil, logger)

	o := New(gaps, scores, decisions, outreaches, approvals, runtime,
		nil, nil, bookings, nil, nil, cfg, logger)

	return &orchestratorFixture{
		orchestrator: o,
		gaps:         gaps,
		decisions:    decisions,
		outreaches:   outreaches,
		runtime:      runtime,
	}
}

// seedAcceptedOffer sets up the records behind a customer reply: an open gap,
// the decision made for it, and the outreach the customer is answering.
func seedAcceptedOffer(t *testing.T, f *orchestratorFixture) (*ent.Gap, *ent.Decision, *ent.Outreach) {
	t.Helper()
	ctx := context.Background()
	start := time.Now().UTC().Add(time.Hour)

	g, err := f.gaps.Create(ctx, services.CreateGapInput{
		TenantID:           "t1",
		StaffID:            "st-1",
		StaffName:          "Maya",
		Date:               start.Format("2006-01-02"),
		StartTime:          start,
		EndTime:            start.Add(45 * time.Minute),
		PotentialRevenue:   4500,
		FittableServiceIDs: []string{"svc-color"},
	})
	require.NoError(t, err)

	d, err := f.decisions.Create(ctx, services.CreateDecisionInput{
		TenantID:         "t1",
		AgentName:        AgentName,
		Kind:             decision.KindGapFill,
		Autonomy:         decision.AutonomyFullAuto,
		TriggerID:        g.ID,
		TriggerKind:      triggerKindGap,
		CustomerID:       "c1",
		StaffID:          "st-1",
		ServiceID:        "svc-cut",
		ActionSummary:    "Offer 45 min slot with Maya at 14:00 to Dana",
		RevenuePotential: 4500,
		ExpiresAt:        time.Now().UTC().Add(15 * time.Minute),
	})
	require.NoError(t, err)

	ot, err := f.outreaches.Create(ctx, outreach.CreateInput{
		TenantID:      "t1",
		DecisionID:    d.ID,
		CustomerID:    "c1",
		CustomerName:  "Dana",
		CustomerPhone: "+15550000001",
		Type:          "gap_fill",
		Message:       "Hi Dana, Maya has a slot free at 14:00 today. Want it?",
		TriggerID:     g.ID,
		TriggerKind:   triggerKindGap,
	})
	require.NoError(t, err)

	return g, d, ot
}

func TestOnReplyAcceptBooksAndAttributes(t *testing.T) {
	bookings := &recordingBookings{result: booking.Booking{ID: "bk-9", Amount: 5200, Status: "confirmed"}}
	f := newDBOrchestrator(t, bookings)
	ctx := context.Background()

	g, d, ot := seedAcceptedOffer(t, f)

	require.NoError(t, f.orchestrator.OnReply(ctx, ot, outreach.ActionAccept, "", 0))

	// The accepted slot was booked with the decision's service and the
	// outreach id as dedup key.
	require.Len(t, bookings.calls, 1)
	req := bookings.calls[0]
	assert.Equal(t, "c1", req.CustomerID)
	assert.Equal(t, "st-1", req.StaffID)
	assert.Equal(t, "svc-cut", req.ServiceID)
	assert.Equal(t, g.StartTime.Unix(), req.StartTime.Unix())
	assert.Equal(t, "gap_fill", req.Source)
	assert.Equal(t, ot.ID, req.SourceRef)

	gotGap, err := f.gaps.Get(ctx, "t1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, entgap.StatusFilled, gotGap.Status)
	require.NotNil(t, gotGap.FilledByBookingID)
	assert.Equal(t, "bk-9", *gotGap.FilledByBookingID)
	require.NotNil(t, gotGap.FilledByCustomerID)
	assert.Equal(t, "c1", *gotGap.FilledByCustomerID)

	gotDecision, err := f.decisions.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusSuccess, gotDecision.OutcomeStatus)
	require.NotNil(t, gotDecision.OutcomeBookingID)
	assert.Equal(t, "bk-9", *gotDecision.OutcomeBookingID)
	require.NotNil(t, gotDecision.RevenueActual)
	assert.Equal(t, int64(5200), *gotDecision.RevenueActual)

	gotOutreach, err := f.outreaches.Get(ctx, "t1", ot.ID)
	require.NoError(t, err)
	require.NotNil(t, gotOutreach.ResponseBookingID)
	assert.Equal(t, "bk-9", *gotOutreach.ResponseBookingID)

	state, err := f.runtime.State(ctx, "t1", AgentName)
	require.NoError(t, err)
	assert.Equal(t, int64(5200), state.RevenueGenerated)

	// A webhook retry replaying the accept finds the gap already filled and
	// changes nothing.
	require.NoError(t, f.orchestrator.OnReply(ctx, ot, outreach.ActionAccept, "bk-9", 5200))
	assert.Len(t, bookings.calls, 1)
}

func TestOnReplyAcceptWithoutSchedulingService(t *testing.T) {
	f := newDBOrchestrator(t, nil)
	ctx := context.Background()

	g, d, ot := seedAcceptedOffer(t, f)

	err := f.orchestrator.OnReply(ctx, ot, outreach.ActionAccept, "", 0)
	require.Error(t, err)

	// The gap stays open and the decision unsettled until a booking exists.
	gotGap, err := f.gaps.Get(ctx, "t1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, entgap.StatusOpen, gotGap.Status)

	gotDecision, err := f.decisions.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusPending, gotDecision.OutcomeStatus)
}

func TestOnReplyDeclineSettlesDecision(t *testing.T) {
	bookings := &recordingBookings{result: booking.Booking{ID: "bk-9"}}
	f := newDBOrchestrator(t, bookings)
	ctx := context.Background()

	g, d, ot := seedAcceptedOffer(t, f)

	require.NoError(t, f.orchestrator.OnReply(ctx, ot, outreach.ActionDecline, "", 0))

	assert.Empty(t, bookings.calls)

	gotDecision, err := f.decisions.Get(ctx, "t1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, decision.OutcomeStatusFailed, gotDecision.OutcomeStatus)

	// The gap stays open for the next candidate.
	gotGap, err := f.gaps.Get(ctx, "t1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, entgap.StatusOpen, gotGap.Status)
}
