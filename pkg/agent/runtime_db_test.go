package agent

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/pkg/config"
	testdb "github.com/bookflow/agentplane/test/database"
)

func newTestRuntime(t *testing.T, agents map[string]*config.AgentConfig) *Runtime {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		Breaker: config.DefaultBreakerConfig(),
		Agents:  agents,
	}
	return NewRuntime(client.Client, cfg, nil, nil, slog.Default())
}

func TestRecordActionCounters(t *testing.T) {
	r := newTestRuntime(t, config.DefaultAgents())
	ctx := context.Background()

	initial, err := r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)

	require.NoError(t, r.RecordAction(ctx, "t1", "gap_fill", "gap_fill", true, 2000))
	require.NoError(t, r.RecordAction(ctx, "t1", "gap_fill", "gap_fill", true, 0))
	require.NoError(t, r.RecordAction(ctx, "t1", "gap_fill", "gap_fill", false, 0))

	state, err := r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.Equal(t, 3, state.ActionsTaken)
	assert.Equal(t, 2, state.ActionsSuccessful)
	assert.Equal(t, 1, state.ActionsFailed)
	assert.Equal(t, int64(2000), state.RevenueGenerated)
	assert.Equal(t, 1, state.ConsecutiveFailures)
	assert.Equal(t, map[string]int{"gap_fill": 3}, state.ActionsByType)
	assert.InDelta(t, 2.0/3.0, state.SuccessRate, 0.001)

	// Every mutation is a version-guarded conditional update.
	assert.Equal(t, initial.Version+3, state.Version)
}

func TestRecordRevenueAccumulates(t *testing.T) {
	r := newTestRuntime(t, config.DefaultAgents())
	ctx := context.Background()

	require.NoError(t, r.RecordAction(ctx, "t1", "gap_fill", "gap_fill", true, 1000))
	require.NoError(t, r.RecordRevenue(ctx, "t1", "gap_fill", 500))

	state, err := r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), state.RevenueGenerated)

	// Non-positive revenue is a no-op.
	require.NoError(t, r.RecordRevenue(ctx, "t1", "gap_fill", 0))
	after, err := r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.Equal(t, state.Version, after.Version)
}

func TestBreakerTripsAfterThreshold(t *testing.T) {
	r := newTestRuntime(t, config.DefaultAgents())
	ctx := context.Background()
	boom := errors.New("provider unavailable")

	threshold := r.cfg.Breaker.Threshold
	for i := 0; i < threshold-1; i++ {
		require.NoError(t, r.RecordFailure(ctx, "t1", "gap_fill", boom))

		ok, _, err := r.CanOperate(ctx, "t1", "gap_fill")
		require.NoError(t, err)
		assert.True(t, ok, "breaker must stay closed below the threshold")
	}

	require.NoError(t, r.RecordFailure(ctx, "t1", "gap_fill", boom))

	state, err := r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusCircuitBreaker, state.Status)
	assert.Equal(t, agentstate.BreakerStateOpen, state.BreakerState)
	require.NotNil(t, state.BreakerCooldownUntil)

	ok, reason, err := r.CanOperate(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "circuit_open", reason)

	// A success after the trip closes the breaker again.
	require.NoError(t, r.RecordAction(ctx, "t1", "gap_fill", "gap_fill", true, 0))
	state, err = r.State(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.Equal(t, agentstate.StatusActive, state.Status)
	assert.Equal(t, agentstate.BreakerStateClosed, state.BreakerState)
}

func TestCheckRateLimitExhaustsHourlyBudget(t *testing.T) {
	r := newTestRuntime(t, map[string]*config.AgentConfig{
		"gap_fill": {
			Autonomy:         "supervised",
			MaxHourlyActions: 2,
			MaxDailyActions:  10,
			CooldownMinutes:  60,
		},
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := r.CheckRateLimit(ctx, "t1", "gap_fill", WindowHourly)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := r.CheckRateLimit(ctx, "t1", "gap_fill", WindowHourly)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Zero(t, d.Remaining)

	// The hourly budget is per tenant.
	d, err = r.CheckRateLimit(ctx, "t2", "gap_fill", WindowHourly)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestPausedAgentCannotOperate(t *testing.T) {
	r := newTestRuntime(t, config.DefaultAgents())
	ctx := context.Background()

	require.NoError(t, r.SetPaused(ctx, "t1", "gap_fill", true))

	ok, reason, err := r.CanOperate(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "paused", reason)

	require.NoError(t, r.SetPaused(ctx, "t1", "gap_fill", false))
	ok, _, err = r.CanOperate(ctx, "t1", "gap_fill")
	require.NoError(t, err)
	assert.True(t, ok)
}
