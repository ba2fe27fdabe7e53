package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/pkg/config"
)

func breakerCfg() *config.BreakerConfig {
	return config.DefaultBreakerConfig()
}

func failN(t *testing.T, s BreakerSnapshot, n int, start time.Time, step time.Duration) (BreakerSnapshot, bool) {
	t.Helper()
	var tripped bool
	for i := 0; i < n; i++ {
		s, tripped = OnFailure(s, start.Add(time.Duration(i)*step), breakerCfg())
	}
	return s, tripped
}

func TestBreaker_TripsAfterThresholdWithinWindow(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	s, tripped := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 4, start, time.Minute)
	assert.False(t, tripped)
	assert.Equal(t, agentstate.BreakerStateClosed, s.State)
	assert.Equal(t, 4, s.ConsecutiveErrors)

	s, tripped = OnFailure(s, start.Add(4*time.Minute), breakerCfg())
	assert.True(t, tripped)
	assert.Equal(t, agentstate.BreakerStateOpen, s.State)

	// min(2^5, 30) minutes.
	assert.Equal(t, 30, s.CooldownMinutes)
	require.NotNil(t, s.CooldownUntil)
	assert.Equal(t, start.Add(4*time.Minute).Add(30*time.Minute), *s.CooldownUntil)
}

func TestBreaker_WindowExpiryRestartsCount(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	s, _ := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 4, start, time.Minute)

	// The fifth failure lands outside the 10-minute window: no trip.
	s, tripped := OnFailure(s, start.Add(15*time.Minute), breakerCfg())
	assert.False(t, tripped)
	assert.Equal(t, agentstate.BreakerStateClosed, s.State)
	assert.Equal(t, 1, s.ConsecutiveErrors)
}

func TestBreaker_OpenDeniesUntilCooldown(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s, tripped := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 5, start, time.Minute)
	require.True(t, tripped)

	admission, s := Admit(s, start.Add(10*time.Minute))
	assert.False(t, admission.Allowed)
	assert.Equal(t, "circuit_open", admission.Reason)
	assert.Equal(t, agentstate.BreakerStateOpen, s.State)
}

func TestBreaker_HalfOpenAdmitsExactlyOneProbe(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s, _ := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 5, start, time.Minute)

	afterCooldown := s.CooldownUntil.Add(time.Second)

	admission, s := Admit(s, afterCooldown)
	assert.True(t, admission.Allowed)
	assert.True(t, admission.Probe)
	assert.Equal(t, agentstate.BreakerStateHalfOpen, s.State)
	assert.True(t, s.ProbeInFlight)

	// A second caller is denied while the probe is in flight.
	admission, _ = Admit(s, afterCooldown)
	assert.False(t, admission.Allowed)
	assert.Equal(t, "probe_in_flight", admission.Reason)
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s, _ := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 5, start, time.Minute)
	_, s = Admit(s, s.CooldownUntil.Add(time.Second))

	s = OnSuccess(s)
	assert.Equal(t, agentstate.BreakerStateClosed, s.State)
	assert.Equal(t, 0, s.ConsecutiveErrors)
	assert.Nil(t, s.CooldownUntil)
	assert.False(t, s.ProbeInFlight)

	admission, _ := Admit(s, start.Add(time.Hour))
	assert.True(t, admission.Allowed)
	assert.False(t, admission.Probe)
}

func TestBreaker_ProbeFailureReopensWithDoubledCooldown(t *testing.T) {
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s, _ := failN(t, BreakerSnapshot{State: agentstate.BreakerStateClosed}, 5, start, time.Minute)
	require.Equal(t, 30, s.CooldownMinutes)

	probeAt := s.CooldownUntil.Add(time.Second)
	_, s = Admit(s, probeAt)

	s, tripped := OnFailure(s, probeAt, breakerCfg())
	assert.True(t, tripped)
	assert.Equal(t, agentstate.BreakerStateOpen, s.State)
	assert.False(t, s.ProbeInFlight)

	// Doubling is capped at the configured maximum.
	assert.Equal(t, 30, s.CooldownMinutes)
	require.NotNil(t, s.CooldownUntil)
	assert.Equal(t, probeAt.Add(30*time.Minute), *s.CooldownUntil)
}

func TestBreaker_CooldownDoublingBelowCap(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s := BreakerSnapshot{
		State:           agentstate.BreakerStateHalfOpen,
		CooldownMinutes: 8,
		ProbeInFlight:   true,
	}

	s, tripped := OnFailure(s, now, breakerCfg())
	assert.True(t, tripped)
	assert.Equal(t, 16, s.CooldownMinutes)
}
