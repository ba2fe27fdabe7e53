package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskNames_Deterministic(t *testing.T) {
	assert.Equal(t, agentRunName("t1", "gap_fill", "tick"), agentRunName("t1", "gap_fill", "tick"))
	assert.Equal(t, "agent_run:t1:gap_fill:tick", agentRunName("t1", "gap_fill", "tick"))
	assert.Equal(t, "outreach_send:o-42", outreachSendName("o-42"))
	assert.Equal(t, "cleanup:expired_approvals", cleanupName(CleanupExpiredApprovals, ""))
	assert.Equal(t, "cleanup:expired_gaps:t1", cleanupName(CleanupExpiredGaps, "t1"))

	// Distinct inputs never collide.
	assert.NotEqual(t, agentRunName("t1", "gap_fill", "tick"), agentRunName("t2", "gap_fill", "tick"))
	assert.NotEqual(t, agentRunName("t1", "gap_fill", "tick"), agentRunName("t1", "retention", "tick"))
	assert.NotEqual(t, cleanupName(CleanupExpiredGaps, ""), cleanupName(CleanupExpiredOutreach, ""))
}

func TestScheduleDue_Interval(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	due, err := scheduleDue("5m", now.Add(-6*time.Minute), now)
	require.NoError(t, err)
	assert.True(t, due)

	due, err = scheduleDue("5m", now.Add(-3*time.Minute), now)
	require.NoError(t, err)
	assert.False(t, due)

	due, err = scheduleDue("5m", now.Add(-5*time.Minute), now)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestScheduleDue_Cron(t *testing.T) {
	// Daily at 03:30; anchored yesterday evening it is due at 04:00, not
	// due when the anchor already covers today's firing.
	due, err := scheduleDue("30 3 * * *",
		time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 4, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, due)

	due, err = scheduleDue("30 3 * * *",
		time.Date(2026, 8, 25, 3, 31, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 4, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, due)
}

func TestScheduleDue_Invalid(t *testing.T) {
	now := time.Now().UTC()
	_, err := scheduleDue("", now, now)
	assert.Error(t, err)
	_, err = scheduleDue("not a schedule", now, now)
	assert.Error(t, err)
	_, err = scheduleDue("-5m", now, now)
	assert.Error(t, err)
}
